package dinosaur

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Header aliases, compared after trimming and upper-casing.
var (
	nameColumns   = []string{"NAME", "DINOSAUR", "SPECIES"}
	legColumns    = []string{"LEG_LENGTH", "LEG LENGTH", "LGLENGTH"}
	dietColumns   = []string{"DIET", "FOOD", "EATING"}
	strideColumns = []string{"STRIDE_LENGTH", "STRIDE LENGTH", "STRIDE"}
	stanceColumns = []string{"STANCE", "POSTURE", "POSITION"}
)

const (
	LegsFileName    = "dataset1.csv"
	StridesFileName = "dataset2.csv"
)

// table is a CSV source with the positions of the three columns in use.
type table struct {
	reader  *csv.Reader
	columns [3]int
}

func newTable(r io.Reader, aliases ...[]string) (*table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	t := &table{reader: reader}
	for i, names := range aliases {
		t.columns[i] = findColumn(header, names)
		if t.columns[i] < 0 {
			return nil, fmt.Errorf("%w: one of %s", ErrMissingColumn, strings.Join(names, ", "))
		}
	}
	return t, nil
}

func findColumn(header []string, names []string) int {
	for _, name := range names {
		for i, column := range header {
			if strings.ToUpper(strings.TrimSpace(column)) == name {
				return i
			}
		}
	}
	return -1
}

// rows calls fn with trimmed values of the table columns. Rows that do not have
// all columns are skipped with a warning.
func (t *table) rows(fn func(values [3]string)) error {
	if t == nil {
		return nil
	}
	for {
		row, err := t.reader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read row: %w", err)
		}

		var values [3]string
		complete := true
		for i, column := range t.columns {
			if column >= len(row) {
				complete = false
				break
			}
			values[i] = strings.TrimSpace(row[column])
		}
		if !complete || values[0] == "" {
			log.Warnf("skipping row with missing fields: %v", row)
			continue
		}
		fn(values)
	}
}

var errNotFinite = errors.New("length is not finite")

// parseLength accepts only finite numbers, so "NaN" and "Inf" are rejected too.
func parseLength(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}

// LoadLegs reads the table with name, leg length and diet columns.
func (c *Calculator) LoadLegs(r io.Reader) error {
	t, err := newTable(r, nameColumns, legColumns, dietColumns)
	if err != nil {
		return err
	}
	return t.rows(func(values [3]string) {
		legLength, err := parseLength(values[1])
		if err != nil {
			log.Warnf("invalid leg length for %s: %q", values[0], values[1])
			return
		}
		rec := c.record(values[0])
		rec.legLength = legLength
		rec.diet = values[2]
		rec.hasLegs = true
	})
}

// LoadStrides reads the table with name, stride length and stance columns.
func (c *Calculator) LoadStrides(r io.Reader) error {
	t, err := newTable(r, nameColumns, strideColumns, stanceColumns)
	if err != nil {
		return err
	}
	return t.rows(func(values [3]string) {
		strideLength, err := parseLength(values[1])
		if err != nil {
			log.Warnf("invalid stride length for %s: %q", values[0], values[1])
			return
		}
		rec := c.record(values[0])
		rec.strideLength = strideLength
		rec.stance = values[2]
		rec.hasStrides = true
	})
}

func (c *Calculator) LoadLegsFile(path string) error {
	return loadFile(path, c.LoadLegs)
}

func (c *Calculator) LoadStridesFile(path string) error {
	return loadFile(path, c.LoadStrides)
}

func loadFile(path string, load func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %q", ErrFileNotFound, path)
		}
		return fmt.Errorf("%w %q: %w", ErrReadFile, path, err)
	}
	defer f.Close()

	if err := load(f); err != nil {
		return fmt.Errorf("%w %q: %w", ErrReadFile, path, err)
	}
	return nil
}

var (
	sampleLegs = [][]string{
		{"NAME", "LEG_LENGTH", "DIET"},
		{"Tyrannosaurus", "6.5", "Carnivore"},
		{"Triceratops", "3.2", "Herbivore"},
		{"Velociraptor", "1.8", "Carnivore"},
		{"Stegosaurus", "2.1", "Herbivore"},
		{"Allosaurus", "5.2", "Carnivore"},
		{"Brachiosaurus", "8.1", "Herbivore"},
	}
	sampleStrides = [][]string{
		{"NAME", "STRIDE_LENGTH", "STANCE"},
		{"Tyrannosaurus", "12.3", "Bipedal"},
		{"Triceratops", "8.7", "Quadrupedal"},
		{"Velociraptor", "4.1", "Bipedal"},
		{"Stegosaurus", "6.2", "Quadrupedal"},
		{"Allosaurus", "9.8", "Bipedal"},
		{"Brachiosaurus", "15.2", "Quadrupedal"},
	}
)

// WriteSampleData writes sample legs and strides tables into dir and returns
// their paths.
func WriteSampleData(dir string) (legsPath string, stridesPath string, err error) {
	legsPath = filepath.Join(dir, LegsFileName)
	stridesPath = filepath.Join(dir, StridesFileName)
	if err := writeCSV(legsPath, sampleLegs); err != nil {
		return "", "", err
	}
	if err := writeCSV(stridesPath, sampleStrides); err != nil {
		return "", "", err
	}
	return legsPath, stridesPath, nil
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %q: %w", path, err)
	}
	return f.Close()
}
