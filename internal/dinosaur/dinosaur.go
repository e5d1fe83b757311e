package dinosaur

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/lomoval/otus-golang/topwords/internal/topk"
	log "github.com/sirupsen/logrus"
)

const (
	// Gravity is the gravitational acceleration in m/s^2.
	Gravity = 9.8
	Bipedal = "bipedal"
)

var (
	ErrFileNotFound     = errors.New("file not found")
	ErrReadFile         = errors.New("failed to read file")
	ErrMissingColumn    = errors.New("required column not found")
	ErrInvalidLegLength = errors.New("leg length must be positive")
	ErrInvalidGravity   = errors.New("gravity must not be negative")
)

type Dinosaur struct {
	Name         string
	LegLength    float64
	StrideLength float64
	Diet         string
	Stance       string
	Speed        float64
}

// HasStance compares stances case-insensitively.
func (d Dinosaur) HasStance(stance string) bool {
	return strings.EqualFold(d.Stance, stance)
}

// Speed estimates running speed in m/s from leg and stride length in meters:
// ((stride / leg) - 1) * sqrt(leg * g).
func Speed(legLength, strideLength, g float64) (float64, error) {
	if legLength <= 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidLegLength, legLength)
	}
	if g < 0 {
		return 0, fmt.Errorf("%w: %v", ErrInvalidGravity, g)
	}
	return (strideLength/legLength - 1) * math.Sqrt(legLength*g), nil
}

// record collects fields of one dinosaur from both tables.
type record struct {
	name         string
	legLength    float64
	strideLength float64
	diet         string
	stance       string
	hasLegs      bool
	hasStrides   bool
}

func (r *record) missingFields() []string {
	var missing []string
	if !r.hasLegs {
		missing = append(missing, "leg_length", "diet")
	}
	if !r.hasStrides {
		missing = append(missing, "stride_length", "stance")
	}
	return missing
}

// Calculator joins the legs table (name, leg length, diet) with the strides
// table (name, stride length, stance) by dinosaur name.
type Calculator struct {
	gravity float64
	records map[string]*record
	names   []string
}

func New(gravity float64) *Calculator {
	return &Calculator{gravity: gravity, records: make(map[string]*record)}
}

func (c *Calculator) record(name string) *record {
	r, ok := c.records[name]
	if !ok {
		r = &record{name: name}
		c.records[name] = r
		c.names = append(c.names, name)
	}
	return r
}

// Dinosaurs returns the dinosaurs present in both tables in the order they were
// first seen. Incomplete records and records with invalid lengths are skipped
// with a warning.
func (c *Calculator) Dinosaurs() []Dinosaur {
	dinosaurs := make([]Dinosaur, 0, len(c.names))
	for _, name := range c.names {
		r := c.records[name]
		if missing := r.missingFields(); len(missing) > 0 {
			log.Warnf("incomplete data for %s, missing: %s", name, strings.Join(missing, ", "))
			continue
		}
		speed, err := Speed(r.legLength, r.strideLength, c.gravity)
		if err != nil {
			log.Warnf("could not calculate speed of %s: %v", name, err)
			continue
		}
		dinosaurs = append(dinosaurs, Dinosaur{
			Name:         r.name,
			LegLength:    r.legLength,
			StrideLength: r.strideLength,
			Diet:         r.diet,
			Stance:       r.stance,
			Speed:        speed,
		})
	}
	return dinosaurs
}

// ByStance returns dinosaurs with the stance sorted by speed, fastest first.
func (c *Calculator) ByStance(stance string) []Dinosaur {
	res := filterStance(c.Dinosaurs(), stance)
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Speed > res[j].Speed
	})
	return res
}

// Fastest returns at most k fastest dinosaurs with the stance, fastest first.
func (c *Calculator) Fastest(stance string, k int) []Dinosaur {
	candidates := filterStance(c.Dinosaurs(), stance)
	selector := topk.New[int, float64](k)
	for i, d := range candidates {
		selector.Offer(i, d.Speed)
	}

	entries := selector.Result()
	res := make([]Dinosaur, 0, len(entries))
	for _, e := range entries {
		res = append(res, candidates[e.Key])
	}
	return res
}

func (c *Calculator) BipedalBySpeed() []Dinosaur {
	return c.ByStance(Bipedal)
}

func (c *Calculator) FastestBipedal(k int) []Dinosaur {
	return c.Fastest(Bipedal, k)
}

func filterStance(dinosaurs []Dinosaur, stance string) []Dinosaur {
	res := make([]Dinosaur, 0, len(dinosaurs))
	for _, d := range dinosaurs {
		if d.HasStance(stance) {
			res = append(res, d)
		}
	}
	return res
}

type Config struct {
	Gravity   float64 `validate:"min:0"`
	Stance    string  `validate:"regexp:^[A-Za-z]+$"`
	Top       int     `validate:"min:0"`
	SampleDir string
}
