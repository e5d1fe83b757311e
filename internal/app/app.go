package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/lomoval/otus-golang/topwords/internal/dinosaur"
	"github.com/lomoval/otus-golang/topwords/internal/topk"
	"github.com/lomoval/otus-golang/topwords/internal/wordfreq"
	log "github.com/sirupsen/logrus"
)

const separatorLength = 60

type App struct {
	out io.Writer
}

func New(out io.Writer) *App {
	return &App{out: out}
}

// TopWords returns the k most frequent words of the file. A file that cannot be
// read is reported and treated as empty.
func (a *App) TopWords(path string, k int) []topk.Entry[string, int] {
	words, err := wordfreq.ReadFile(path)
	if err != nil {
		log.Errorf("failed to read words: %v", err)
	} else {
		fmt.Fprintf(a.out, "Read %d words from %s\n", len(words), path)
	}
	return topk.SelectTopK(wordfreq.Count(words), k)
}

func (a *App) PrintTopWords(entries []topk.Entry[string, int]) {
	if len(entries) == 0 {
		fmt.Fprintln(a.out, "No words found.")
		return
	}
	fmt.Fprintf(a.out, "Top %d most frequent words:\n", len(entries))
	for i, e := range entries {
		fmt.Fprintf(a.out, "%d. %s: %d\n", i+1, e.Key, e.Value)
	}
}

// Dinosaurs loads both tables and returns dinosaurs with the configured stance,
// fastest first. A positive config.Top bounds the result.
func (a *App) Dinosaurs(config dinosaur.Config, legsPath, stridesPath string) ([]dinosaur.Dinosaur, error) {
	calc := dinosaur.New(config.Gravity)

	log.Infof("loading legs table from %s", legsPath)
	if err := calc.LoadLegsFile(legsPath); err != nil {
		return nil, err
	}
	log.Infof("loading strides table from %s", stridesPath)
	if err := calc.LoadStridesFile(stridesPath); err != nil {
		return nil, err
	}

	var res []dinosaur.Dinosaur
	if config.Top > 0 {
		res = calc.Fastest(config.Stance, config.Top)
	} else {
		res = calc.ByStance(config.Stance)
	}
	if len(res) == 0 {
		log.Warnf("no %s dinosaurs found in the data", config.Stance)
	}
	return res, nil
}

func (a *App) PrintDinosaurs(stance string, dinosaurs []dinosaur.Dinosaur, details bool) {
	if len(dinosaurs) == 0 {
		fmt.Fprintf(a.out, "No %s dinosaurs found.\n", stance)
		return
	}

	separator := strings.Repeat("=", separatorLength)
	fmt.Fprintf(a.out, "\n%s dinosaurs sorted by speed (fastest to slowest):\n", title(stance))
	fmt.Fprintln(a.out, separator)
	for i, d := range dinosaurs {
		if details {
			fmt.Fprintf(a.out, "%2d. %-20s | Speed: %8.2f m/s | Leg: %6.2fm | Stride: %6.2fm\n",
				i+1, d.Name, d.Speed, d.LegLength, d.StrideLength)
			continue
		}
		fmt.Fprintf(a.out, "%2d. %s\n", i+1, d.Name)
	}
	fmt.Fprintln(a.out, separator)
	fmt.Fprintf(a.out, "Total %s dinosaurs: %d\n", strings.ToLower(stance), len(dinosaurs))
}

func (a *App) PrintNames(dinosaurs []dinosaur.Dinosaur) {
	for _, d := range dinosaurs {
		fmt.Fprintln(a.out, d.Name)
	}
}

func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
