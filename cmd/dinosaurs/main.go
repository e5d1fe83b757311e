package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lomoval/otus-golang/topwords/internal/app"
	"github.com/lomoval/otus-golang/topwords/internal/dinosaur"
	"github.com/lomoval/otus-golang/topwords/internal/logger"
	log "github.com/sirupsen/logrus"
)

const usage = "usage: dinosaurs [-config file] [-top n] [-details=false] [dataset1.csv dataset2.csv]\n" +
	"run without files to generate and use sample data"

func init() {
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("dinosaurs", flag.ContinueOnError)
	configFile := flags.String("config", "", "Path to configuration file")
	top := flags.Int("top", 0, "Print only n fastest dinosaurs, 0 prints all (overrides config)")
	details := flags.Bool("details", true, "Print speed, leg and stride length")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	topSet := false
	flags.Visit(func(f *flag.Flag) {
		if f.Name == "top" {
			topSet = true
		}
	})
	if topSet && *top < 0 {
		fmt.Fprintf(out, "top must not be negative: %d\n%s\n", *top, usage)
		return 1
	}

	config, err := NewConfig(*configFile)
	if err != nil {
		log.Errorf("failed to start %v", err)
		return 1
	}
	if err := logger.PrepareLogger(config.Logger); err != nil {
		log.Errorf("failed to start %v", err)
		return 1
	}
	if topSet {
		config.Dinosaur.Top = *top
	}

	var legsPath, stridesPath string
	switch flags.NArg() {
	case 0:
		fmt.Fprintln(out, "No CSV files provided. Creating sample data...")
		legsPath, stridesPath, err = dinosaur.WriteSampleData(config.Dinosaur.SampleDir)
		if err != nil {
			log.Errorf("failed to create sample data: %v", err)
			return 1
		}
		fmt.Fprintf(out, "Sample CSV files created: %s and %s\n", legsPath, stridesPath)
	case 2:
		legsPath, stridesPath = flags.Arg(0), flags.Arg(1)
	default:
		fmt.Fprintln(out, usage)
		return 1
	}

	a := app.New(out)
	dinosaurs, err := a.Dinosaurs(config.Dinosaur, legsPath, stridesPath)
	if err != nil {
		log.Errorf("failed to calculate speeds: %v", err)
		return 1
	}

	a.PrintDinosaurs(config.Dinosaur.Stance, dinosaurs, *details)
	if len(dinosaurs) > 0 {
		fmt.Fprintln(out, "\nJust the names (fastest to slowest):")
		a.PrintNames(dinosaurs)
	}
	return 0
}
