package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/lomoval/otus-golang/topwords/internal/app"
	"github.com/lomoval/otus-golang/topwords/internal/logger"
	log "github.com/sirupsen/logrus"
)

const usage = "usage: topwords [-config file] <filename> <k>"

func init() {
	log.SetFormatter(&log.TextFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(log.WarnLevel)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	flags := flag.NewFlagSet("topwords", flag.ContinueOnError)
	configFile := flags.String("config", "", "Path to configuration file")
	if err := flags.Parse(args); err != nil {
		return 1
	}
	if flags.NArg() != 2 {
		fmt.Fprintln(out, usage)
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

	k, err := strconv.Atoi(flags.Arg(1))
	if err != nil {
		log.Errorf("k must be an integer, got %q", flags.Arg(1))
		return 1
	}

	a := app.New(out)
	a.PrintTopWords(a.TopWords(flags.Arg(0), k))
	return 0
}
