// Command bloomstat measures the false positive rate of a Bloom filter
// against a word list.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/EricLagergren/bitbloom/internal/config"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to a TOML configuration file")
		words      = flag.String("words", "", "Path to a newline separated word list")
		capacity   = flag.Int("capacity", 0, "Number of words to insert")
		errorRate  = flag.Float64("error-rate", 0, "Target false positive probability")
		hasher     = flag.String("hasher", "", "Digest to use: siphash or murmur3")
		verbose    = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	if *verbose {
		logger = level.NewFilter(logger, level.AllowDebug())
	} else {
		logger = level.NewFilter(logger, level.AllowInfo())
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			level.Error(logger).Log("msg", "failed to load config", "path", *configPath, "err", err)
			os.Exit(1)
		}
	}

	// Flags given explicitly win over the file.
	flag.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "words":
			cfg.Words = *words
		case "capacity":
			cfg.Capacity = *capacity
		case "error-rate":
			cfg.ErrorRate = *errorRate
		case "hasher":
			cfg.Hasher = *hasher
		}
	})

	if err := cfg.Validate(); err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(1)
	}

	s, err := run(cfg, logger)
	if err != nil {
		level.Error(logger).Log("msg", "run failed", "err", err)
		os.Exit(1)
	}
	s.Report(logger)
	if s.FalseNeg > 0 {
		os.Exit(1)
	}
}
