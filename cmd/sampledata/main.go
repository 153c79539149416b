package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/okian/gridiron/internal/sampledata"
	"github.com/okian/gridiron/pkg/logger"
)

// Default configuration constants.
const (
	defaultStartYear = 2018
	defaultSeasons   = 7
	defaultTeams     = 10
	defaultRounds    = 4
	defaultTimeout   = time.Minute
)

func main() {
	var (
		outDir    = flag.String("out", "public/data", "Directory receiving the generated data tree")
		startYear = flag.Int("start", defaultStartYear, "First season year")
		seasons   = flag.Int("seasons", defaultSeasons, "Number of seasons to generate")
		teams     = flag.Int("teams", defaultTeams, "Managers per season")
		rounds    = flag.Int("rounds", defaultRounds, "Draft rounds per season")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		flag.Usage()
		return
	}

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	config := &sampledata.Config{
		OutDir:    *outDir,
		StartYear: *startYear,
		Seasons:   *seasons,
		Teams:     *teams,
		Rounds:    *rounds,
	}

	if _, err := sampledata.Generate(ctx, config); err != nil {
		os.Stderr.WriteString("generation failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}
