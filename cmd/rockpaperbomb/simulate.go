package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/lox/rockpaperbomb/cmd/rockpaperbomb/shared"
	"github.com/lox/rockpaperbomb/internal/simulator"
)

type SimulateCmd struct {
	Games    int   `help:"Number of games to simulate" default:"1000"`
	Seed     int64 `help:"Base RNG seed (0 picks a random seed)" default:"0"`
	Parallel int   `help:"Worker count (0 uses all CPUs)" default:"0"`
	JSON     bool  `help:"Structured JSON log output"`
	Debug    bool  `help:"Enable debug logging"`
}

func (c *SimulateCmd) Run() error {
	level := ""
	if c.Debug {
		level = "debug"
	}

	var logger zerolog.Logger
	if c.JSON {
		logger = shared.SetupStructuredLogger(level)
	} else {
		logger = shared.SetupLogger(level)
	}

	ctx := shared.SetupSignalHandlerWithLogger(logger)

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Info().Int("games", c.Games).Int64("seed", seed).Msg("Running simulation")

	sim := simulator.New(simulator.Config{
		Games:    c.Games,
		Seed:     seed,
		Parallel: c.Parallel,
	}, shared.GameLogger(level))

	stats, err := sim.Run(ctx)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	fmt.Println(stats.String())
	return nil
}
