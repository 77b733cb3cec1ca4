package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"

	"github.com/lox/rockpaperbomb/cmd/rockpaperbomb/shared"
	"github.com/lox/rockpaperbomb/internal/config"
	"github.com/lox/rockpaperbomb/internal/display"
	"github.com/lox/rockpaperbomb/internal/game"
	"github.com/lox/rockpaperbomb/internal/randutil"
	"github.com/lox/rockpaperbomb/internal/tui"
)

type PlayCmd struct {
	Seed   int64  `help:"RNG seed for the bot (0 picks a random seed)" default:"0"`
	Config string `help:"Path to HCL config file" default:"rockpaperbomb.hcl"`
	TUI    bool   `help:"Play in the full-screen terminal UI"`
	Debug  bool   `help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	level := cfg.UI.LogLevel
	if c.Debug {
		level = "debug"
	}
	logger := shared.SetupLogger(level)

	// Flag beats config beats a fresh per-run seed.
	seed := c.Seed
	if seed == 0 {
		seed = cfg.Game.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug().Int64("seed", seed).Str("player", cfg.Player.Name).Msg("Starting game")

	ref := game.NewReferee(
		game.NewRandomAgent(randutil.New(seed)),
		shared.GameLogger(level),
	)
	renderer := display.NewRenderer(display.StylesForTheme(cfg.UI.Theme))

	if c.TUI {
		return tui.Run(ref, renderer)
	}

	return runPrompt(ref, renderer, cfg, logger)
}

// runPrompt drives the plain line-based game loop. Quit commands and
// interrupts end the loop without touching game state; empty input
// re-prompts without consuming a round.
func runPrompt(ref *game.Referee, renderer *display.Renderer, cfg *config.Config, logger zerolog.Logger) error {
	ctx := shared.SetupSignalHandlerWithLogger(logger)

	rl, err := readline.New("> your move: ")
	if err != nil {
		return fmt.Errorf("initializing prompt: %w", err)
	}
	defer rl.Close()

	ref.Start()
	fmt.Printf("Good luck, %s!\n\n", cfg.Player.Name)
	fmt.Println(renderer.Banner())

	for {
		select {
		case <-ctx.Done():
			fmt.Println("\nThanks for playing! Goodbye!")
			return nil
		default:
		}

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			fmt.Println("\nThanks for playing! Goodbye!")
			return nil
		}
		if err != nil {
			logger.Error().Err(err).Msg("Reading input failed")
			fmt.Println("\nThanks for playing! Goodbye!")
			return nil
		}

		trimmed := strings.TrimSpace(line)
		switch strings.ToLower(trimmed) {
		case "quit", "exit", "q":
			fmt.Println("Thanks for playing! Goodbye!")
			return nil
		case "":
			fmt.Println("Please enter a move.")
			continue
		}

		report, err := ref.ProcessTurn(line)
		if errors.Is(err, game.ErrGameOver) {
			fmt.Println("The game is already over.")
			continue
		}
		if err != nil {
			logger.Error().Err(err).Msg("Turn failed")
			continue
		}

		fmt.Println(renderer.RoundReport(report))
		if report.State.GameOver {
			return nil
		}
	}
}
