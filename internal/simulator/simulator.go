// Package simulator plays headless games with both sides driven by random
// agents, for exercising the engine and sanity-checking the rules at volume.
package simulator

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/lox/rockpaperbomb/internal/game"
	"github.com/lox/rockpaperbomb/internal/randutil"
	"github.com/lox/rockpaperbomb/internal/statistics"
)

// Config controls a simulation run.
type Config struct {
	Games    int
	Seed     int64
	Parallel int // worker count, defaults to NumCPU
}

// Simulator runs batches of self-play games.
type Simulator struct {
	config Config
	logger *log.Logger
}

// New creates a simulator.
func New(config Config, logger *log.Logger) *Simulator {
	return &Simulator{config: config, logger: logger}
}

// Run plays the configured number of games and returns aggregated
// statistics. Games are distributed across workers, each with its own RNG
// derived from the base seed so runs are reproducible regardless of
// scheduling.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	if s.config.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", s.config.Games)
	}

	parallel := s.config.Parallel
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > s.config.Games {
		parallel = s.config.Games
	}

	s.logger.Info("starting simulation",
		"games", s.config.Games, "seed", s.config.Seed, "parallel", parallel)

	results := make(chan statistics.GameResult, parallel)

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < parallel; w++ {
		worker := w
		g.Go(func() error {
			rng := randutil.New(s.config.Seed + int64(worker))
			for i := worker; i < s.config.Games; i += parallel {
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := s.playGame(rng)
				if err != nil {
					return err
				}
				select {
				case results <- result:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}

	done := make(chan struct{})
	stats := statistics.New()
	go func() {
		defer close(done)
		for result := range results {
			stats.Add(result)
		}
	}()

	if err := g.Wait(); err != nil {
		close(results)
		<-done
		return nil, err
	}
	close(results)
	<-done

	s.logger.Info("simulation complete",
		"games", stats.Games(),
		"userWinRate", stats.WinRate(game.UserWins),
		"botWinRate", stats.WinRate(game.BotWins))

	return stats, nil
}

// playGame runs one full game with both sides on the shared RNG.
func (s *Simulator) playGame(rng *rand.Rand) (statistics.GameResult, error) {
	userAgent := game.NewRandomAgent(rng)
	ref := game.NewReferee(game.NewRandomAgent(rng), s.logger)

	state := ref.Start()
	for !state.GameOver {
		move := userAgent.ChooseMove(state, game.User)
		report, err := ref.ProcessTurn(move.String())
		if err != nil {
			return statistics.GameResult{}, fmt.Errorf("simulated turn failed: %w", err)
		}
		state = report.State
	}

	return statistics.GameResult{
		Winner:       state.MatchWinner(),
		UserScore:    state.Score[game.User],
		BotScore:     state.Score[game.Bot],
		UserBombUsed: state.BombUsed[game.User],
		BotBombUsed:  state.BombUsed[game.Bot],
	}, nil
}
