// Package statistics aggregates results across simulated games.
package statistics

import (
	"fmt"
	"strings"

	"github.com/lox/rockpaperbomb/internal/game"
)

// GameResult is the outcome of one completed game.
type GameResult struct {
	Winner       game.Winner
	UserScore    int
	BotScore     int
	UserBombUsed bool
	BotBombUsed  bool
}

// Statistics accumulates game results. It is not safe for concurrent use;
// callers merge results on a single goroutine.
type Statistics struct {
	games      int
	wins       map[game.Winner]int
	scoreTotal map[game.Side]int
	bombsUsed  map[game.Side]int
}

// New creates an empty statistics accumulator.
func New() *Statistics {
	return &Statistics{
		wins:       make(map[game.Winner]int),
		scoreTotal: make(map[game.Side]int),
		bombsUsed:  make(map[game.Side]int),
	}
}

// Add records one completed game.
func (s *Statistics) Add(result GameResult) {
	s.games++
	s.wins[result.Winner]++
	s.scoreTotal[game.User] += result.UserScore
	s.scoreTotal[game.Bot] += result.BotScore
	if result.UserBombUsed {
		s.bombsUsed[game.User]++
	}
	if result.BotBombUsed {
		s.bombsUsed[game.Bot]++
	}
}

// Games returns the number of games recorded.
func (s *Statistics) Games() int {
	return s.games
}

// Wins returns how many games ended with the given match result.
func (s *Statistics) Wins(w game.Winner) int {
	return s.wins[w]
}

// WinRate returns the fraction of games with the given match result, in
// [0, 1]. Zero games recorded yields 0.
func (s *Statistics) WinRate(w game.Winner) float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.wins[w]) / float64(s.games)
}

// MeanScore returns the average per-game score for a side.
func (s *Statistics) MeanScore(side game.Side) float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.scoreTotal[side]) / float64(s.games)
}

// BombRate returns the fraction of games in which the side used its bomb.
func (s *Statistics) BombRate(side game.Side) float64 {
	if s.games == 0 {
		return 0
	}
	return float64(s.bombsUsed[side]) / float64(s.games)
}

// String renders a summary block suitable for terminal output.
func (s *Statistics) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "games played:  %d\n", s.games)
	fmt.Fprintf(&b, "user wins:     %d (%.1f%%)\n", s.Wins(game.UserWins), s.WinRate(game.UserWins)*100)
	fmt.Fprintf(&b, "bot wins:      %d (%.1f%%)\n", s.Wins(game.BotWins), s.WinRate(game.BotWins)*100)
	fmt.Fprintf(&b, "draws:         %d (%.1f%%)\n", s.Wins(game.Draw), s.WinRate(game.Draw)*100)
	fmt.Fprintf(&b, "mean score:    user %.2f / bot %.2f\n", s.MeanScore(game.User), s.MeanScore(game.Bot))
	fmt.Fprintf(&b, "bomb usage:    user %.1f%% / bot %.1f%%", s.BombRate(game.User)*100, s.BombRate(game.Bot)*100)
	return b.String()
}
