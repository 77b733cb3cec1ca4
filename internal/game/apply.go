package game

import "time"

// Apply folds one resolved round into the state and returns the successor
// state. The input state is left untouched. A nil userMove means the input
// failed validation; the history record then carries the InvalidMove
// sentinel. This is the only place where game state changes.
func Apply(state *GameState, userMove *Move, botMove Move, outcome Outcome, playedAt time.Time) *GameState {
	next := state.Clone()

	switch outcome.Winner {
	case UserWins:
		next.Score[User]++
	case BotWins:
		next.Score[Bot]++
	}

	// Bomb flags are monotone: set, never cleared.
	if userMove != nil && *userMove == Bomb {
		next.BombUsed[User] = true
	}
	if botMove == Bomb {
		next.BombUsed[Bot] = true
	}

	recorded := InvalidMove
	if userMove != nil {
		recorded = userMove.String()
	}
	next.History = append(next.History, RoundRecord{
		Round:    next.Round,
		UserMove: recorded,
		BotMove:  botMove,
		Winner:   outcome.Winner,
		Reason:   outcome.Reason,
		PlayedAt: playedAt,
	})

	next.Round++
	if next.Round > next.MaxRounds {
		next.GameOver = true
	}

	return next
}
