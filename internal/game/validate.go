package game

import "fmt"

// Validation is the result of checking raw user input against the current
// state.
type Validation struct {
	Valid bool
	Move  Move   // set only when Valid
	Err   string // rejection reason, set only when !Valid
}

// ValidateMove normalizes raw input (trim + lowercase) and checks it against
// the move set and the user's bomb usage. It reads state but never mutates
// it.
func ValidateMove(raw string, state *GameState) Validation {
	move, ok := ParseMove(raw)
	if !ok {
		return Validation{
			Err: fmt.Sprintf("invalid move %q: valid moves are rock, paper, scissors, bomb", raw),
		}
	}

	if move == Bomb && state.BombUsed[User] {
		return Validation{
			Err: "you have already used your bomb, choose rock, paper or scissors",
		}
	}

	return Validation{Valid: true, Move: move}
}
