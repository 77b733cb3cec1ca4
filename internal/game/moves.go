package game

import "strings"

// Move is one of the four playable moves.
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
	Bomb     Move = "bomb"
)

// String returns the lowercase move name.
func (m Move) String() string {
	return string(m)
}

// AllMoves returns every playable move in a stable order.
func AllMoves() []Move {
	return []Move{Rock, Paper, Scissors, Bomb}
}

// beats maps each standard move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// ParseMove trims and lowercases raw input and reports whether it names a
// playable move.
func ParseMove(raw string) (Move, bool) {
	m := Move(strings.ToLower(strings.TrimSpace(raw)))
	switch m {
	case Rock, Paper, Scissors, Bomb:
		return m, true
	}
	return "", false
}

// Side identifies one of the two players.
type Side string

const (
	User Side = "user"
	Bot  Side = "bot"
)

// Winner is the result of a single round or of the whole match.
type Winner string

const (
	UserWins Winner = "user"
	BotWins  Winner = "bot"
	Draw     Winner = "draw"
)
