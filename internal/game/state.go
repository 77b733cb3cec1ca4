package game

import "time"

// MaxRounds is the fixed number of rounds in a game.
const MaxRounds = 3

// InvalidMove is the sentinel recorded in history when the user's input
// failed validation.
const InvalidMove = "INVALID"

// RoundRecord is one completed round in the game history.
type RoundRecord struct {
	Round    int
	UserMove string // move name, or InvalidMove
	BotMove  Move
	Winner   Winner
	Reason   string
	PlayedAt time.Time
}

// GameState is the complete state of a single game. It is treated as a
// value: Apply returns a fresh copy and never modifies its input, so a
// *GameState held across a turn keeps describing the state it was taken
// from.
type GameState struct {
	Round     int
	MaxRounds int
	Score     map[Side]int
	BombUsed  map[Side]bool
	History   []RoundRecord
	GameOver  bool
}

// NewGameState returns a fresh state ready for round 1.
func NewGameState() *GameState {
	return &GameState{
		Round:     1,
		MaxRounds: MaxRounds,
		Score:     map[Side]int{User: 0, Bot: 0},
		BombUsed:  map[Side]bool{User: false, Bot: false},
		History:   make([]RoundRecord, 0, MaxRounds),
	}
}

// Clone returns a deep copy sharing no maps or slices with the receiver.
func (s *GameState) Clone() *GameState {
	next := &GameState{
		Round:     s.Round,
		MaxRounds: s.MaxRounds,
		Score:     make(map[Side]int, len(s.Score)),
		BombUsed:  make(map[Side]bool, len(s.BombUsed)),
		History:   make([]RoundRecord, len(s.History), len(s.History)+1),
		GameOver:  s.GameOver,
	}
	for side, wins := range s.Score {
		next.Score[side] = wins
	}
	for side, used := range s.BombUsed {
		next.BombUsed[side] = used
	}
	copy(next.History, s.History)
	return next
}

// LegalMoves returns the moves side may still play. The bomb drops out of
// the set once the side has used it.
func (s *GameState) LegalMoves(side Side) []Move {
	moves := make([]Move, 0, 4)
	for _, m := range AllMoves() {
		if m == Bomb && s.BombUsed[side] {
			continue
		}
		moves = append(moves, m)
	}
	return moves
}

// MatchWinner returns the match-level result: the side with the strictly
// higher score wins, equal scores are a draw. Only meaningful once GameOver
// is set.
func (s *GameState) MatchWinner() Winner {
	switch {
	case s.Score[User] > s.Score[Bot]:
		return UserWins
	case s.Score[Bot] > s.Score[User]:
		return BotWins
	default:
		return Draw
	}
}
