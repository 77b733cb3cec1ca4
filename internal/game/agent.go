package game

import (
	rand "math/rand/v2"

	"github.com/lox/rockpaperbomb/internal/randutil"
)

// Agent decides a move for one side of the game. Implementations read state
// but must never mutate it; bomb flags are only set by Apply after the round
// resolves.
type Agent interface {
	ChooseMove(state *GameState, side Side) Move
}

// RandomAgent picks uniformly from the legal moves for its side, which
// excludes the bomb once that side has used it.
type RandomAgent struct {
	rng *rand.Rand
}

// NewRandomAgent creates a random agent driven by the given RNG. Pass a
// seeded RNG from randutil.New for reproducible games.
func NewRandomAgent(rng *rand.Rand) *RandomAgent {
	return &RandomAgent{rng: rng}
}

// ChooseMove implements Agent.
func (a *RandomAgent) ChooseMove(state *GameState, side Side) Move {
	return randutil.Pick(a.rng, state.LegalMoves(side))
}

// ScriptedAgent plays a fixed sequence of moves and is intended for tests
// and demos. Once the script is exhausted it falls back to rock.
type ScriptedAgent struct {
	moves []Move
	index int
}

// NewScriptedAgent creates an agent that plays moves in order.
func NewScriptedAgent(moves ...Move) *ScriptedAgent {
	return &ScriptedAgent{moves: moves}
}

// ChooseMove implements Agent.
func (a *ScriptedAgent) ChooseMove(state *GameState, side Side) Move {
	if a.index >= len(a.moves) {
		return Rock
	}
	move := a.moves[a.index]
	a.index++
	return move
}
