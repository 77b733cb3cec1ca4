package game

import (
	"testing"

	"github.com/lox/rockpaperbomb/internal/randutil"
)

func TestRandomAgentRespectsBombConstraint(t *testing.T) {
	agent := NewRandomAgent(randutil.New(1))
	state := NewGameState()
	state.BombUsed[Bot] = true

	for i := 0; i < 200; i++ {
		if move := agent.ChooseMove(state, Bot); move == Bomb {
			t.Fatal("agent picked bomb after it was used")
		}
	}
}

func TestRandomAgentCoversMoveSet(t *testing.T) {
	agent := NewRandomAgent(randutil.New(2))
	state := NewGameState()

	seen := make(map[Move]bool)
	for i := 0; i < 200; i++ {
		seen[agent.ChooseMove(state, Bot)] = true
	}
	for _, move := range AllMoves() {
		if !seen[move] {
			t.Errorf("uniform agent never picked %s in 200 draws", move)
		}
	}
}

func TestScriptedAgentPlaysInOrder(t *testing.T) {
	agent := NewScriptedAgent(Paper, Bomb)
	state := NewGameState()

	if move := agent.ChooseMove(state, Bot); move != Paper {
		t.Errorf("expected paper, got %s", move)
	}
	if move := agent.ChooseMove(state, Bot); move != Bomb {
		t.Errorf("expected bomb, got %s", move)
	}
	// Exhausted scripts fall back to rock.
	if move := agent.ChooseMove(state, Bot); move != Rock {
		t.Errorf("expected rock fallback, got %s", move)
	}
}
