package game

import (
	"testing"
	"time"
)

var applyTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestApplyScoreAndHistory(t *testing.T) {
	state := NewGameState()
	userMove := Rock

	next := Apply(state, &userMove, Scissors, Outcome{Winner: UserWins, Reason: "rock beats scissors"}, applyTime)

	if next.Score[User] != 1 || next.Score[Bot] != 0 {
		t.Errorf("expected 1-0, got %d-%d", next.Score[User], next.Score[Bot])
	}
	if next.Round != 2 {
		t.Errorf("expected round 2, got %d", next.Round)
	}
	if next.GameOver {
		t.Error("game should not be over after one round")
	}
	if len(next.History) != 1 {
		t.Fatalf("expected 1 history entry, got %d", len(next.History))
	}

	record := next.History[0]
	if record.Round != 1 {
		t.Errorf("history must use the pre-increment round, got %d", record.Round)
	}
	if record.UserMove != "rock" || record.BotMove != Scissors {
		t.Errorf("unexpected moves in record: %+v", record)
	}
	if !record.PlayedAt.Equal(applyTime) {
		t.Errorf("expected timestamp %v, got %v", applyTime, record.PlayedAt)
	}

	// The input state is untouched.
	if state.Round != 1 || state.Score[User] != 0 || len(state.History) != 0 {
		t.Errorf("Apply mutated its input: %+v", state)
	}
}

func TestApplyDrawLeavesScore(t *testing.T) {
	state := NewGameState()
	userMove := Paper

	next := Apply(state, &userMove, Paper, Outcome{Winner: Draw, Reason: "both played paper"}, applyTime)

	if next.Score[User] != 0 || next.Score[Bot] != 0 {
		t.Errorf("draw must not change the score, got %v", next.Score)
	}
}

func TestApplyInvalidInputRecord(t *testing.T) {
	state := NewGameState()

	next := Apply(state, nil, Rock, Outcome{Winner: BotWins, Reason: "invalid input"}, applyTime)

	if next.History[0].UserMove != InvalidMove {
		t.Errorf("expected %q sentinel, got %q", InvalidMove, next.History[0].UserMove)
	}
	if next.Score[Bot] != 1 {
		t.Errorf("bot should be credited the forfeited round, got %v", next.Score)
	}
	if next.BombUsed[User] {
		t.Error("invalid input must not touch the user's bomb flag")
	}
}

func TestApplyBombFlagsMonotone(t *testing.T) {
	state := NewGameState()
	bomb := Bomb
	rock := Rock

	next := Apply(state, &bomb, Bomb, Resolve(Bomb, Bomb), applyTime)
	if !next.BombUsed[User] || !next.BombUsed[Bot] {
		t.Fatalf("expected both bomb flags set, got %v", next.BombUsed)
	}

	// No subsequent apply can clear them, whatever the inputs.
	next = Apply(next, &rock, Paper, Resolve(Rock, Paper), applyTime)
	next = Apply(next, nil, Scissors, Outcome{Winner: BotWins, Reason: "invalid input"}, applyTime)
	if !next.BombUsed[User] || !next.BombUsed[Bot] {
		t.Errorf("bomb flags must stay set, got %v", next.BombUsed)
	}
}

func TestApplyRoundCountingAndTermination(t *testing.T) {
	// After N applies: history length N, round 1+N, game over iff N >= 3.
	state := NewGameState()
	rock := Rock

	for n := 1; n <= MaxRounds; n++ {
		state = Apply(state, &rock, Rock, Resolve(Rock, Rock), applyTime)

		if len(state.History) != n {
			t.Errorf("after %d applies: expected history length %d, got %d", n, n, len(state.History))
		}
		if state.Round != 1+n {
			t.Errorf("after %d applies: expected round %d, got %d", n, 1+n, state.Round)
		}
		wantOver := n >= MaxRounds
		if state.GameOver != wantOver {
			t.Errorf("after %d applies: expected gameOver=%t, got %t", n, wantOver, state.GameOver)
		}
	}
}
