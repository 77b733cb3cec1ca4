package display

import (
	"strings"
	"testing"
	"time"

	"github.com/lox/rockpaperbomb/internal/game"
)

// plainRenderer avoids terminal-dependent colour output in assertions.
func plainRenderer() *Renderer {
	return NewRenderer(&Styles{})
}

func TestStylesForTheme(t *testing.T) {
	plain := StylesForTheme("plain")
	if got := plain.Header.Render("x"); got != "x" {
		t.Errorf("plain theme must not style output, got %q", got)
	}
	if got := StylesForTheme("PLAIN").Score.Render("x"); got != "x" {
		t.Errorf("theme names are case-insensitive, got %q", got)
	}

	if StylesForTheme("default") == nil {
		t.Error("default theme must return styles")
	}
	if StylesForTheme("no-such-theme") == nil {
		t.Error("unknown themes must fall back to the default styles")
	}
}

func TestBannerListsRules(t *testing.T) {
	out := plainRenderer().Banner()

	for _, want := range []string{
		"rock, paper, scissors, bomb",
		"once per game",
		"bomb vs bomb is a draw",
		"round 1",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("banner missing %q:\n%s", want, out)
		}
	}
}

func TestRoundReportShowsMovesAndScore(t *testing.T) {
	state := game.NewGameState()
	userMove := game.Rock
	state = game.Apply(state, &userMove, game.Scissors,
		game.Outcome{Winner: game.UserWins, Reason: "rock beats scissors"}, time.Now())

	report := &game.TurnReport{
		Round:    1,
		UserMove: "rock",
		Valid:    true,
		BotMove:  game.Scissors,
		Outcome:  game.Outcome{Winner: game.UserWins, Reason: "rock beats scissors"},
		State:    state,
	}

	out := plainRenderer().RoundReport(report)

	for _, want := range []string{
		"Round 1 results:",
		"you: rock",
		"bot: scissors",
		"rock beats scissors",
		"you win this round",
		"Score: you 1 - 0 bot",
		"round 2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRoundReportMarksInvalidInput(t *testing.T) {
	state := game.NewGameState()
	outcome := game.Outcome{Winner: game.BotWins, Reason: "invalid input, bot wins by default"}
	state = game.Apply(state, nil, game.Paper, outcome, time.Now())

	report := &game.TurnReport{
		Round:         1,
		UserMove:      game.InvalidMove,
		Valid:         false,
		ValidationErr: "invalid move \"banana\": valid moves are rock, paper, scissors, bomb",
		BotMove:       game.Paper,
		Outcome:       outcome,
		State:         state,
	}

	out := plainRenderer().RoundReport(report)

	for _, want := range []string{
		"banana",
		game.InvalidMove,
		"bot wins by default",
		"bot wins this round",
		"Score: you 0 - 1 bot",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestRoundReportAppendsFinalSummary(t *testing.T) {
	state := game.NewGameState()
	move := game.Rock
	for i := 0; i < game.MaxRounds; i++ {
		state = game.Apply(state, &move, game.Scissors,
			game.Outcome{Winner: game.UserWins, Reason: "rock beats scissors"}, time.Now())
	}
	if !state.GameOver {
		t.Fatal("expected game over after max rounds")
	}

	report := &game.TurnReport{
		Round:    game.MaxRounds,
		UserMove: "rock",
		Valid:    true,
		BotMove:  game.Scissors,
		Outcome:  game.Outcome{Winner: game.UserWins, Reason: "rock beats scissors"},
		State:    state,
	}

	out := plainRenderer().RoundReport(report)

	for _, want := range []string{
		"GAME OVER",
		"Final score: you 3 - 0 bot",
		"You win the game!",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "What's your move for round 4") {
		t.Error("finished game must not prompt for another round")
	}
}

func TestFinalSummaryDraw(t *testing.T) {
	state := game.NewGameState()
	rock := game.Rock
	state = game.Apply(state, &rock, game.Rock,
		game.Outcome{Winner: game.Draw, Reason: "both played rock"}, time.Now())

	out := plainRenderer().FinalSummary(state)
	if !strings.Contains(out, "It's a draw!") {
		t.Errorf("expected draw verdict:\n%s", out)
	}
}

func TestStateSummary(t *testing.T) {
	state := game.NewGameState()
	bomb := game.Bomb
	state = game.Apply(state, &bomb, game.Rock,
		game.Outcome{Winner: game.UserWins, Reason: "bomb beats everything"}, time.Now())

	out := plainRenderer().StateSummary(state)

	for _, want := range []string{
		"round 2/3",
		"you 1 - 0 bot",
		"you=true",
		"bot=false",
		"in progress",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}
