// Package display renders game output for the terminal. It owns all
// presentation: the core game package only produces reports and state.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/rockpaperbomb/internal/game"
)

// Styles contains all styling for rendered output.
type Styles struct {
	Header  lipgloss.Style
	Round   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Score   lipgloss.Style
}

// DefaultStyles returns the style set, tuned for the terminal background.
func DefaultStyles() *Styles {
	headerBg := lipgloss.Color("#7D56F4")
	if !termenv.HasDarkBackground() {
		headerBg = lipgloss.Color("#5A3EC8")
	}

	return &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(headerBg).
			Padding(0, 1).
			Bold(true),
		Round: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Success: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Score: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
	}
}

// StylesForTheme returns the style set for a configured theme name. The
// "plain" theme disables styling entirely for colourless terminals; any
// other name gets the default background-aware styles.
func StylesForTheme(theme string) *Styles {
	if strings.EqualFold(theme, "plain") {
		return &Styles{}
	}
	return DefaultStyles()
}

// Renderer formats game output using a style set.
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a renderer with the given styles, or DefaultStyles
// when nil.
func NewRenderer(styles *Styles) *Renderer {
	if styles == nil {
		styles = DefaultStyles()
	}
	return &Renderer{styles: styles}
}

// Banner returns the welcome message and rules summary shown when a game
// starts.
func (r *Renderer) Banner() string {
	var b strings.Builder
	b.WriteString(r.styles.Header.Render("Rock-Paper-Bomb"))
	b.WriteString("\n\n")
	b.WriteString("Rules (best of 3):\n")
	b.WriteString("  - valid moves: rock, paper, scissors, bomb\n")
	b.WriteString("  - bomb can be used once per game and beats all other moves\n")
	b.WriteString("  - bomb vs bomb is a draw\n")
	b.WriteString("  - invalid input wastes the round (bot wins by default)\n")
	b.WriteString("  - the game ends automatically after 3 rounds\n\n")
	b.WriteString("What's your move for round 1?")
	return b.String()
}

// RoundReport renders one completed turn: round number, both moves, the
// outcome reason, the round winner and the running score. If the game just
// ended the final summary is appended, otherwise a prompt for the next
// round.
func (r *Renderer) RoundReport(report *game.TurnReport) string {
	var b strings.Builder

	b.WriteString(r.styles.Round.Render(fmt.Sprintf("Round %d results:", report.Round)))
	b.WriteString("\n")

	if !report.Valid {
		b.WriteString("  " + r.styles.Warning.Render(report.ValidationErr) + "\n")
		b.WriteString("  you: " + r.styles.Error.Render(game.InvalidMove) + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  you: %s\n", report.UserMove))
	}
	b.WriteString(fmt.Sprintf("  bot: %s\n", report.BotMove))
	b.WriteString(fmt.Sprintf("  result: %s\n", report.Outcome.Reason))

	switch report.Outcome.Winner {
	case game.UserWins:
		b.WriteString("  " + r.styles.Success.Render("you win this round") + "\n")
	case game.BotWins:
		b.WriteString("  " + r.styles.Error.Render("bot wins this round") + "\n")
	default:
		b.WriteString("  " + r.styles.Info.Render("draw") + "\n")
	}

	state := report.State
	b.WriteString(r.styles.Score.Render(
		fmt.Sprintf("Score: you %d - %d bot", state.Score[game.User], state.Score[game.Bot])))

	if state.GameOver {
		b.WriteString("\n\n")
		b.WriteString(r.FinalSummary(state))
	} else {
		b.WriteString(fmt.Sprintf("\n\nWhat's your move for round %d?", state.Round))
	}

	return b.String()
}

// FinalSummary renders the end-of-game block: final score and the match
// winner (strictly higher score wins, equal scores draw).
func (r *Renderer) FinalSummary(state *game.GameState) string {
	var b strings.Builder

	b.WriteString(r.styles.Header.Render("GAME OVER"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Final score: you %d - %d bot\n",
		state.Score[game.User], state.Score[game.Bot]))

	switch state.MatchWinner() {
	case game.UserWins:
		b.WriteString(r.styles.Success.Render("You win the game!"))
	case game.BotWins:
		b.WriteString(r.styles.Error.Render("Bot wins the game!"))
	default:
		b.WriteString(r.styles.Info.Render("It's a draw!"))
	}

	b.WriteString("\nThanks for playing!")
	return b.String()
}

// StateSummary renders a compact view of the current state, used by the
// debug log and the TUI status line.
func (r *Renderer) StateSummary(state *game.GameState) string {
	status := "in progress"
	if state.GameOver {
		status = "game over"
	}
	return fmt.Sprintf("round %d/%d | you %d - %d bot | bombs used: you=%t bot=%t | %s",
		state.Round, state.MaxRounds,
		state.Score[game.User], state.Score[game.Bot],
		state.BombUsed[game.User], state.BombUsed[game.Bot],
		status)
}
