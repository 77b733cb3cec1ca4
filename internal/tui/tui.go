// Package tui provides a full-screen Bubble Tea front end for interactive
// play. The referee underneath is the same one the plain CLI loop uses.
package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/rockpaperbomb/internal/display"
	"github.com/lox/rockpaperbomb/internal/game"
)

// Model is the Bubble Tea model for a game session.
type Model struct {
	referee  *game.Referee
	renderer *display.Renderer

	logViewport viewport.Model
	moveInput   textinput.Model

	log      []string
	ready    bool
	quitting bool
	width    int
	height   int

	borderStyle lipgloss.Style
	statusStyle lipgloss.Style
}

// New creates a TUI model and starts a fresh game on the referee.
func New(referee *game.Referee, renderer *display.Renderer) Model {
	ti := textinput.New()
	ti.Placeholder = "rock, paper, scissors or bomb"
	ti.Prompt = "> your move: "
	ti.Focus()

	vp := viewport.New(80, 20)

	m := Model{
		referee:     referee,
		renderer:    renderer,
		logViewport: vp,
		moveInput:   ti,
		borderStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(0, 1),
		statusStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}

	referee.Start()
	m.appendLog(renderer.Banner())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = msg.Width - 4
		m.logViewport.Height = msg.Height - 6
		m.ready = true
		m.refreshViewport()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var inputCmd, viewportCmd tea.Cmd
	m.moveInput, inputCmd = m.moveInput.Update(msg)
	m.logViewport, viewportCmd = m.logViewport.Update(msg)
	return m, tea.Batch(inputCmd, viewportCmd)
}

// submit handles a completed line of input.
func (m Model) submit() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.moveInput.Value())
	m.moveInput.Reset()

	switch strings.ToLower(raw) {
	case "quit", "exit", "q":
		m.quitting = true
		return m, tea.Quit
	case "":
		m.appendLog("Please enter a move.")
		return m, nil
	}

	report, err := m.referee.ProcessTurn(raw)
	switch {
	case errors.Is(err, game.ErrGameOver):
		m.appendLog("The game is already over. Type quit to leave.")
	case errors.Is(err, game.ErrNotStarted):
		m.appendLog("The game has not been started.")
	case err != nil:
		m.appendLog(fmt.Sprintf("error: %v", err))
	default:
		m.appendLog(m.renderer.RoundReport(report))
		if report.State.GameOver {
			m.appendLog("Type quit to leave.")
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return "Thanks for playing!\n"
	}
	if !m.ready {
		return "loading..."
	}

	status := m.statusStyle.Render(m.renderer.StateSummary(m.referee.State()))
	return lipgloss.JoinVertical(lipgloss.Left,
		m.borderStyle.Render(m.logViewport.View()),
		status,
		m.moveInput.View(),
	)
}

// appendLog adds a block to the game log and scrolls to the bottom.
func (m *Model) appendLog(block string) {
	m.log = append(m.log, block)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	m.logViewport.SetContent(strings.Join(m.log, "\n\n"))
	m.logViewport.GotoBottom()
}

// Run starts the TUI program and blocks until the user quits.
func Run(referee *game.Referee, renderer *display.Renderer) error {
	program := tea.NewProgram(New(referee, renderer), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
