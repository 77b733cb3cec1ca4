package game

import (
	"errors"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/rockpaperbomb/internal/gameid"
)

// Sentinel errors returned by ProcessTurn for turns that cannot be played.
// Both leave the game state completely untouched: no history entry, no score
// change, no round consumed.
var (
	// ErrNotStarted is returned when ProcessTurn is called before Start.
	ErrNotStarted = errors.New("game has not been started")

	// ErrGameOver is returned once the final round has been played.
	ErrGameOver = errors.New("game is already over")
)

// TurnReport captures everything a renderer needs about one completed turn.
type TurnReport struct {
	Round         int    // the round that was just played
	UserMove      string // move name, or InvalidMove when input was rejected
	Valid         bool
	ValidationErr string // rejection reason, set only when !Valid
	BotMove       Move
	Outcome       Outcome
	State         *GameState // state after the turn
}

// Referee orchestrates a single game. Each turn it composes ValidateMove,
// Resolve and Apply, generates the bot's move through the configured agent,
// and replaces its current-state reference with the state Apply returns. It
// never edits state fields directly.
type Referee struct {
	agent   Agent
	logger  *log.Logger
	bus     EventBus
	clock   quartz.Clock
	gameID  string
	state   *GameState
	started bool
}

// RefereeOption configures a Referee.
type RefereeOption func(*Referee)

// WithClock sets the clock used for event and history timestamps. Tests use
// quartz.NewMock for deterministic timestamps.
func WithClock(clock quartz.Clock) RefereeOption {
	return func(r *Referee) { r.clock = clock }
}

// WithEventBus sets the event bus the referee publishes to.
func WithEventBus(bus EventBus) RefereeOption {
	return func(r *Referee) { r.bus = bus }
}

// NewReferee creates a referee that plays the bot side with the given agent.
func NewReferee(agent Agent, logger *log.Logger, opts ...RefereeOption) *Referee {
	r := &Referee{
		agent:  agent,
		logger: logger,
		bus:    NewEventBus(),
		clock:  quartz.NewReal(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// EventBus returns the bus the referee publishes game events to.
func (r *Referee) EventBus() EventBus {
	return r.bus
}

// State returns the current game state, or nil before the first Start.
func (r *Referee) State() *GameState {
	return r.state
}

// GameID returns the identifier of the game in progress.
func (r *Referee) GameID() string {
	return r.gameID
}

// Start begins a fresh game and returns its initial state. Calling Start
// mid-game abandons the old game without error.
func (r *Referee) Start() *GameState {
	r.state = NewGameState()
	r.started = true
	r.gameID = gameid.Generate()

	r.logger.Info("game started", "gameID", r.gameID, "maxRounds", r.state.MaxRounds)
	r.bus.Publish(NewGameStartEvent(r.gameID, r.state.MaxRounds, r.clock.Now()))

	return r.state
}

// ProcessTurn plays one round from raw user input. Invalid input still
// consumes the round and forfeits it to the bot; only ErrNotStarted and
// ErrGameOver leave the state untouched.
func (r *Referee) ProcessTurn(rawInput string) (*TurnReport, error) {
	if !r.started {
		return nil, ErrNotStarted
	}
	if r.state.GameOver {
		return nil, ErrGameOver
	}

	validation := ValidateMove(rawInput, r.state)
	botMove := r.agent.ChooseMove(r.state, Bot)

	var userMove *Move
	var outcome Outcome
	if validation.Valid {
		userMove = &validation.Move
		outcome = Resolve(validation.Move, botMove)
	} else {
		// Resolve is only defined over two valid moves, so the forfeit
		// outcome is synthesized here instead.
		outcome = Outcome{Winner: BotWins, Reason: "invalid input, bot wins by default"}
	}

	round := r.state.Round
	r.state = Apply(r.state, userMove, botMove, outcome, r.clock.Now())

	report := &TurnReport{
		Round:         round,
		UserMove:      r.state.History[len(r.state.History)-1].UserMove,
		Valid:         validation.Valid,
		ValidationErr: validation.Err,
		BotMove:       botMove,
		Outcome:       outcome,
		State:         r.state,
	}

	r.logger.Debug("round resolved",
		"gameID", r.gameID,
		"round", round,
		"userMove", report.UserMove,
		"botMove", botMove,
		"winner", outcome.Winner)

	r.bus.Publish(NewRoundResolvedEvent(r.gameID, *report, r.clock.Now()))

	if r.state.GameOver {
		winner := r.state.MatchWinner()
		r.logger.Info("game over",
			"gameID", r.gameID,
			"userScore", r.state.Score[User],
			"botScore", r.state.Score[Bot],
			"winner", winner)
		r.bus.Publish(NewGameEndEvent(r.gameID, r.state.Score, winner, r.clock.Now()))
	}

	return report, nil
}
