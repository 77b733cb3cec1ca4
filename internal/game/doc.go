// Package game implements the core logic for a three-round
// Rock-Paper-Scissors variant with a single-use bomb move.
//
// The main type is Referee, which runs one game by composing three pure
// functions each turn: ValidateMove checks raw input against the current
// state, Resolve decides the round winner from two valid moves, and Apply
// folds the result into a fresh copy of the state. Apply is the only place
// where game state changes; every turn replaces the whole state value rather
// than mutating it in place.
//
// # Basic Usage
//
// Create a referee with a bot agent and play a game:
//
//	rng := randutil.New(42)
//	ref := game.NewReferee(game.NewRandomAgent(rng), logger)
//	ref.Start()
//	report, err := ref.ProcessTurn("rock")
//
// # Deterministic Testing
//
// Inject a seeded RNG into the agent and a quartz mock clock into the
// referee for fully reproducible games:
//
//	ref := game.NewReferee(agent, logger, game.WithClock(quartz.NewMock(t)))
//
// # Architecture
//
// The referee owns the current-state reference but never edits state fields
// directly. Validation failures forfeit the round (the bot wins by default)
// without invoking Resolve, and turns attempted before Start or after the
// game ends are strict no-ops signalled by sentinel errors.
package game
