package game

import "fmt"

// Outcome is the result of resolving one round.
type Outcome struct {
	Winner Winner
	Reason string
}

// Resolve decides the winner of a round from two valid moves. Callers are
// responsible for validation; Resolve is only defined over the four playable
// moves. Bomb rules take precedence over the standard cyclic relation, and
// identical inputs always produce identical outcomes.
func Resolve(userMove, botMove Move) Outcome {
	switch {
	case userMove == Bomb && botMove == Bomb:
		return Outcome{Winner: Draw, Reason: "both players used their bomb"}
	case userMove == Bomb:
		return Outcome{Winner: UserWins, Reason: "bomb beats everything"}
	case botMove == Bomb:
		return Outcome{Winner: BotWins, Reason: "bot's bomb beats everything"}
	case userMove == botMove:
		return Outcome{Winner: Draw, Reason: fmt.Sprintf("both played %s", userMove)}
	case beats[userMove] == botMove:
		return Outcome{Winner: UserWins, Reason: fmt.Sprintf("%s beats %s", userMove, botMove)}
	default:
		return Outcome{Winner: BotWins, Reason: fmt.Sprintf("%s beats %s", botMove, userMove)}
	}
}
