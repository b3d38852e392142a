package game

// Outcome of one strategy's final pick.
type Outcome int

const (
	Lose Outcome = iota
	Win
)

func (o Outcome) String() string {
	switch o {
	case Lose:
		return "LOSE"
	case Win:
		return "WIN"
	default:
		return "unknown"
	}
}

// DetermineWinner maps the final pick to a win or a loss.
func DetermineWinner(final Door, g Game) Outcome {
	g.validate()
	if g.Behind(final) == Car {
		return Win
	}
	return Lose
}
