package game

import "golang.org/x/exp/rand"

// Strategy is the contestant's policy for the final choice.
type Strategy int

const (
	Stay Strategy = iota
	Switch
)

func (s Strategy) String() string {
	switch s {
	case Stay:
		return "stay"
	case Switch:
		return "switch"
	default:
		return "unknown"
	}
}

// Strategies returns both strategies in report order.
func Strategies() [2]Strategy {
	return [2]Strategy{Stay, Switch}
}

// SelectDoor picks the contestant's initial door, uniform over the three
// doors. The draw is independent of the game arrangement.
func SelectDoor(rng *rand.Rand) Door {
	doors := Doors()
	return doors[rng.Intn(len(doors))]
}

// ChangeDoor resolves the contestant's final door. Staying keeps the initial
// pick; switching moves to the one door that is neither the pick nor the
// door the host opened.
func ChangeDoor(strat Strategy, opened, pick Door) Door {
	if strat == Stay {
		return pick
	}
	for _, d := range Doors() {
		if d != opened && d != pick {
			return d
		}
	}
	// Unreachable: the host never opens the picked door.
	panic("no door left to switch to")
}
