package game

import "golang.org/x/exp/rand"

// OpenGoatDoor returns the door the host opens after the initial pick. The
// host never opens the picked door and never the car: when the car is behind
// the pick he chooses uniformly between the two goat doors, otherwise the
// remaining goat door is forced and no randomness is consumed.
func OpenGoatDoor(rng *rand.Rand, g Game, pick Door) Door {
	g.validate()

	candidates := make([]Door, 0, 2)
	for _, d := range Doors() {
		if d != pick && g.Behind(d) == Goat {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 1 {
		return candidates[0]
	}
	return candidates[rng.Intn(len(candidates))]
}
