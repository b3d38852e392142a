// Package game models a single Monty Hall round: three doors hiding one car
// and two goats, the contestant's blind pick, the host's reveal, and the
// final choice under a stay or switch strategy.
package game

import (
	"fmt"

	"golang.org/x/exp/rand"
)

// Prize is what hides behind a door.
type Prize int

const (
	Goat Prize = iota
	Car
)

func (p Prize) String() string {
	switch p {
	case Goat:
		return "goat"
	case Car:
		return "car"
	default:
		return "unknown"
	}
}

// Door identifies one of the three doors, numbered 1 to 3.
type Door int

// Doors returns the three door indices in order.
func Doors() [3]Door {
	return [3]Door{1, 2, 3}
}

// Game is the arrangement of prizes behind the doors for one round.
// Immutable once created.
type Game struct {
	prizes [3]Prize
}

// NewGame deals a uniformly random arrangement of two goats and one car.
func NewGame(rng *rand.Rand) Game {
	g := Game{prizes: [3]Prize{Car, Goat, Goat}}
	rng.Shuffle(len(g.prizes), func(i, j int) {
		g.prizes[i], g.prizes[j] = g.prizes[j], g.prizes[i]
	})
	return g
}

// GameWithCarAt builds a fixed arrangement with the car behind the given
// door. Useful for replaying known scenarios.
func GameWithCarAt(car Door) Game {
	g := Game{}
	for _, d := range Doors() {
		if d == car {
			g.prizes[d-1] = Car
		} else {
			g.prizes[d-1] = Goat
		}
	}
	return g
}

// Behind returns the prize behind a door.
func (g Game) Behind(d Door) Prize {
	return g.prizes[d-1]
}

// validate panics unless exactly one door hides the car. A failure here is a
// programming error: NewGame cannot produce such an arrangement.
func (g Game) validate() {
	cars := 0
	for _, p := range g.prizes {
		if p == Car {
			cars++
		}
	}
	if cars != 1 {
		panic(fmt.Sprintf("corrupt game: %d cars behind %d doors", cars, len(g.prizes)))
	}
}
