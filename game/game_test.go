package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestNewGame(t *testing.T) {
	t.Run("always deals exactly one car and two goats", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		for i := 0; i < 1000; i++ {
			g := NewGame(rng)

			cars, goats := 0, 0
			for _, d := range Doors() {
				switch g.Behind(d) {
				case Car:
					cars++
				case Goat:
					goats++
				}
			}
			require.Equal(t, 1, cars, "Every game should hide exactly one car")
			require.Equal(t, 2, goats, "Every game should hide exactly two goats")
		}
	})

	t.Run("places the car uniformly across the doors", func(t *testing.T) {
		rng := rand.New(rand.NewSource(2))
		const deals = 6000

		counts := map[Door]int{}
		for i := 0; i < deals; i++ {
			g := NewGame(rng)
			for _, d := range Doors() {
				if g.Behind(d) == Car {
					counts[d]++
				}
			}
		}

		for _, d := range Doors() {
			freq := float64(counts[d]) / deals
			require.InDelta(t, 1.0/3.0, freq, 0.05,
				"Car should land behind door %d about a third of the time", d)
		}
	})
}

func TestGameWithCarAt(t *testing.T) {
	for _, car := range Doors() {
		g := GameWithCarAt(car)

		for _, d := range Doors() {
			if d == car {
				require.Equal(t, Car, g.Behind(d), "Car should be behind door %d", car)
			} else {
				require.Equal(t, Goat, g.Behind(d), "Door %d should hide a goat", d)
			}
		}
	}
}
