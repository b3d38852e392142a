package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// Full playthroughs of the two canonical situations: the pick already on the
// car (host has a choice, staying wins) and the pick on a goat (host is
// forced, switching wins).
func TestScenarios(t *testing.T) {
	t.Run("pick on the car: staying wins either reveal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(13))
		g := GameWithCarAt(1)
		pick := Door(1)

		for i := 0; i < 100; i++ {
			opened := OpenGoatDoor(rng, g, pick)
			require.Contains(t, []Door{2, 3}, opened)

			stayFinal := ChangeDoor(Stay, opened, pick)
			require.Equal(t, Door(1), stayFinal)
			require.Equal(t, Win, DetermineWinner(stayFinal, g))

			switchFinal := ChangeDoor(Switch, opened, pick)
			require.Equal(t, Door(6)-opened-pick, switchFinal)
			require.Equal(t, Lose, DetermineWinner(switchFinal, g))
		}
	})

	t.Run("pick on a goat: switching wins the forced reveal", func(t *testing.T) {
		rng := rand.New(rand.NewSource(14))
		g := GameWithCarAt(2)
		pick := Door(1)

		opened := OpenGoatDoor(rng, g, pick)
		require.Equal(t, Door(3), opened, "Host has no choice but door 3")

		stayFinal := ChangeDoor(Stay, opened, pick)
		require.Equal(t, Door(1), stayFinal)
		require.Equal(t, Lose, DetermineWinner(stayFinal, g))

		switchFinal := ChangeDoor(Switch, opened, pick)
		require.Equal(t, Door(2), switchFinal)
		require.Equal(t, Win, DetermineWinner(switchFinal, g))
	})
}
