package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"montyhall/game"
)

func TestPlayGame(t *testing.T) {
	t.Run("returns one row per strategy in order", func(t *testing.T) {
		rng := rand.New(rand.NewSource(10))

		results := PlayGame(rng)

		require.Len(t, results, 2, "A round should yield one result per strategy")
		require.Equal(t, game.Stay, results[0].Strategy)
		require.Equal(t, game.Switch, results[1].Strategy)
	})

	t.Run("exactly one strategy wins each round", func(t *testing.T) {
		rng := rand.New(rand.NewSource(11))

		// Stay wins iff the pick was the car; switch wins iff it was not.
		// Sharing the round's randomness makes the two outcomes complementary.
		for i := 0; i < 500; i++ {
			results := PlayGame(rng)
			require.NotEqual(t, results[0].Outcome, results[1].Outcome,
				"Stay and switch should never both win or both lose a round")
		}
	})

	t.Run("is deterministic for a fixed seed", func(t *testing.T) {
		first := PlayGame(rand.New(rand.NewSource(12)))
		second := PlayGame(rand.New(rand.NewSource(12)))

		require.Equal(t, first, second, "Same seed should replay the same round")
	})
}
