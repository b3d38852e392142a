// Package engine orchestrates one complete Monty Hall round.
package engine

import (
	"golang.org/x/exp/rand"

	"montyhall/experiments/metrics"
	"montyhall/game"
)

// PlayGame runs one full round: deal one arrangement, take one blind pick,
// open one goat door, then resolve both strategies against that same triple.
// Both rows share the round's randomness, so the only difference between
// them is the strategy itself.
func PlayGame(rng *rand.Rand) []metrics.RoundResult {
	g := game.NewGame(rng)
	pick := game.SelectDoor(rng)
	opened := game.OpenGoatDoor(rng, g, pick)

	strategies := game.Strategies()
	results := make([]metrics.RoundResult, 0, len(strategies))
	for _, strat := range strategies {
		final := game.ChangeDoor(strat, opened, pick)
		results = append(results, metrics.RoundResult{
			Strategy: strat,
			Outcome:  game.DetermineWinner(final, g),
		})
	}
	return results
}
