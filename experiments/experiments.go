// Package experiments drives batches of Monty Hall rounds and aggregates
// their outcomes into per-strategy win proportions.
package experiments

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"

	"montyhall/engine"
	"montyhall/experiments/metrics"
	"montyhall/game"
)

// DefaultRounds is used when the caller does not ask for a specific count.
const DefaultRounds = 100

// ErrInvalidRounds rejects non-positive repetition counts before any round
// runs.
var ErrInvalidRounds = errors.New("rounds must be a positive integer")

type Option func(s *simulator)

type simulator struct {
	rounds     int
	seed       uint64
	goroutines int
	writer     *metrics.Writer
}

// WithSeed fixes the base random seed so a run is reproducible.
func WithSeed(seed uint64) Option {
	return func(s *simulator) {
		s.seed = seed
	}
}

// WithGoroutines spreads rounds across the given number of goroutines. Each
// round draws from its own source derived from the base seed, keeping the
// per-round statistics independent.
func WithGoroutines(goroutines int) Option {
	return func(s *simulator) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithWriter persists the raw round records and the summary as CSV.
func WithWriter(w *metrics.Writer) Option {
	return func(s *simulator) {
		s.writer = w
	}
}

// PlayNGames runs n rounds and folds all 2n results into a summary holding
// the raw records and the per-strategy win proportions. It never prints the
// report; rendering is the caller's concern.
func PlayNGames(n int, options ...Option) (*metrics.Summary, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRounds, n)
	}

	s := &simulator{
		rounds:     n,
		seed:       uint64(time.Now().UnixNano()),
		goroutines: 1,
	}
	for _, option := range options {
		option(s)
	}

	log.Info().Int("rounds", s.rounds).Int("goroutines", s.goroutines).
		Msg("starting simulation...")

	var records []metrics.RoundRecord
	if s.goroutines > 1 {
		records = s.runParallel()
	} else {
		records = s.run()
	}

	summary := metrics.Summarize(records)
	for _, line := range summary.Lines {
		log.Info().Msgf("strategy %s won %d of %d rounds (%.2f)",
			line.Strategy, line.Wins, summary.Rounds, line.WinRate)
	}
	log.Info().Msg("completed simulation")

	if s.writer != nil {
		err := s.writer.WriteRoundRecords(records)
		if err != nil {
			return nil, fmt.Errorf("failed to store round records: %w", err)
		}
		err = s.writer.WriteSummary(summary)
		if err != nil {
			return nil, fmt.Errorf("failed to store summary: %w", err)
		}
		log.Info().Msgf("stored results under %s", s.writer.Dir())
	}

	return summary, nil
}

// run plays every round sequentially off one shared source. The source is
// never reset between rounds; each round simply advances it.
func (s *simulator) run() []metrics.RoundRecord {
	rng := rand.New(rand.NewSource(s.seed))
	records := make([]metrics.RoundRecord, 0, len(game.Strategies())*s.rounds)
	for i := 0; i < s.rounds; i++ {
		records = append(records, recordRound(i, engine.PlayGame(rng))...)
	}
	return records
}

// runParallel fans rounds out over a worker pool. Every round gets a source
// derived from the base seed and its own index, and writes into a disjoint
// slice segment, so the output is deterministic per seed regardless of
// scheduling.
func (s *simulator) runParallel() []metrics.RoundRecord {
	perRound := len(game.Strategies())
	records := make([]metrics.RoundRecord, perRound*s.rounds)

	rounds := make(chan int, s.rounds)
	for i := 0; i < s.rounds; i++ {
		rounds <- i
	}
	close(rounds)

	var wg sync.WaitGroup
	for w := 0; w < s.goroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for i := range rounds {
				rng := rand.New(rand.NewSource(s.seed + uint64(i) + 1))
				copy(records[i*perRound:(i+1)*perRound], recordRound(i, engine.PlayGame(rng)))
			}
		}()
	}
	wg.Wait()

	return records
}

func recordRound(round int, results []metrics.RoundResult) []metrics.RoundRecord {
	records := make([]metrics.RoundRecord, len(results))
	for j, r := range results {
		records[j] = metrics.RoundRecord{Round: round, RoundResult: r}
	}
	return records
}
