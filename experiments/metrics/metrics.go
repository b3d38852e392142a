// Package metrics holds simulation records and their aggregation into
// per-strategy win proportions.
package metrics

import (
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"montyhall/game"
)

// RoundResult is one strategy's outcome for one round.
type RoundResult struct {
	Strategy game.Strategy
	Outcome  game.Outcome
}

// RoundRecord ties a result to the round that produced it.
type RoundRecord struct {
	Round int
	RoundResult
}

// StrategyLine is one row of the summary table: how one strategy fared
// across every round.
type StrategyLine struct {
	Strategy game.Strategy
	Wins     int
	Losses   int
	WinRate  float64 // row-normalized, rounded to 2 decimals
	LossRate float64
}

// Summary aggregates the full result set of a simulation run. Results keeps
// the raw records for further analysis; Lines holds one row per strategy in
// game.Strategies() order.
type Summary struct {
	Rounds  int
	Results []RoundRecord
	Lines   []StrategyLine
}

// Summarize folds round results into per-strategy proportions. It is pure:
// rendering and printing are the caller's concern.
func Summarize(records []RoundRecord) *Summary {
	wins := map[game.Strategy]int{}
	losses := map[game.Strategy]int{}
	for _, r := range records {
		if r.Outcome == game.Win {
			wins[r.Strategy]++
		} else {
			losses[r.Strategy]++
		}
	}

	strategies := game.Strategies()
	lines := make([]StrategyLine, 0, len(strategies))
	for _, strat := range strategies {
		total := wins[strat] + losses[strat]
		lines = append(lines, StrategyLine{
			Strategy: strat,
			Wins:     wins[strat],
			Losses:   losses[strat],
			WinRate:  roundRate(wins[strat], total),
			LossRate: roundRate(losses[strat], total),
		})
	}

	return &Summary{
		Rounds:  len(records) / len(strategies),
		Results: records,
		Lines:   lines,
	}
}

// roundRate rounds wins/total to 2 decimal places. A strategy with no
// recorded rounds reports a zero rate rather than NaN.
func roundRate(wins, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(wins)/float64(total)*100) / 100
}

// WriteTable renders the proportion table for human inspection.
func (s *Summary) WriteTable(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "strategy\twins\tlosses\twin_rate\tlose_rate")
	for _, line := range s.Lines {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%.2f\n",
			line.Strategy, line.Wins, line.Losses, line.WinRate, line.LossRate)
	}
	return tw.Flush()
}

// Render returns the proportion table as a string.
func (s *Summary) Render() string {
	var b strings.Builder
	// tabwriter flushing to a strings.Builder cannot fail
	_ = s.WriteTable(&b)
	return b.String()
}
