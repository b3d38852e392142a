package main

import (
	"flag"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"montyhall/experiments"
	"montyhall/experiments/metrics"
)

func main() {
	rounds := flag.Int("rounds", experiments.DefaultRounds, "Number of rounds to simulate")
	seed := flag.Uint64("seed", 0, "Base random seed (0 derives one from the clock)")
	goroutines := flag.Int("goroutines", 1, "Number of goroutines for parallel rounds")
	out := flag.String("out", "", "Directory for CSV export of round records (empty disables export)")
	verbose := flag.Bool("v", false, "Log simulation progress")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	options := []experiments.Option{}
	if *seed != 0 {
		options = append(options, experiments.WithSeed(*seed))
	}
	if *goroutines > 1 {
		options = append(options, experiments.WithGoroutines(*goroutines))
	}
	if *out != "" {
		writer, err := metrics.NewWriter(*out)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create results writer")
		}
		options = append(options, experiments.WithWriter(writer))
	}

	summary, err := experiments.PlayNGames(*rounds, options...)
	if err != nil {
		log.Fatal().Err(err).Msg("simulation failed")
	}

	err = summary.WriteTable(os.Stdout)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to render summary")
	}
}
