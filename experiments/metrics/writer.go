package metrics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Writer persists raw simulation records as CSV for offline analysis.
type Writer struct {
	baseDir string
}

// NewWriter creates a timestamped subfolder under dir to hold one run's
// output files.
func NewWriter(dir string) (*Writer, error) {
	timestamp := time.Now().UTC().Format(time.RFC3339)
	baseDir := filepath.Join(dir, timestamp)
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

// Dir returns the directory this run writes into.
func (w *Writer) Dir() string {
	return w.baseDir
}

// WriteRoundRecords stores every (round, strategy, outcome) row.
func (w *Writer) WriteRoundRecords(records []RoundRecord) error {
	path := filepath.Join(w.baseDir, "round_records.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create round records file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"round", "strategy", "outcome"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write round records header: %w", err)
	}

	for _, record := range records {
		row := []string{
			strconv.Itoa(record.Round),
			record.Strategy.String(),
			record.Outcome.String(),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write round record row: %w", err)
		}
	}

	return nil
}

// WriteSummary stores the per-strategy proportion table.
func (w *Writer) WriteSummary(summary *Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	defer writer.Flush()

	header := []string{"strategy", "wins", "losses", "win_rate", "lose_rate"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, line := range summary.Lines {
		row := []string{
			line.Strategy.String(),
			strconv.Itoa(line.Wins),
			strconv.Itoa(line.Losses),
			strconv.FormatFloat(line.WinRate, 'f', 2, 64),
			strconv.FormatFloat(line.LossRate, 'f', 2, 64),
		}
		err = writer.Write(row)
		if err != nil {
			return fmt.Errorf("failed to write summary row: %w", err)
		}
	}

	return nil
}
