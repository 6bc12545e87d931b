// Package telemetry logs per-generation board statistics as CSV.
package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// GenerationStats is one row of the generations log.
type GenerationStats struct {
	Generation int     `csv:"generation"`
	Alive      int     `csv:"alive"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	AliveFrac  float64 `csv:"alive_frac"`
}

// Diff counts births and deaths between two generations of the same board.
func Diff(prev, next []bool) (births, deaths int) {
	for i := range prev {
		switch {
		case !prev[i] && next[i]:
			births++
		case prev[i] && !next[i]:
			deaths++
		}
	}
	return births, deaths
}

// Writer appends generation records to generations.csv in the output
// directory. A nil Writer discards everything, so callers never branch on
// whether telemetry is enabled.
type Writer struct {
	file          *os.File
	headerWritten bool
}

// NewWriter creates the output directory and the generations log inside it.
// An empty dir disables telemetry and returns nil.
func NewWriter(dir string) (*Writer, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	f, err := os.Create(filepath.Join(dir, "generations.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating generations.csv: %w", err)
	}
	return &Writer{file: f}, nil
}

// Write appends one stats record, emitting the CSV header on first use.
func (w *Writer) Write(stats GenerationStats) error {
	if w == nil {
		return nil
	}
	records := []GenerationStats{stats}
	if !w.headerWritten {
		if err := gocsv.Marshal(records, w.file); err != nil {
			return fmt.Errorf("writing generation stats: %w", err)
		}
		w.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, w.file); err != nil {
		return fmt.Errorf("writing generation stats: %w", err)
	}
	return nil
}

// Close flushes and closes the log.
func (w *Writer) Close() error {
	if w == nil || w.file == nil {
		return nil
	}
	return w.file.Close()
}
