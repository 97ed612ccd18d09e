package experiments

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

var csvHeader = []string{
	"run_id", "game", "cols", "rows",
	"black_heuristic", "black_prune", "black_depth",
	"white_heuristic", "white_prune", "white_depth",
	"black_score", "white_score", "winner", "turns",
	"black_nodes", "white_nodes", "duration", "moves",
}

// CSVWriter is a Sink that writes one row per record.
type CSVWriter struct {
	writer *csv.Writer
	closer io.Closer

	// mutex protects writer and wroteHeader
	mutex       sync.Mutex
	wroteHeader bool
}

// NewCSVWriter creates a CSV sink writing to w.
func NewCSVWriter(w io.Writer) *CSVWriter {
	return &CSVWriter{
		writer: csv.NewWriter(w),
	}
}

// CreateCSVFile creates baseDir/<timestamp>/<runID>.csv and returns a sink writing to it.
func CreateCSVFile(baseDir string, runID uuid.UUID) (*CSVWriter, string, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	dir := filepath.Join(baseDir, timestamp)

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, "", fmt.Errorf("failed to create directory: %w", err)
	}

	path := filepath.Join(dir, runID.String()+".csv")

	f, err := os.Create(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create records file: %w", err)
	}

	w := NewCSVWriter(f)
	w.closer = f

	return w, path, nil
}

// Save writes record and flushes, so the file is usable while a run is in progress.
func (w *CSVWriter) Save(_ context.Context, record Record) error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.wroteHeader {
		if err := w.writer.Write(csvHeader); err != nil {
			return fmt.Errorf("failed to write records header: %w", err)
		}
		w.wroteHeader = true
	}

	row := []string{
		record.RunID.String(),
		strconv.Itoa(record.Game),
		strconv.Itoa(record.Cols),
		strconv.Itoa(record.Rows),
		record.Black.Heuristic.String(),
		strconv.FormatBool(record.Black.Prune),
		strconv.Itoa(record.Black.Depth),
		record.White.Heuristic.String(),
		strconv.FormatBool(record.White.Prune),
		strconv.Itoa(record.White.Depth),
		strconv.Itoa(record.BlackScore),
		strconv.Itoa(record.WhiteScore),
		record.Winner,
		strconv.Itoa(record.Turns),
		strconv.Itoa(record.BlackNodes),
		strconv.Itoa(record.WhiteNodes),
		record.Duration.String(),
		strings.Join(record.Moves, " "),
	}

	if err := w.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write record row: %w", err)
	}

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	return nil
}

// Close closes the underlying file, if the writer owns one.
func (w *CSVWriter) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	w.writer.Flush()

	if w.closer == nil {
		return nil
	}
	return w.closer.Close()
}
