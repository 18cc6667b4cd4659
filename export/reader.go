// Package export reads alert export files: one CSV per collection run.
package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/alert"
	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

var (
	// ErrNoFiles is returned by Discover when no pattern matches a file.
	ErrNoFiles = errors.New("export: no input files matched")
	// ErrEmptyFile is returned for a file without a header row.
	ErrEmptyFile = errors.New("export: file has no header")
)

// Run is one export file loaded into memory.
type Run struct {
	Path   string
	ID     string
	Header []string
	Rows   []map[string]string
}

// Records converts the rows of the run into alert records.
func (r *Run) Records() []alert.Record {
	out := make([]alert.Record, 0, len(r.Rows))
	for _, row := range r.Rows {
		out = append(out, alert.FromRow(row))
	}
	return out
}

// HasColumn reports whether the run's header contains col.
func (r *Run) HasColumn(col string) bool {
	for _, h := range r.Header {
		if h == col {
			return true
		}
	}
	return false
}

// RunID returns the base name of path without its extension.
func RunID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Discover expands glob patterns and returns the matched files de-duplicated and
// sorted lexicographically.
func Discover(patterns ...string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	for _, p := range patterns {
		matches, err := filepath.Glob(p)
		if err != nil {
			return nil, fmt.Errorf("export: bad pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoFiles, strings.Join(patterns, ", "))
	}
	sort.Strings(files)
	return files, nil
}

// ReadRun loads one export file.
func ReadRun(path string) (*Run, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	header, rows, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &Run{Path: path, ID: RunID(path), Header: header, Rows: rows}, nil
}

// ReadCSV parses a CSV with a header row into column -> value maps. A leading
// UTF-8 BOM is dropped. Short rows leave the missing columns empty and header
// names are trimmed.
func ReadCSV(r io.Reader) ([]string, []map[string]string, error) {
	cr := csv.NewReader(utils.NewBOMReader(r))
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyFile
	}
	if err != nil {
		return nil, nil, err
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []map[string]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

// DeriveCityTag guesses the city tag from the names of the input files: SEQ when
// any name contains "seq", MEL for Melbourne-style "alerts_" exports, else RUNS.
func DeriveCityTag(files []string) string {
	joined := strings.ToUpper(strings.Join(baseNames(files), " "))
	switch {
	case strings.Contains(joined, "SEQ"):
		return "SEQ"
	case strings.Contains(joined, "SYD"):
		return "SYD"
	case strings.Contains(joined, "MEL"), strings.Contains(joined, "ALERTS_"):
		return "MEL"
	default:
		return "RUNS"
	}
}

func baseNames(files []string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = filepath.Base(f)
	}
	return out
}
