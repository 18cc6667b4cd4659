package formatter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/summary"
	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// Summary table column names
const (
	ColRunID       = "Run ID"
	ColDateTime    = "Date/Time (local)"
	ColAlerts      = "Alerts processed"
	ColTrain       = "Train alerts"
	ColTram        = "Tram/Light rail alerts"
	ColBus         = "Bus alerts"
	ColResolvedPct = "Route names resolved (%)"
)

// SummaryColumns is the summary table header in output order.
var SummaryColumns = []string{ColRunID, ColDateTime, ColAlerts, ColTrain, ColTram, ColBus, ColResolvedPct}

// AveragesColumns is the per-city averages table header.
var AveragesColumns = []string{
	"City",
	"Avg alerts processed",
	"Avg train alerts",
	"Avg tram/light rail alerts",
	"Avg bus alerts",
	"Avg route names resolved (%)",
}

// ErrMissingColumns is returned when a table lacks required columns.
var ErrMissingColumns = errors.New("missing required columns")

// FormatPercent renders a percentage with one decimal place.
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func summaryRecord(r summary.RunSummary) []string {
	return []string{
		r.RunID,
		r.DateTimeLocal,
		strconv.Itoa(r.Alerts),
		strconv.Itoa(r.Train),
		strconv.Itoa(r.Tram),
		strconv.Itoa(r.Bus),
		FormatPercent(r.ResolvedPct),
	}
}

// WriteCSV writes rows as a summary table prefixed with a UTF-8 BOM.
func WriteCSV(w io.Writer, rows []summary.RunSummary) error {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, summaryRecord(r))
	}
	return writeBOMCSV(w, SummaryColumns, records)
}

// WriteCSVFile writes rows to path, creating parent directories as needed.
func WriteCSVFile(path string, rows []summary.RunSummary) error {
	return writeFile(path, func(w io.Writer) error { return WriteCSV(w, rows) })
}

// WriteAveragesCSV writes one row per city with every mean at one decimal place.
func WriteAveragesCSV(w io.Writer, avgs []summary.CityAverage) error {
	records := make([][]string, 0, len(avgs))
	for _, a := range avgs {
		records = append(records, []string{
			a.City,
			FormatPercent(a.Alerts),
			FormatPercent(a.Train),
			FormatPercent(a.Tram),
			FormatPercent(a.Bus),
			FormatPercent(a.ResolvedPct),
		})
	}
	return writeBOMCSV(w, AveragesColumns, records)
}

// WriteAveragesCSVFile writes the averages table to path.
func WriteAveragesCSVFile(path string, avgs []summary.CityAverage) error {
	return writeFile(path, func(w io.Writer) error { return WriteAveragesCSV(w, avgs) })
}

func writeBOMCSV(w io.Writer, header []string, records [][]string) error {
	bw := utils.NewBOMWriter(w)
	cw := csv.NewWriter(bw)
	if err := cw.Write(header); err != nil {
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		return err
	}
	return bw.Close()
}

func writeFile(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// ReadSummaries parses a summary table written by WriteCSV. The totals row, if
// present, is returned like any other row.
func ReadSummaries(r io.Reader) ([]summary.RunSummary, error) {
	cr := csv.NewReader(utils.NewBOMReader(r))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: empty table", ErrMissingColumns)
	}
	idx, err := ColumnIndex(records[0], SummaryColumns)
	if err != nil {
		return nil, err
	}

	rows := make([]summary.RunSummary, 0, len(records)-1)
	for n, rec := range records[1:] {
		cell := func(col string) string {
			if i := idx[col]; i < len(rec) {
				return strings.TrimSpace(rec[i])
			}
			return ""
		}
		var s summary.RunSummary
		s.RunID = cell(ColRunID)
		s.DateTimeLocal = cell(ColDateTime)
		for _, f := range []struct {
			col string
			dst *int
		}{
			{ColAlerts, &s.Alerts},
			{ColTrain, &s.Train},
			{ColTram, &s.Tram},
			{ColBus, &s.Bus},
		} {
			v, err := ParseCount(cell(f.col))
			if err != nil {
				return nil, fmt.Errorf("row %d, %s: %w", n+2, f.col, err)
			}
			*f.dst = v
		}
		pct, err := strconv.ParseFloat(cell(ColResolvedPct), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d, %s: %w", n+2, ColResolvedPct, err)
		}
		s.ResolvedPct = pct
		rows = append(rows, s)
	}
	return rows, nil
}

// ReadSummariesFile opens path and parses it with ReadSummaries.
func ReadSummariesFile(path string) ([]summary.RunSummary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rows, err := ReadSummaries(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rows, nil
}

// ColumnIndex maps each required column to its position in header. Header names
// are compared after trimming.
func ColumnIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return idx, nil
}

// ParseCount parses an alert count. Whole-number floats such as "12.0" are
// accepted since spreadsheet tools often rewrite counts that way.
func ParseCount(s string) (int, error) {
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("not a whole number: %q", s)
	}
	return int(f), nil
}
