// Package validate re-checks summary tables written by the summarise step.
package validate

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/formatter"
	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// Failure kinds. ErrMissingColumns is shared with the formatter package.
var (
	ErrMissingColumns = formatter.ErrMissingColumns
	ErrNotNumeric     = errors.New("column not numeric")
	ErrPercentRange   = errors.New("route resolution out of [0,100]")
	ErrModeSum        = errors.New("Train+Tram+Bus != Alerts processed")
)

var numericColumns = []string{
	formatter.ColAlerts,
	formatter.ColTrain,
	formatter.ColTram,
	formatter.ColBus,
	formatter.ColResolvedPct,
}

// Failure describes the first check a table failed.
type Failure struct {
	Kind    error
	Columns []string // missing or non-numeric columns
	Rows    int      // offending row count
}

func (f *Failure) Error() string {
	switch f.Kind {
	case ErrMissingColumns:
		return fmt.Sprintf("missing columns %s", strings.Join(f.Columns, ", "))
	case ErrNotNumeric:
		return fmt.Sprintf("column not numeric -> %s", strings.Join(f.Columns, ", "))
	case ErrPercentRange:
		return fmt.Sprintf("route resolution out of [0,100] in %d row(s)", f.Rows)
	case ErrModeSum:
		return fmt.Sprintf("%d row(s) where Train+Tram+Bus != Alerts processed", f.Rows)
	default:
		return f.Kind.Error()
	}
}

func (f *Failure) Unwrap() error { return f.Kind }

// Report is the outcome of validating one table.
type Report struct {
	Path    string
	Rows    int
	Failure *Failure
}

// OK reports whether every check passed.
func (r *Report) OK() bool { return r.Failure == nil }

// Err returns the failure as an error, or nil.
func (r *Report) Err() error {
	if r.Failure == nil {
		return nil
	}
	return r.Failure
}

// String renders the report as "[OK] path" or "[FAIL] path: reason".
func (r *Report) String() string {
	if r.OK() {
		return "[OK] " + r.Path
	}
	return fmt.Sprintf("[FAIL] %s: %s", r.Path, r.Failure.Error())
}

// ValidateFile checks the summary table at path. The returned error covers
// I/O and CSV syntax problems; check failures are carried by the report.
func ValidateFile(path string) (*Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rep, err := Validate(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	rep.Path = path
	return rep, nil
}

// Validate checks a summary table. Checks run in order and stop at the first
// failure: required columns, numeric columns, percentage range, mode sums.
// A blank numeric cell counts as non-numeric.
func Validate(r io.Reader) (*Report, error) {
	cr := csv.NewReader(utils.NewBOMReader(r))
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	rep := &Report{}
	if len(records) == 0 {
		rep.Failure = &Failure{Kind: ErrMissingColumns, Columns: formatter.SummaryColumns}
		return rep, nil
	}
	rows := records[1:]
	rep.Rows = len(rows)

	idx, err := formatter.ColumnIndex(records[0], formatter.SummaryColumns)
	if err != nil {
		rep.Failure = &Failure{Kind: ErrMissingColumns, Columns: missingColumns(records[0])}
		return rep, nil
	}

	values := make([]map[string]float64, len(rows))
	for i := range rows {
		values[i] = make(map[string]float64, len(numericColumns))
	}
	for _, col := range numericColumns {
		for i, rec := range rows {
			v, ok := parseNumber(rec, idx[col])
			if !ok {
				rep.Failure = &Failure{Kind: ErrNotNumeric, Columns: []string{col}}
				return rep, nil
			}
			values[i][col] = v
		}
	}

	if n := countRows(values, func(v map[string]float64) bool {
		pct := v[formatter.ColResolvedPct]
		return pct < 0 || pct > 100
	}); n > 0 {
		rep.Failure = &Failure{Kind: ErrPercentRange, Rows: n}
		return rep, nil
	}

	if n := countRows(values, func(v map[string]float64) bool {
		return v[formatter.ColTrain]+v[formatter.ColTram]+v[formatter.ColBus] != v[formatter.ColAlerts]
	}); n > 0 {
		rep.Failure = &Failure{Kind: ErrModeSum, Rows: n}
	}
	return rep, nil
}

func parseNumber(rec []string, i int) (float64, bool) {
	if i >= len(rec) {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	return v, err == nil
}

func countRows(values []map[string]float64, bad func(map[string]float64) bool) int {
	n := 0
	for _, v := range values {
		if bad(v) {
			n++
		}
	}
	return n
}

func missingColumns(header []string) []string {
	have := make(map[string]bool, len(header))
	for _, h := range header {
		have[strings.TrimSpace(h)] = true
	}
	var missing []string
	for _, col := range formatter.SummaryColumns {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	return missing
}
