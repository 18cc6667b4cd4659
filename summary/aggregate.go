package summary

import (
	"errors"

	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// Totals row markers
const (
	TotalRunID    = "Total"
	TotalDateTime = "—"
)

// ErrEmptyBatch is returned when there are no runs to aggregate.
var ErrEmptyBatch = errors.New("no runs to aggregate")

// Table is a batch of run summaries plus the synthetic totals row.
type Table struct {
	Runs  []RunSummary
	Total RunSummary
}

// Rows returns the run rows followed by the totals row.
func (t Table) Rows() []RunSummary {
	out := make([]RunSummary, 0, len(t.Runs)+1)
	out = append(out, t.Runs...)
	return append(out, t.Total)
}

// Aggregate appends a totals row to runs. Counts are summed; the resolved
// percentage is the unweighted mean of the per-run percentages, so a small run
// weighs as much as a large one.
func Aggregate(runs []RunSummary) (Table, error) {
	if len(runs) == 0 {
		return Table{}, ErrEmptyBatch
	}
	total := RunSummary{RunID: TotalRunID, DateTimeLocal: TotalDateTime}
	var pctSum float64
	for _, r := range runs {
		total.Alerts += r.Alerts
		total.Train += r.Train
		total.Tram += r.Tram
		total.Bus += r.Bus
		pctSum += r.ResolvedPct
	}
	total.ResolvedPct = utils.Round1(pctSum / float64(len(runs)))
	mustBalance(total)

	return Table{Runs: append([]RunSummary(nil), runs...), Total: total}, nil
}
