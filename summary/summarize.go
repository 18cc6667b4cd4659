package summary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/alert"
	"github.com/theoremus-urban-solutions/alert-runs/classify"
	"github.com/theoremus-urban-solutions/alert-runs/resolve"
	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// ErrModeCountMismatch is the panic value (wrapped) raised when per-mode counts do
// not add up to the number of alerts. It indicates a classifier defect.
var ErrModeCountMismatch = errors.New("mode counts must equal alerts processed")

// ModeClassifier assigns one mode per alert text.
type ModeClassifier interface {
	Classify(text string) classify.Mode
}

type explainer interface {
	Explain(text string) (classify.Mode, string)
}

// RunSummary is one row of the reporting table.
type RunSummary struct {
	RunID         string  `json:"run_id"`
	DateTimeLocal string  `json:"date_time_local"`
	Alerts        int     `json:"alerts_processed"`
	Train         int     `json:"train_alerts"`
	Tram          int     `json:"tram_light_rail_alerts"`
	Bus           int     `json:"bus_alerts"`
	ResolvedPct   float64 `json:"route_names_resolved_pct"`
}

// Options controls how a run is summarised.
type Options struct {
	// UseRunIDTimestamp prefers a YYYYMMDD_HHMM stamp in the run id over created_at.
	UseRunIDTimestamp bool
	// TZOffset is appended to run-id timestamps; defaults to utils.DefaultTZOffset.
	TZOffset string
	// Warnings, when set, collects data-quality warnings for the run.
	Warnings *WarningAggregator
}

// Summarize classifies and resolves every record of one run and returns its
// summary row. It panics if the mode counts do not sum to the alert count.
func Summarize(runID string, records []alert.Record, c ModeClassifier, r resolve.Resolver, opts Options) RunSummary {
	ex, canExplain := c.(explainer)

	var counts classify.Counts
	resolved := 0
	for i, rec := range records {
		rowID := "row " + strconv.Itoa(i+1)
		text := rec.PrimaryText()
		if text == "" {
			opts.Warnings.Add(WarningNoText, rowID)
		}

		var mode classify.Mode
		if canExplain {
			var rule string
			mode, rule = ex.Explain(text)
			if rule == classify.ResidualRule && text != "" {
				opts.Warnings.Add(WarningResidual, rowID)
			}
		} else {
			mode = c.Classify(text)
		}
		counts.Add(mode)

		if r.Resolved(rec) {
			resolved++
		} else {
			opts.Warnings.Add(WarningUnresolved, rowID)
		}
		if strings.TrimSpace(rec.CreatedAt) == "" {
			opts.Warnings.Add(WarningNoCreatedAt, rowID)
		}
	}

	s := RunSummary{
		RunID:         runID,
		DateTimeLocal: runTimestamp(runID, records, opts),
		Alerts:        len(records),
		Train:         counts.Train,
		Tram:          counts.Tram,
		Bus:           counts.Bus,
		ResolvedPct:   utils.Percent(resolved, len(records)),
	}
	mustBalance(s)
	return s
}

// runTimestamp prefers the run-id stamp, then the first non-blank created_at.
func runTimestamp(runID string, records []alert.Record, opts Options) string {
	if opts.UseRunIDTimestamp {
		if ts := utils.RunIDTimestamp(runID, opts.TZOffset); ts != "" {
			return ts
		}
	}
	for _, rec := range records {
		if ts := strings.TrimSpace(rec.CreatedAt); ts != "" {
			return ts
		}
	}
	return ""
}

func mustBalance(s RunSummary) {
	if s.Train+s.Tram+s.Bus != s.Alerts {
		panic(fmt.Errorf("%w: run %s: %d train + %d tram + %d bus != %d",
			ErrModeCountMismatch, s.RunID, s.Train, s.Tram, s.Bus, s.Alerts))
	}
}
