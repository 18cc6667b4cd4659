package formatter

import (
	"time"

	"github.com/theoremus-urban-solutions/alert-runs/summary"
)

// Report is a summary table wrapped with its generation metadata.
type Report struct {
	GeneratedAt string               `json:"generated_at"`
	City        string               `json:"city"`
	BatchID     string               `json:"batch_id,omitempty"`
	Runs        []summary.RunSummary `json:"runs"`
	Total       summary.RunSummary   `json:"total"`
}

// WrapTable creates a Report for table. An empty city is reported as "UNKNOWN".
func WrapTable(table summary.Table, city, batchID string, timestamp int64) *Report {
	if city == "" {
		city = "UNKNOWN"
	}
	runs := table.Runs
	if runs == nil {
		runs = []summary.RunSummary{}
	}
	return &Report{
		GeneratedAt: iso8601FromUnixSeconds(timestamp),
		City:        city,
		BatchID:     batchID,
		Runs:        runs,
		Total:       table.Total,
	}
}

func iso8601FromUnixSeconds(ts int64) string {
	return time.Unix(ts, 0).UTC().Format(time.RFC3339)
}
