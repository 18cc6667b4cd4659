package formatter

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/theoremus-urban-solutions/alert-runs/summary"
)

// WriteText prints rows as an aligned console table.
func WriteText(w io.Writer, rows []summary.RunSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(SummaryColumns, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(summaryRecord(r), "\t"))
	}
	return tw.Flush()
}
