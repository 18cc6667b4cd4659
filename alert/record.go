// Package alert defines the exported alert record consumed by classification and
// route resolution.
package alert

import "strings"

// Column names recognised in alert export files.
const (
	ColCreatedAt      = "created_at_iso"
	ColRouteID        = "route_id"
	ColRouteShortName = "route_short_name"
	ColRouteLongName  = "route_long_name"
	ColSummaryEN      = "summary_en"
	ColPlainEN        = "plain_en"
	ColText           = "text"
)

// TextColumns lists the free-text columns in priority order.
var TextColumns = []string{ColSummaryEN, ColPlainEN, ColText}

// Columns lists every recognised column in export order.
var Columns = []string{
	ColCreatedAt,
	ColRouteID,
	ColRouteShortName,
	ColRouteLongName,
	ColSummaryEN,
	ColPlainEN,
	ColText,
}

// Record is one exported transit alert. Every field is optional; a missing
// column or blank cell is the empty string.
type Record struct {
	CreatedAt      string
	RouteID        string
	RouteShortName string
	RouteLongName  string
	SummaryEN      string
	PlainEN        string
	Text           string
}

// FromRow builds a Record from a column -> value row. Unknown columns are ignored.
func FromRow(row map[string]string) Record {
	return Record{
		CreatedAt:      row[ColCreatedAt],
		RouteID:        row[ColRouteID],
		RouteShortName: row[ColRouteShortName],
		RouteLongName:  row[ColRouteLongName],
		SummaryEN:      row[ColSummaryEN],
		PlainEN:        row[ColPlainEN],
		Text:           row[ColText],
	}
}

func (r Record) texts() []string {
	return []string{r.SummaryEN, r.PlainEN, r.Text}
}

// PrimaryText returns the first present text field (summary, then plain-language,
// then generic text). A field consisting only of whitespace counts as absent.
func (r Record) PrimaryText() string {
	for _, t := range r.texts() {
		if present(t) {
			return t
		}
	}
	return ""
}

// AllText joins every present text field with a single space.
func (r Record) AllText() string {
	parts := make([]string, 0, 3)
	for _, t := range r.texts() {
		if present(t) {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}

// HasText reports whether any text field is present.
func (r Record) HasText() bool { return r.PrimaryText() != "" }

// HasShortName reports whether route_short_name is non-blank after trimming.
func (r Record) HasShortName() bool { return present(r.RouteShortName) }

func present(s string) bool { return strings.TrimSpace(s) != "" }
