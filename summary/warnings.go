package summary

import (
	"fmt"
	"log"
	"sort"
	"strings"
)

// Warning type constants
const (
	WarningNoText      = "no_text"
	WarningNoCreatedAt = "no_created_at"
	WarningUnresolved  = "unresolved_route"
	WarningResidual    = "residual_mode"
)

// warningInfo holds aggregated information about a specific warning type
type warningInfo struct {
	count    int
	examples []string
}

// WarningAggregator collects data-quality warnings while summarising a run and
// outputs consolidated summaries
type WarningAggregator struct {
	warnings map[string]*warningInfo
}

// NewWarningAggregator creates a new warning aggregator
func NewWarningAggregator() *WarningAggregator {
	return &WarningAggregator{
		warnings: make(map[string]*warningInfo),
	}
}

// Add records a warning occurrence with an example ID
func (w *WarningAggregator) Add(warningType, exampleID string) {
	if w == nil {
		return
	}
	if w.warnings[warningType] == nil {
		w.warnings[warningType] = &warningInfo{
			examples: make([]string, 0, 3),
		}
	}

	info := w.warnings[warningType]
	info.count++

	// Store up to 3 examples
	if len(info.examples) < 3 {
		info.examples = append(info.examples, exampleID)
	}
}

// Count returns how many times warningType was recorded.
func (w *WarningAggregator) Count(warningType string) int {
	if w == nil || w.warnings[warningType] == nil {
		return 0
	}
	return w.warnings[warningType].count
}

// Messages returns one formatted line per warning type, sorted by type.
func (w *WarningAggregator) Messages(runID, city string) []string {
	if w == nil || len(w.warnings) == 0 {
		return nil
	}
	types := make([]string, 0, len(w.warnings))
	for t := range w.warnings {
		types = append(types, t)
	}
	sort.Strings(types)
	out := make([]string, 0, len(types))
	for _, t := range types {
		out = append(out, formatWarningMessage(t, runID, city, w.warnings[t]))
	}
	return out
}

// LogAll outputs all collected warnings in consolidated format
func (w *WarningAggregator) LogAll(runID, city string) {
	for _, msg := range w.Messages(runID, city) {
		log.Printf("%s", msg)
	}
}

func formatWarningMessage(warningType, runID, city string, info *warningInfo) string {
	var description, action string

	switch warningType {
	case WarningNoText:
		description = "alerts with no summary_en/plain_en/text"
		action = "Classifying as bus (residual)"
	case WarningNoCreatedAt:
		description = "alerts with no created_at_iso"
		action = "Skipping them for the run timestamp fallback"
	case WarningUnresolved:
		description = "alerts with no resolvable route"
		action = "Counting them as unresolved"
	case WarningResidual:
		description = "alerts matching no mode pattern"
		action = "Classifying as bus (residual)"
	default:
		description = "unknown issue"
		action = "Continuing"
	}

	return fmt.Sprintf("Run %s for city %s has %s (%d occurrences). %s. Examples: %s",
		runID, city, description, info.count, action, strings.Join(info.examples, ", "))
}
