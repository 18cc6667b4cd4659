package resolve

import (
	"regexp"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/alert"
	"github.com/theoremus-urban-solutions/alert-runs/gtfs"
	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// NamedLineFragments are line names looked for in alert text. A fragment only
// resolves an alert when some route long name contains it too.
var NamedLineFragments = []string{
	"western line",
	"eastern suburbs",
	"inner west",
	"airport line",
	"blue mountains",
	"south coast",
	"central coast",
	"hunter line",
}

var (
	lineCodeRe = regexp.MustCompile(`(?i)\b([tlm])\s*([1-9])\b`)
	// The bare-token alternative matches any standalone 1-4 digit number
	// (optionally letter-prefixed), not only ones that look like bus routes.
	busRouteRe = regexp.MustCompile(`(?i)\broute\s*([a-z]?\d{1,4})\b|\b([a-z]?\d{1,4})\b`)
)

// IndexResolver resolves alerts against a static route index. It is read-only
// and holds no per-alert state.
type IndexResolver struct {
	index     *gtfs.RouteIndex
	fragments []string
}

// NewIndexResolver returns a resolver backed by index.
func NewIndexResolver(index *gtfs.RouteIndex) (*IndexResolver, error) {
	if index == nil {
		return nil, ErrNoRouteIndex
	}
	return &IndexResolver{index: index, fragments: NamedLineFragments}, nil
}

func (r *IndexResolver) Resolved(rec alert.Record) bool {
	_, ok := r.Explain(rec)
	return ok
}

// Explain returns the first strategy that resolves rec.
func (r *IndexResolver) Explain(rec alert.Record) (Strategy, bool) {
	if rec.HasShortName() {
		return StrategyShortName, true
	}
	if r.index.HasRouteID(rec.RouteID) {
		return StrategyRouteID, true
	}
	text := utils.FoldText(rec.AllText())
	if text == "" {
		return StrategyNone, false
	}
	if r.lineCodeKnown(text) {
		return StrategyLineCode, true
	}
	if r.namedLineKnown(text) {
		return StrategyNamedLine, true
	}
	if r.busRouteKnown(text) {
		return StrategyBusRoute, true
	}
	return StrategyNone, false
}

func (r *IndexResolver) lineCodeKnown(text string) bool {
	for _, m := range lineCodeRe.FindAllStringSubmatch(text, -1) {
		if r.index.HasShortName(m[1] + m[2]) {
			return true
		}
	}
	return false
}

func (r *IndexResolver) namedLineKnown(text string) bool {
	for _, frag := range r.fragments {
		if strings.Contains(text, frag) && r.index.LongNameContains(frag) {
			return true
		}
	}
	return false
}

func (r *IndexResolver) busRouteKnown(text string) bool {
	for _, m := range busRouteRe.FindAllStringSubmatch(text, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if token != "" && r.index.HasShortName(token) {
			return true
		}
	}
	return false
}
