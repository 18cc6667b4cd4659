// Package resolve decides whether an alert can be tied to an identifiable route.
package resolve

import (
	"errors"
	"fmt"

	"github.com/theoremus-urban-solutions/alert-runs/alert"
	"github.com/theoremus-urban-solutions/alert-runs/gtfs"
)

// Resolver reports whether an alert's route could be identified.
type Resolver interface {
	Resolved(rec alert.Record) bool
}

// Strategy names how an alert was resolved.
type Strategy string

// Resolution strategies, in evaluation order.
const (
	StrategyNone      Strategy = ""
	StrategyShortName Strategy = "short_name"
	StrategyRouteID   Strategy = "route_id"
	StrategyLineCode  Strategy = "line_code"
	StrategyNamedLine Strategy = "named_line"
	StrategyBusRoute  Strategy = "bus_route"
)

// Resolver kinds accepted by New.
const (
	KindShortName  = "short_name"
	KindRouteIndex = "route_index"
)

var (
	// ErrNoRouteIndex is returned when the index-aware resolver is requested without an index.
	ErrNoRouteIndex = errors.New("resolve: route index required")
	// ErrUnknownKind is returned by New for an unrecognised resolver kind.
	ErrUnknownKind = errors.New("resolve: unknown resolver kind")
)

// ShortNameResolver resolves an alert iff route_short_name is non-blank.
// Free text is never consulted.
type ShortNameResolver struct{}

func (ShortNameResolver) Resolved(rec alert.Record) bool {
	return rec.HasShortName()
}

// New returns the resolver for kind. KindRouteIndex requires a non-nil index.
func New(kind string, index *gtfs.RouteIndex) (Resolver, error) {
	switch kind {
	case "", KindShortName:
		return ShortNameResolver{}, nil
	case KindRouteIndex:
		return NewIndexResolver(index)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

// Explain returns the strategy that resolved rec, for resolvers that can tell.
// Other resolvers report StrategyShortName for any resolved alert.
func Explain(r Resolver, rec alert.Record) (Strategy, bool) {
	if ir, ok := r.(*IndexResolver); ok {
		return ir.Explain(rec)
	}
	if r.Resolved(rec) {
		return StrategyShortName, true
	}
	return StrategyNone, false
}
