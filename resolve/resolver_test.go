package resolve

import (
	"errors"
	"testing"

	"github.com/theoremus-urban-solutions/alert-runs/alert"
	"github.com/theoremus-urban-solutions/alert-runs/gtfs"
)

func testIndex() *gtfs.RouteIndex {
	return gtfs.NewRouteIndex([]gtfs.Route{
		{ID: "IWLR-191", ShortName: "L2", LongName: "Randwick Line"},
		{ID: "BMT_1", ShortName: "T1", LongName: "Blue Mountains Line"},
		{ID: "SMNW_M1", ShortName: "M1", LongName: "Metro North West & Bankstown Line"},
		{ID: "2441_901", ShortName: "901", LongName: "Liverpool to Holsworthy"},
	})
}

func TestShortNameResolver(t *testing.T) {
	tests := []struct {
		name string
		rec  alert.Record
		want bool
	}{
		{"short name present", alert.Record{RouteShortName: "T1"}, true},
		{"short name blank", alert.Record{RouteShortName: "   "}, false},
		{"text alone never resolves", alert.Record{SummaryEN: "Route 901 diverted"}, false},
		{"all blank", alert.Record{}, false},
	}
	var r ShortNameResolver
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolved(tt.rec); got != tt.want {
				t.Errorf("Resolved() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIndexResolver_Strategies(t *testing.T) {
	r, err := NewIndexResolver(testIndex())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tests := []struct {
		name     string
		rec      alert.Record
		want     bool
		strategy Strategy
	}{
		{"short name field", alert.Record{RouteShortName: "999"}, true, StrategyShortName},
		{"route id verbatim", alert.Record{RouteID: "IWLR-191"}, true, StrategyRouteID},
		{"route id case and whitespace", alert.Record{RouteID: "  iwlr-191 "}, true, StrategyRouteID},
		{"unknown route id", alert.Record{RouteID: "NOPE"}, false, StrategyNone},
		{"line code with space", alert.Record{SummaryEN: "Trackwork on the T 1 this weekend"}, true, StrategyLineCode},
		{"line code no-break space", alert.Record{SummaryEN: "Trackwork on the T\u00a01 this weekend"}, true, StrategyLineCode},
		{"metro code", alert.Record{PlainEN: "M1 services suspended"}, true, StrategyLineCode},
		{"unknown line code", alert.Record{SummaryEN: "Delays on T4"}, false, StrategyNone},
		{"named line in long names", alert.Record{Text: "Blue Mountains trackwork"}, true, StrategyNamedLine},
		{"named line no-break space", alert.Record{Text: "Blue\u00a0Mountains trackwork"}, true, StrategyNamedLine},
		{"named line not in long names", alert.Record{Text: "South Coast delays"}, false, StrategyNone},
		{"route token", alert.Record{SummaryEN: "Route 901 diverted"}, true, StrategyBusRoute},
		{"bare number token", alert.Record{SummaryEN: "Stop 901 closed"}, true, StrategyBusRoute},
		{"number not a known route", alert.Record{SummaryEN: "Route 123 diverted"}, false, StrategyNone},
		{"text spread over fields", alert.Record{SummaryEN: "Buses on route", Text: "901 delayed"}, true, StrategyBusRoute},
		{"all blank", alert.Record{}, false, StrategyNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			strategy, ok := r.Explain(tt.rec)
			if ok != tt.want {
				t.Errorf("resolved = %v, want %v", ok, tt.want)
			}
			if strategy != tt.strategy {
				t.Errorf("strategy = %q, want %q", strategy, tt.strategy)
			}
			if r.Resolved(tt.rec) != tt.want {
				t.Error("Resolved disagrees with Explain")
			}
		})
	}
}

func TestIndexResolver_RequiresIndex(t *testing.T) {
	if _, err := NewIndexResolver(nil); !errors.Is(err, ErrNoRouteIndex) {
		t.Errorf("expected ErrNoRouteIndex, got %v", err)
	}
	if _, err := New(KindRouteIndex, nil); !errors.Is(err, ErrNoRouteIndex) {
		t.Errorf("expected ErrNoRouteIndex from New, got %v", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		kind    string
		wantErr error
		wantTyp string
	}{
		{"", nil, "short"},
		{KindShortName, nil, "short"},
		{KindRouteIndex, nil, "index"},
		{"fuzzy", ErrUnknownKind, ""},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			r, err := New(tt.kind, testIndex())
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New(%q) error = %v, want %v", tt.kind, err, tt.wantErr)
			}
			switch tt.wantTyp {
			case "short":
				if _, ok := r.(ShortNameResolver); !ok {
					t.Errorf("expected ShortNameResolver, got %T", r)
				}
			case "index":
				if _, ok := r.(*IndexResolver); !ok {
					t.Errorf("expected *IndexResolver, got %T", r)
				}
			}
		})
	}
}

func TestExplain_GenericResolver(t *testing.T) {
	s, ok := Explain(ShortNameResolver{}, alert.Record{RouteShortName: "T1"})
	if !ok || s != StrategyShortName {
		t.Errorf("got %q/%v", s, ok)
	}
	s, ok = Explain(ShortNameResolver{}, alert.Record{})
	if ok || s != StrategyNone {
		t.Errorf("got %q/%v", s, ok)
	}
}
