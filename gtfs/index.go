package gtfs

import (
	"sort"
	"strings"
)

// Route is one row of routes.txt.
type Route struct {
	ID        string
	ShortName string
	LongName  string
}

// RouteIndex stores normalised route identifiers for fast lookups
type RouteIndex struct {
	shortNames map[string]bool // normalised route_short_name set
	routeIDs   map[string]bool // normalised route_id set
	longNames  []string        // normalised route_long_name, one per route
}

// Normalize trims and lower-cases a route value.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NewRouteIndex builds an index from routes. Blank short names and ids are skipped;
// long names are kept for every route.
func NewRouteIndex(routes []Route) *RouteIndex {
	g := &RouteIndex{
		shortNames: map[string]bool{},
		routeIDs:   map[string]bool{},
		longNames:  make([]string, 0, len(routes)),
	}
	for _, r := range routes {
		if sn := Normalize(r.ShortName); sn != "" {
			g.shortNames[sn] = true
		}
		if id := Normalize(r.ID); id != "" {
			g.routeIDs[id] = true
		}
		g.longNames = append(g.longNames, Normalize(r.LongName))
	}
	return g
}

// HasShortName reports whether the normalised short name is known.
func (g *RouteIndex) HasShortName(shortName string) bool {
	return g.shortNames[Normalize(shortName)]
}

// HasRouteID reports whether the normalised route id is known.
func (g *RouteIndex) HasRouteID(routeID string) bool {
	id := Normalize(routeID)
	return id != "" && g.routeIDs[id]
}

// LongNameContains reports whether any normalised long name contains fragment.
// fragment must already be lower-case.
func (g *RouteIndex) LongNameContains(fragment string) bool {
	for _, ln := range g.longNames {
		if strings.Contains(ln, fragment) {
			return true
		}
	}
	return false
}

// Stats returns the sizes of the short-name set, the id set and the long-name list.
func (g *RouteIndex) Stats() (shortNames, routeIDs, longNames int) {
	return len(g.shortNames), len(g.routeIDs), len(g.longNames)
}

func (g *RouteIndex) GetAllShortNames() []string { return sortedKeys(g.shortNames) }

func (g *RouteIndex) GetAllRouteIDs() []string { return sortedKeys(g.routeIDs) }

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
