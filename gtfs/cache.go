package gtfs

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// indexSnapshot is the gob wire form of a RouteIndex. Sets are stored sorted so
// the same index always encodes to the same bytes.
type indexSnapshot struct {
	ShortNames []string
	RouteIDs   []string
	LongNames  []string
}

func (g *RouteIndex) snapshot() indexSnapshot {
	return indexSnapshot{
		ShortNames: g.GetAllShortNames(),
		RouteIDs:   g.GetAllRouteIDs(),
		LongNames:  append([]string(nil), g.longNames...),
	}
}

func fromSnapshot(s indexSnapshot) *RouteIndex {
	g := &RouteIndex{
		shortNames: make(map[string]bool, len(s.ShortNames)),
		routeIDs:   make(map[string]bool, len(s.RouteIDs)),
		longNames:  s.LongNames,
	}
	for _, v := range s.ShortNames {
		g.shortNames[v] = true
	}
	for _, v := range s.RouteIDs {
		g.routeIDs[v] = true
	}
	if g.longNames == nil {
		g.longNames = []string{}
	}
	return g
}

// SerializeIndex encodes a RouteIndex to bytes using gob encoding.
func SerializeIndex(index *RouteIndex) ([]byte, error) {
	var buf bytes.Buffer
	if err := SerializeIndexToWriter(index, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DeserializeIndex decodes a RouteIndex from bytes using gob encoding.
func DeserializeIndex(data []byte) (*RouteIndex, error) {
	return DeserializeIndexFromReader(bytes.NewReader(data))
}

// SerializeIndexToFile writes a RouteIndex to a file using gob encoding.
//
// Example:
//
//	index, _ := gtfs.LoadRoutes("config/routes.txt")
//	if err := gtfs.SerializeIndexToFile(index, "cache/routes.gob"); err != nil {
//	    // handle error
//	}
func SerializeIndexToFile(index *RouteIndex, path string) error {
	data, err := SerializeIndex(index)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// DeserializeIndexFromFile reads a RouteIndex from a file using gob encoding.
//
// Example:
//
//	index, err := gtfs.DeserializeIndexFromFile("cache/routes.gob")
//	if err != nil {
//	    // Cache miss or corrupted, parse routes.txt again
//	    index, err = gtfs.LoadRoutes("config/routes.txt")
//	}
func DeserializeIndexFromFile(path string) (*RouteIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache file: %w", err)
	}
	return DeserializeIndex(data)
}

// SerializeIndexToWriter writes a RouteIndex to an io.Writer using gob encoding.
func SerializeIndexToWriter(index *RouteIndex, w io.Writer) error {
	if err := gob.NewEncoder(w).Encode(index.snapshot()); err != nil {
		return fmt.Errorf("failed to encode RouteIndex: %w", err)
	}
	return nil
}

// DeserializeIndexFromReader reads a RouteIndex from an io.Reader using gob encoding.
func DeserializeIndexFromReader(r io.Reader) (*RouteIndex, error) {
	var s indexSnapshot
	if err := gob.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("failed to decode RouteIndex: %w", err)
	}
	return fromSnapshot(s), nil
}

// LoadRoutesCached returns the index from cachePath when it decodes, otherwise
// loads routesPath and refreshes the cache. An empty cachePath disables caching.
func LoadRoutesCached(routesPath, cachePath string) (*RouteIndex, error) {
	if cachePath == "" {
		return LoadRoutes(routesPath)
	}
	if idx, err := DeserializeIndexFromFile(cachePath); err == nil {
		return idx, nil
	}
	idx, err := LoadRoutes(routesPath)
	if err != nil {
		return nil, err
	}
	if err := SerializeIndexToFile(idx, cachePath); err != nil {
		log.Printf("route index cache write failed (%s): %v (continuing)", cachePath, err)
	}
	return idx, nil
}
