package gtfs

import (
	"archive/zip"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

var (
	// ErrRoutesNotFound is returned when no routes.txt can be read from the configured path.
	ErrRoutesNotFound = errors.New("gtfs: routes.txt not found")
	// ErrNoRouteIDColumn is returned when routes.txt has no route_id column.
	ErrNoRouteIDColumn = errors.New("gtfs: routes.txt has no route_id column")
)

// LoadRoutes builds a RouteIndex from a routes.txt file or a GTFS zip holding one.
func LoadRoutes(routesPath string) (*RouteIndex, error) {
	if routesPath == "" {
		return nil, fmt.Errorf("%w: no path configured", ErrRoutesNotFound)
	}
	if _, err := os.Stat(routesPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRoutesNotFound, routesPath, err)
	}
	if strings.EqualFold(filepath.Ext(routesPath), ".zip") {
		return loadFromLocalZip(routesPath)
	}
	f, err := os.Open(routesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRoutesNotFound, err)
	}
	defer f.Close()
	idx, err := NewRouteIndexFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", routesPath, err)
	}
	return idx, nil
}

// NewRouteIndexFromReader parses routes.txt content and builds an index.
func NewRouteIndexFromReader(r io.Reader) (*RouteIndex, error) {
	routes, err := ParseRoutes(r)
	if err != nil {
		return nil, err
	}
	return NewRouteIndex(routes), nil
}

// loadFromLocalZip opens a local GTFS zip file and consumes routes.txt.
func loadFromLocalZip(zipPath string) (*RouteIndex, error) {
	zr, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	for _, f := range zr.File {
		if strings.ToLower(path.Base(f.Name)) != "routes.txt" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		idx, err := NewRouteIndexFromReader(rc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", zipPath, err)
		}
		return idx, nil
	}
	return nil, fmt.Errorf("%w in %s", ErrRoutesNotFound, zipPath)
}

// ParseRoutes reads routes.txt. Columns are matched case-insensitively; missing
// short/long name columns and short rows read as blank.
func ParseRoutes(r io.Reader) ([]Route, error) {
	csvr := csv.NewReader(utils.NewBOMReader(r))
	csvr.FieldsPerRecord = -1
	rec, err := csvr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rec) == 0 {
		return nil, ErrNoRouteIDColumn
	}
	head := rec[0]
	idx := func(col string) int {
		for i, h := range head {
			if strings.EqualFold(strings.TrimSpace(h), col) {
				return i
			}
		}
		return -1
	}
	rID := idx("route_id")
	rSN := idx("route_short_name")
	rLN := idx("route_long_name")
	if rID < 0 {
		return nil, ErrNoRouteIDColumn
	}
	cell := func(row []string, i int) string {
		if i >= 0 && i < len(row) {
			return row[i]
		}
		return ""
	}
	routes := make([]Route, 0, len(rec)-1)
	for _, row := range rec[1:] {
		routes = append(routes, Route{
			ID:        cell(row, rID),
			ShortName: cell(row, rSN),
			LongName:  cell(row, rLN),
		})
	}
	return routes, nil
}
