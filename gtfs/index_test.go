package gtfs

import (
	"archive/zip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const routesFixture = "route_id,agency_id,route_short_name,route_long_name,route_type\n" +
	"IWLR-191,SLR, L1 ,Dulwich Hill Line,0\n" +
	"BMT_1,SydneyTrains,BMT,Blue Mountains Line,2\n" +
	"2441_901,GSBC,901,Liverpool to Holsworthy,700\n" +
	" APT_1 ,SydneyTrains,T8,Airport & South Line,2\n" +
	"NOSHORT,X,,,3\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	return p
}

func TestNewRouteIndexFromReader(t *testing.T) {
	idx, err := NewRouteIndexFromReader(strings.NewReader(routesFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name  string
		check func() bool
		want  bool
	}{
		{"short name normalised", func() bool { return idx.HasShortName("l1") }, true},
		{"short name lookup is case-insensitive", func() bool { return idx.HasShortName(" BMT ") }, true},
		{"numeric short name", func() bool { return idx.HasShortName("901") }, true},
		{"unknown short name", func() bool { return idx.HasShortName("t9") }, false},
		{"blank short name never indexed", func() bool { return idx.HasShortName("") }, false},
		{"route id", func() bool { return idx.HasRouteID("iwlr-191") }, true},
		{"route id trimmed", func() bool { return idx.HasRouteID("APT_1") }, true},
		{"empty route id", func() bool { return idx.HasRouteID("  ") }, false},
		{"long name fragment", func() bool { return idx.LongNameContains("blue mountains") }, true},
		{"long name fragment missing", func() bool { return idx.LongNameContains("hunter line") }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.check(); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	sn, ids, ln := idx.Stats()
	if sn != 4 || ids != 5 || ln != 5 {
		t.Errorf("Stats() = %d/%d/%d, want 4/5/5", sn, ids, ln)
	}
}

func TestParseRoutes_BOMAndShortRows(t *testing.T) {
	content := "\ufeffroute_id,route_short_name\nA,1\nB\n"
	routes, err := ParseRoutes(strings.NewReader(content))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes, got %d", len(routes))
	}
	if routes[0].ID != "A" || routes[0].ShortName != "1" || routes[0].LongName != "" {
		t.Errorf("unexpected first route: %+v", routes[0])
	}
	if routes[1].ShortName != "" {
		t.Errorf("short row should read blank short name: %+v", routes[1])
	}
}

func TestParseRoutes_MissingRouteID(t *testing.T) {
	_, err := ParseRoutes(strings.NewReader("route_short_name\nT1\n"))
	if !errors.Is(err, ErrNoRouteIDColumn) {
		t.Errorf("expected ErrNoRouteIDColumn, got %v", err)
	}
	_, err = ParseRoutes(strings.NewReader(""))
	if !errors.Is(err, ErrNoRouteIDColumn) {
		t.Errorf("expected ErrNoRouteIDColumn for empty input, got %v", err)
	}
}

func TestLoadRoutes_TextFile(t *testing.T) {
	idx, err := LoadRoutes(writeFile(t, "routes.txt", routesFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !idx.HasShortName("t8") {
		t.Error("expected T8 in short names")
	}
}

func TestLoadRoutes_Zip(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gtfs.zip")
	f, err := os.Create(p)
	if err != nil {
		t.Fatalf("create zip: %v", err)
	}
	zw := zip.NewWriter(f)
	for name, body := range map[string]string{
		"agency.txt": "agency_id,agency_name\nSLR,Sydney Light Rail\n",
		"routes.txt": routesFixture,
	} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("zip entry: %v", err)
		}
		if _, err := w.Write([]byte(body)); err != nil {
			t.Fatalf("zip write: %v", err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	f.Close()

	idx, err := LoadRoutes(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !idx.HasRouteID("bmt_1") {
		t.Error("expected BMT_1 route id from zip")
	}
	t.Log("✓ routes.txt loaded from GTFS zip")
}

func TestLoadRoutes_Missing(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"empty path", ""},
		{"non-existent file", filepath.Join(t.TempDir(), "routes.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadRoutes(tt.path)
			if !errors.Is(err, ErrRoutesNotFound) {
				t.Errorf("expected ErrRoutesNotFound, got %v", err)
			}
		})
	}
}
