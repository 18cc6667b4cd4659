package gtfs

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSerializeIndex_RoundTrip(t *testing.T) {
	idx, err := NewRouteIndexFromReader(strings.NewReader(routesFixture))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := SerializeIndex(idx)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	again, err := SerializeIndex(idx)
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Error("serialising the same index twice should give identical bytes")
	}

	restored, err := DeserializeIndex(data)
	if err != nil {
		t.Fatalf("deserialize: %v", err)
	}
	if !restored.HasShortName("901") || !restored.HasRouteID("iwlr-191") || !restored.LongNameContains("dulwich hill") {
		t.Error("restored index lost entries")
	}
	sn, ids, ln := restored.Stats()
	wsn, wids, wln := idx.Stats()
	if sn != wsn || ids != wids || ln != wln {
		t.Errorf("restored stats %d/%d/%d, want %d/%d/%d", sn, ids, ln, wsn, wids, wln)
	}
}

func TestDeserializeIndex_Corrupt(t *testing.T) {
	if _, err := DeserializeIndex([]byte("not gob")); err == nil {
		t.Error("expected error for corrupt data")
	}
}

func TestLoadRoutesCached(t *testing.T) {
	routesPath := writeFile(t, "routes.txt", routesFixture)
	cachePath := filepath.Join(t.TempDir(), "routes.gob")

	idx, err := LoadRoutesCached(routesPath, cachePath)
	if err != nil {
		t.Fatalf("first load: %v", err)
	}
	if _, err := os.Stat(cachePath); err != nil {
		t.Fatalf("cache file not written: %v", err)
	}

	// Remove the source; the cache alone must serve the next load.
	if err := os.Remove(routesPath); err != nil {
		t.Fatalf("remove: %v", err)
	}
	cached, err := LoadRoutesCached(routesPath, cachePath)
	if err != nil {
		t.Fatalf("cached load: %v", err)
	}
	if cached.HasShortName("l1") != idx.HasShortName("l1") {
		t.Error("cached index differs from source index")
	}
	t.Log("✓ route index served from gob cache")
}
