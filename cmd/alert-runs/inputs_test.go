package main

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/theoremus-urban-solutions/alert-runs/config"
)

func TestResolveCity(t *testing.T) {
	orig := config.Config
	t.Cleanup(func() { config.Config = orig })
	config.Config = config.Default()

	dir := t.TempDir()
	for _, name := range []string{"seq_alerts_20250301_0815.csv", "seq_alerts_20250302_0815.csv"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("summary_en\n"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	pattern := filepath.Join(dir, "seq_alerts_*.csv")

	city, files, err := resolveCity("", []string{pattern})
	if err != nil {
		t.Fatalf("resolveCity: %v", err)
	}
	if city.Tag != "SEQ" || len(files) != 2 {
		t.Errorf("city = %s, files = %v", city.Tag, files)
	}

	city, _, err = resolveCity("Melbourne", []string{pattern})
	if err != nil || city.Tag != "MEL" {
		t.Errorf("explicit city: %s, %v", city.Tag, err)
	}

	if _, _, err := resolveCity("Atlantis", nil); err == nil {
		t.Error("expected error for unknown city")
	}
	if _, _, err := resolveCity("", nil); err == nil {
		t.Error("expected error without city or patterns")
	}
}

func TestValidationTargets(t *testing.T) {
	orig := config.Config
	t.Cleanup(func() { config.Config = orig })
	config.Config = config.Default()

	want := []string{
		"results/tables/_runs_summary_MEL.csv",
		"results/tables/_runs_summary_SYD.csv",
		"results/tables/_runs_summary_SEQ.csv",
	}
	if got := validationTargets(nil); !reflect.DeepEqual(got, want) {
		t.Errorf("validationTargets(nil) = %v, want %v", got, want)
	}
	if got := validationTargets([]string{"a.csv"}); !reflect.DeepEqual(got, []string{"a.csv"}) {
		t.Errorf("explicit paths not kept: %v", got)
	}
}
