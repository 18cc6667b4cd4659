package export

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestReadRun(t *testing.T) {
	dir := t.TempDir()
	p := writeFile(t, dir, "alerts_20250301_0815.csv",
		"\ufeffcreated_at_iso, route_short_name ,summary_en,extra\n"+
			"2025-03-01T08:00:00+10:00,96,\"Tram 96, diverted\",x\n"+
			"2025-03-01T08:05:00+10:00\n")

	run, err := ReadRun(p)
	if err != nil {
		t.Fatalf("ReadRun: %v", err)
	}
	if run.ID != "alerts_20250301_0815" {
		t.Errorf("ID = %q", run.ID)
	}
	wantHeader := []string{"created_at_iso", "route_short_name", "summary_en", "extra"}
	if !reflect.DeepEqual(run.Header, wantHeader) {
		t.Errorf("Header = %q, want %q", run.Header, wantHeader)
	}
	if len(run.Rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(run.Rows))
	}

	recs := run.Records()
	if recs[0].RouteShortName != "96" || recs[0].SummaryEN != "Tram 96, diverted" {
		t.Errorf("record 0 = %+v", recs[0])
	}
	if recs[1].SummaryEN != "" || recs[1].CreatedAt != "2025-03-01T08:05:00+10:00" {
		t.Errorf("short row = %+v", recs[1])
	}
	if !run.HasColumn("summary_en") || run.HasColumn("plain_en") {
		t.Error("HasColumn mismatch")
	}
	t.Logf("✓ Read %d rows from %s", len(run.Rows), run.ID)
}

func TestReadCSV_Empty(t *testing.T) {
	if _, _, err := ReadCSV(strings.NewReader("")); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("err = %v, want ErrEmptyFile", err)
	}
	header, rows, err := ReadCSV(strings.NewReader("summary_en\n"))
	if err != nil || len(header) != 1 || len(rows) != 0 {
		t.Errorf("header-only: %v %v %v", header, rows, err)
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "alerts_20250302_0815.csv", "summary_en\n")
	writeFile(t, dir, "alerts_20250301_0815.csv", "summary_en\n")
	writeFile(t, dir, "seq_alerts_20250301_0815.csv", "summary_en\n")

	files, err := Discover(filepath.Join(dir, "alerts_*.csv"), filepath.Join(dir, "*.csv"))
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	var names []string
	for _, f := range files {
		names = append(names, filepath.Base(f))
	}
	want := []string{"alerts_20250301_0815.csv", "alerts_20250302_0815.csv", "seq_alerts_20250301_0815.csv"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Discover() = %v, want %v", names, want)
	}

	if _, err := Discover(filepath.Join(dir, "nothing_*.csv")); !errors.Is(err, ErrNoFiles) {
		t.Errorf("err = %v, want ErrNoFiles", err)
	}
}

func TestDeriveCityTag(t *testing.T) {
	tests := []struct {
		files []string
		want  string
	}{
		{[]string{"out/seq_alerts_20250301_0815.csv"}, "SEQ"},
		{[]string{"out/syd_alerts_translated_20250301_0815.csv"}, "SYD"},
		{[]string{"out/alerts_20250301_0815.csv"}, "MEL"},
		{[]string{"out/mel_20250301.csv"}, "MEL"},
		{[]string{"runs/export.csv"}, "RUNS"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := DeriveCityTag(tt.files); got != tt.want {
				t.Errorf("DeriveCityTag(%v) = %s, want %s", tt.files, got, tt.want)
			}
		})
	}
}
