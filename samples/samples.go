// Package samples builds small anonymised extracts of alert export files that can
// be shared alongside the summary tables.
package samples

import (
	"encoding/csv"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/alert"
	"github.com/theoremus-urban-solutions/alert-runs/export"
	"github.com/theoremus-urban-solutions/alert-runs/utils"
)

// Defaults applied by Options.withDefaults.
const (
	DefaultRows   = 80
	DefaultCount  = 2
	DefaultOutDir = "data/sample_alerts"
	DefaultSeed   = 2025
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRe = regexp.MustCompile(`\b(\+?\d[\d\s\-()]{7,})\b`)
)

// Options controls sample generation.
type Options struct {
	City   string
	Rows   int
	Count  int
	OutDir string
	Seed   int64
}

func (o Options) withDefaults() Options {
	if o.Rows <= 0 {
		o.Rows = DefaultRows
	}
	if o.Count <= 0 {
		o.Count = DefaultCount
	}
	if o.OutDir == "" {
		o.OutDir = DefaultOutDir
	}
	return o
}

// Result describes one written sample file.
type Result struct {
	Source string
	Path   string
	Rows   int
}

// Scrub replaces e-mail addresses and phone-number-like digit runs.
func Scrub(s string) string {
	s = emailRe.ReplaceAllString(s, "[redacted-email]")
	return phoneRe.ReplaceAllString(s, "[redacted-phone]")
}

// Make writes one sample for each of the first opts.Count files, in the order
// given. Sample i (1-based) uses seed opts.Seed+i.
func Make(files []string, opts Options) ([]Result, error) {
	opts = opts.withDefaults()
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}
	if len(files) > opts.Count {
		files = files[:opts.Count]
	}

	results := make([]Result, 0, len(files))
	for i, f := range files {
		n := i + 1
		run, err := export.ReadRun(f)
		if err != nil {
			return results, err
		}
		header, records := Trim(run, opts.Rows, opts.Seed+int64(n))
		out := filepath.Join(opts.OutDir, fmt.Sprintf("%s_sample_%d.csv", strings.ToLower(opts.City), n))
		if err := writeSample(out, header, records); err != nil {
			return results, err
		}
		log.Printf("Wrote %s (%d rows) from %s", out, len(records), filepath.Base(f))
		results = append(results, Result{Source: f, Path: out, Rows: len(records)})
	}
	return results, nil
}

// Trim keeps the recognised alert columns present in the run (all columns when
// none are), scrubs the text columns and samples at most rows rows. Sampled rows
// keep their original order.
func Trim(run *export.Run, rows int, seed int64) ([]string, [][]string) {
	header := keptColumns(run)
	text := make(map[string]bool, len(alert.TextColumns))
	for _, c := range alert.TextColumns {
		text[c] = true
	}

	picked := pick(len(run.Rows), rows, seed)
	records := make([][]string, 0, len(picked))
	for _, i := range picked {
		row := run.Rows[i]
		rec := make([]string, len(header))
		for j, col := range header {
			v := row[col]
			if text[col] {
				v = Scrub(v)
			}
			rec[j] = v
		}
		records = append(records, rec)
	}
	return header, records
}

func keptColumns(run *export.Run) []string {
	var cols []string
	for _, c := range alert.Columns {
		if run.HasColumn(c) {
			cols = append(cols, c)
		}
	}
	if len(cols) == 0 {
		return append([]string(nil), run.Header...)
	}
	return cols
}

// pick returns sorted row indices: all of them when total <= n, otherwise n
// distinct indices drawn from a PCG source seeded with seed.
func pick(total, n int, seed int64) []int {
	if total <= n {
		idx := make([]int, total)
		for i := range idx {
			idx[i] = i
		}
		return idx
	}
	r := rand.New(rand.NewPCG(uint64(seed), 0))
	idx := r.Perm(total)[:n]
	sort.Ints(idx)
	return idx
}

func writeSample(path string, header []string, records [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := utils.NewBOMWriter(f)
	cw := csv.NewWriter(bw)
	if err := cw.Write(header); err != nil {
		f.Close()
		return err
	}
	if err := cw.WriteAll(records); err != nil {
		f.Close()
		return err
	}
	if err := bw.Close(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
