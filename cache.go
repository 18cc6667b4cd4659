package alertruns

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/theoremus-urban-solutions/alert-runs/formatter"
	"github.com/theoremus-urban-solutions/alert-runs/summary"
)

// Output formats accepted by ReportCache.Get.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXML  = "xml"
	FormatText = "text"
)

// ErrUnknownFormat is returned for an output format ReportCache cannot build.
var ErrUnknownFormat = errors.New("unknown output format")

// ReportCache renders one batch table in several formats, building each at most once.
type ReportCache struct {
	table         summary.Table
	city          string
	batchID       string
	generatedAt   int64
	responseCache map[string][]byte
}

func NewReportCache(table summary.Table, city, batchID string, generatedAt int64) *ReportCache {
	return &ReportCache{
		table:         table,
		city:          city,
		batchID:       batchID,
		generatedAt:   generatedAt,
		responseCache: map[string][]byte{},
	}
}

func (rc *ReportCache) memoKey(args ...string) string {
	var b bytes.Buffer
	for i, a := range args {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(a)
	}
	return b.String()
}

// Get returns the table serialized as format.
func (rc *ReportCache) Get(format string) ([]byte, error) {
	key := rc.memoKey(rc.city, format)
	if buf, ok := rc.responseCache[key]; ok {
		return buf, nil
	}
	buf, err := rc.build(format)
	if err != nil {
		return nil, err
	}
	rc.responseCache[key] = buf
	return buf, nil
}

// WriteFile writes the table serialized as format to path, creating parent
// directories as needed. The rendered bytes stay cached for later Get calls.
func (rc *ReportCache) WriteFile(format, path string) error {
	buf, err := rc.Get(format)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

func (rc *ReportCache) build(format string) ([]byte, error) {
	rb := formatter.NewReportBuilder()
	switch format {
	case FormatJSON:
		return rb.BuildJSON(rc.report()), nil
	case FormatXML:
		return rb.BuildXML(rc.report()), nil
	case FormatCSV:
		var buf bytes.Buffer
		if err := formatter.WriteCSV(&buf, rc.table.Rows()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case FormatText:
		var buf bytes.Buffer
		if err := formatter.WriteText(&buf, rc.table.Rows()); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func (rc *ReportCache) report() *formatter.Report {
	return formatter.WrapTable(rc.table, rc.city, rc.batchID, rc.generatedAt)
}
