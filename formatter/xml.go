package formatter

import (
	"strconv"
	"strings"

	"github.com/theoremus-urban-solutions/alert-runs/summary"
)

// BuildXML serializes a report to XML
func (rb *ReportBuilder) BuildXML(rep *Report) []byte {
	var b strings.Builder
	b.WriteString("<RunSummaryReport>")
	writeElement(&b, "GeneratedAt", rep.GeneratedAt)
	writeElement(&b, "City", rep.City)
	writeElement(&b, "BatchID", rep.BatchID)
	b.WriteString("<Runs>")
	for _, r := range rep.Runs {
		writeRunXML(&b, "Run", r)
	}
	b.WriteString("</Runs>")
	writeRunXML(&b, "Total", rep.Total)
	b.WriteString("</RunSummaryReport>")
	return []byte(b.String())
}

func writeRunXML(b *strings.Builder, tag string, r summary.RunSummary) {
	b.WriteString("<" + tag + ">")
	writeElement(b, "RunID", r.RunID)
	writeElement(b, "DateTimeLocal", r.DateTimeLocal)
	b.WriteString("<AlertsProcessed>" + strconv.Itoa(r.Alerts) + "</AlertsProcessed>")
	b.WriteString("<TrainAlerts>" + strconv.Itoa(r.Train) + "</TrainAlerts>")
	b.WriteString("<TramAlerts>" + strconv.Itoa(r.Tram) + "</TramAlerts>")
	b.WriteString("<BusAlerts>" + strconv.Itoa(r.Bus) + "</BusAlerts>")
	b.WriteString("<RouteNamesResolvedPct>" + FormatPercent(r.ResolvedPct) + "</RouteNamesResolvedPct>")
	b.WriteString("</" + tag + ">")
}

// writeElement skips empty values.
func writeElement(b *strings.Builder, tag, value string) {
	if value == "" {
		return
	}
	b.WriteString("<" + tag + ">")
	b.WriteString(xmlEscape(value))
	b.WriteString("</" + tag + ">")
}

var xmlReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"\"", "&quot;",
	"'", "&apos;",
)

func xmlEscape(s string) string {
	return xmlReplacer.Replace(s)
}
