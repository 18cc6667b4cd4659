package formatter

import (
	"encoding/json"
)

// ReportBuilder serializes reports.
type ReportBuilder struct{}

// NewReportBuilder creates a new report builder
func NewReportBuilder() *ReportBuilder {
	return &ReportBuilder{}
}

// BuildJSON serializes a report to indented JSON
func (rb *ReportBuilder) BuildJSON(rep *Report) []byte {
	b, _ := json.MarshalIndent(rep, "", "  ")
	return b
}
