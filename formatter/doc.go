// Package formatter provides table wrapping and serialization for run summaries.
//
// This package is organized into:
// - csv.go: summary and averages CSV (UTF-8 with BOM), plus reading tables back
// - wrapper.go: Report envelope (generation time, city, batch id)
// - json.go: JSON serialization
// - xml.go: XML serialization with proper escaping
// - text.go: aligned console table
package formatter
