package utils

import (
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// NewBOMReader decodes UTF-8 input, dropping a leading byte order mark if present.
// Export files written as utf-8-sig read the same as plain UTF-8.
func NewBOMReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}

// NewBOMWriter prefixes the output with a UTF-8 byte order mark. The returned
// writer must be closed to flush buffered output.
func NewBOMWriter(w io.Writer) io.WriteCloser {
	return transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
}
