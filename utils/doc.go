// Package utils provides internal helpers shared by the run summariser.
// This package is not intended to be imported by external code.
//
// It contains:
//   - Run timestamp derivation and rounding
//   - BOM-aware text readers and writers
package utils
