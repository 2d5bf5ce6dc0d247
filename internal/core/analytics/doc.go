// Package analytics turns materialized entries and goals into dashboard figures.
//
// Every function here is pure: no I/O, no errors, no mutation of its input. Nil or empty
// input yields zero values and empty (non-nil) slices so callers can always render the result.
package analytics
