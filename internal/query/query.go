// Package query derives views from store snapshots. Every function here is
// pure and total: it takes value inputs, never mutates them, and always
// returns a result. Records that cannot be interpreted are skipped, not
// surfaced as errors.
package query
