// Package table implements the minimal in-memory table the rest of
// this module operates on: a schema (ordered column names) plus rows
// stored row-major as string slices (there are no per-column vectors),
// and the canonical group_by utility that
// every "split by key" operation in this module routes through.
//
// Every cell is an opaque string (the core never interprets attribute
// values beyond equality/ordering); continuous-to-categorical bucketing
// and CSV ingestion live outside this package.
package table
