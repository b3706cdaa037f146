// Package partition implements the Partitioned Driver (spec.md §4.3):
// splitting a table by a grouping attribute set G and running one
// Anonymizer per partition with a shared QI, or — when only suppression
// is requested — skipping the search entirely and dropping undersized
// groups.
//
// Grounded on original_source/privacy/bayardoext.py.
package partition
