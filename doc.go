// Package kanonymity anonymizes tabular categorical data to satisfy
// k-anonymity and (optionally) l-diversity, by exact branch-and-bound
// search over generalization hierarchies with row suppression as a
// fallback.
//
// Under the hood, the module is organized by concern:
//
//	encode/     — flattening per-attribute domains into one global
//	              enumeration and building generalization buckets
//	anonymizer/ — the exact Bayardo-style branch-and-bound search
//	partition/  — grouped/suppression-only anonymization driver
//	diversity/  — greedy l-diversity post-processing
//	resample/   — Cartesian and uniform resampling back to concrete rows
//	fairness/   — contingency-table discrimination measurement
//	experiment/ — the k-sweep driver, named attribute registry and
//	              persisted result layout
//	table/      — a minimal in-memory columnar table
//
// See cmd/kanonymize for the CLI entrypoint.
package kanonymity
