// Package anonymizer implements the Anonymizer (spec.md §4.2): a
// Bayardo-style exhaustive branch-and-bound search over subsets of the
// candidate cut-point set σ, minimizing discernibility cost under a
// k-anonymity constraint, with a reordering-aware lower bound and
// memoized prune decisions.
//
// Grounded on original_source/privacy/bayardo.py and
// original_source/privacy/base.py. The search engine's structure
// (explicit engine struct, dense precomputed buffers, deterministic
// ascending iteration order, sentinel-error governance) follows
// katalvlaran/lvlath's tsp package.
package anonymizer
