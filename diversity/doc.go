// Package diversity implements the Diversity Post-Processor (spec.md
// §4.4): greedily merging k-anonymous equivalence classes until every
// class reaches sensitive-attribute diversity >= l, minimizing a
// weighted (info-loss, diversity-deficit) cost.
//
// Grounded on original_source/privacy/ldiversity.py.
package diversity
