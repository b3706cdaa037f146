// Package fairness implements the contingency-table fairness
// measurement pipeline (spec.md §1 lists this as an external
// collaborator; SPEC_FULL.md §4.6 specifies it so the repository is
// runnable end-to-end).
//
// Grounded on original_source/fairness.py. ContingencyTable replaces
// pandas.crosstab, RatioOfDiscrimination replaces get_ratio_of_discr,
// and Measure replaces measure_fairness, using
// gonum.org/v1/gonum/mat's SVD-backed rank computation in place of
// numpy.linalg.matrix_rank.
//
// This package only ever reads an already-anonymized *table.Table; it
// has no write access to core anonymization state.
package fairness
