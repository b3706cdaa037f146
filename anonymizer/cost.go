package anonymizer

// computeCost evaluates cost(H) (spec.md §4.2.1) given the equivalence
// classes induced by sort(H ∪ M), the generalization penalty
// g = |σ| - |H|, the target k, the dataset size N, and whether
// suppression is enabled.
//
// The e >= k branch uses e*e unconditionally, matching
// original_source/privacy/base.py:compute_cost exactly (no e*(e-k)+k*e
// variant) — see DESIGN.md.
func computeCost(classes []eqClass, g, k, n int, useSuppression bool) int {
	total := g
	for _, c := range classes {
		e := c.count
		switch {
		case e >= k:
			total = addSat(total, e*e)
		case useSuppression:
			total = addSat(total, e*n)
		default:
			return infCost
		}
	}

	return total
}

// lowerBound evaluates lb(H, all) (spec.md §4.2.1): a valid lower bound
// on the cost of every H' with H ⊆ H' ⊆ all, used to prune the tail set
// T = all \ H. classesH is E(sort(H ∪ M)); classesAll is E(sort(all ∪
// M)); sigmaLen is |σ|; allLen is |all|.
//
// Per spec.md: "If any class of E(H) itself has size < k and
// suppression is disabled, lb = +∞" — gated on UseSuppression, which
// diverges from original_source/privacy/base.py:compute_lower_bound
// (unconditional there); spec.md is explicit, so its text governs. See
// DESIGN.md.
func lowerBound(classesH, classesAll []eqClass, sigmaLen, allLen, k int, useSuppression bool) int {
	if !useSuppression {
		for _, c := range classesH {
			if c.count < k {
				return infCost
			}
		}
	}

	total := sigmaLen - allLen
	for _, c := range classesAll {
		e := c.count
		m := e
		if k > m {
			m = k
		}
		total = addSat(total, e*m)
	}

	return total
}

// addSat adds a and b, saturating at infCost instead of overflowing or
// wrapping, per spec.md §9's "represent +∞ as a sentinel (max integer)".
func addSat(a, b int) int {
	if a >= infCost || b >= infCost {
		return infCost
	}
	sum := a + b
	if sum < a { // overflow
		return infCost
	}
	if sum >= infCost {
		return infCost
	}

	return sum
}
