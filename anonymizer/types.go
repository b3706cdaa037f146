package anonymizer

import "errors"

//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––
// Sentinel errors
//–––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––––

var (
	// ErrInvalidK indicates a requested k outside [1, KMax()].
	ErrInvalidK = errors.New("anonymizer: k out of range")

	// ErrEmptyDomain indicates the encoded table has no attributes, or
	// zero rows, and cannot be searched.
	ErrEmptyDomain = errors.New("anonymizer: empty domain")
)

// infCost represents +∞ in the integer cost arithmetic of spec.md §9:
// "represent +∞ as a sentinel (max integer)". Arithmetic that would
// overflow int saturates at infCost instead.
const infCost = int(^uint(0) >> 1)

// Options configures a new Anonymizer. The zero value disables
// suppression.
type Options struct {
	// UseSuppression enables the suppression fallback: equivalence
	// classes smaller than k are charged e*N instead of making the
	// search infeasible.
	UseSuppression bool
}

// Result is the outcome of a completed Run.
type Result struct {
	// BestHead is the head-set H that minimized cost, sorted ascending.
	BestHead []int

	// BestCost is cost(BestHead).
	BestCost int

	// DurationNanos is the wall-clock time taken by the search, in
	// nanoseconds (spec.md §4.2.5: "Records duration (wall-clock)").
	DurationNanos int64

	// CallCount is the number of distinct (H, T, c) prune evaluations
	// performed, exposed for diagnostics and test assertions.
	CallCount int
}
