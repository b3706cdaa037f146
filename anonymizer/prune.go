package anonymizer

import (
	"strconv"

	"github.com/johnruth96/kanonymity/encode"
)

// prune narrows tail by removing candidates that, even added singly,
// cannot beat c, per spec.md §4.2.3. Decisions are memoized on
// (head, tail, c) for the lifetime of one Run.
func (a *Anonymizer) prune(head, tail []int, c int) []int {
	key := pruneKey(head, tail, c)
	if cached, ok := a.pruneCache[key]; ok {
		return cached
	}
	a.calls++

	all := encode.SortedUnion(head, tail)
	if a.lowerBoundOf(head, all) >= c {
		a.pruneCache[key] = nil

		return nil
	}

	tPrime := append([]int(nil), tail...)
	for _, v := range tail {
		headV := encode.SortedUnion(head, []int{v})
		tailV := encode.RemoveValue(tPrime, v)
		if sub := a.prune(headV, tailV, c); len(sub) == 0 && a.costOfHead(headV) > c {
			tPrime = tailV
		}
	}

	var result []int
	if !intsEqual(tPrime, tail) {
		result = a.prune(head, tPrime, c)
	} else {
		result = tPrime
	}
	a.pruneCache[key] = result

	return result
}

func pruneKey(head, tail []int, c int) string {
	return idsKey(head) + "|" + idsKey(tail) + "|" + strconv.Itoa(c)
}

func intsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}
