package anonymizer

import (
	"strconv"
	"strings"
)

// eqClass is one equivalence class under some anonymization: the
// representative id tuple (one id per QI attribute) and its row count.
type eqClass struct {
	rep   []int
	count int
}

// eqClassCache memoizes E(A) keyed by the canonical sorted anonymization
// A, per spec.md §4.2.4: "Computing E(A) is the dominant inner cost."
type eqClassCache struct {
	rows  [][]int
	cache map[string][]eqClass
}

func newEqClassCache(rows [][]int) *eqClassCache {
	return &eqClassCache{
		rows:  rows,
		cache: make(map[string][]eqClass),
	}
}

// classesFor returns E(anonymization), computing and caching on miss.
// anonymization must be sorted ascending (the caller canonicalizes). rep
// is the representative-id lookup built by encode.Domain.BuildBucketMaps
// for this same anonymization.
func (c *eqClassCache) classesFor(anonymization []int, rep []int) []eqClass {
	key := idsKey(anonymization)
	if classes, ok := c.cache[key]; ok {
		return classes
	}

	byRep := make(map[string]*eqClass)
	order := make([]string, 0)
	for _, row := range c.rows {
		repTuple := make([]int, len(row))
		for i, id := range row {
			repTuple[i] = rep[id]
		}
		k := idsKey(repTuple)
		if ec, ok := byRep[k]; ok {
			ec.count++
		} else {
			ec := &eqClass{rep: repTuple, count: 1}
			byRep[k] = ec
			order = append(order, k)
		}
	}

	classes := make([]eqClass, len(order))
	for i, k := range order {
		classes[i] = *byRep[k]
	}
	c.cache[key] = classes

	return classes
}

// idsKey renders an integer tuple as a stable map key.
func idsKey(ids []int) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(id))
	}

	return b.String()
}
