package anonymizer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnruth96/kanonymity/table"
)

func mkAgeAnonymizer(t *testing.T) *Anonymizer {
	t.Helper()
	tb, err := table.New([]string{"age"})
	require.NoError(t, err)
	for _, age := range []string{"20", "20", "20", "30", "30", "30", "40", "40", "40", "40"} {
		require.NoError(t, tb.AddRow([]string{age}))
	}
	a, err := New(tb, []string{"age"}, Options{})
	require.NoError(t, err)

	return a
}

func TestPrune_DropsCandidateThatCannotBeatBound(t *testing.T) {
	a := mkAgeAnonymizer(t)
	a.k = 4
	a.bestCost = infCost
	a.pruneCache = make(map[string][]int)

	// At head=∅, tail=σ={2,3}, bound cost(∅)=102: {2} alone gives
	// classes {3,7}, infeasible for k=4, and so does every extension of
	// it, so 2 is dropped; {3} alone gives {6,4} (cost 53), so 3 stays.
	got := a.prune(nil, []int{2, 3}, a.costOfHead(nil))
	require.Equal(t, []int{3}, got)
}

func TestPrune_MemoizesByHeadTailCost(t *testing.T) {
	a := mkAgeAnonymizer(t)
	a.k = 3
	a.bestCost = infCost
	a.pruneCache = make(map[string][]int)

	first := a.prune(nil, []int{2, 3}, 1000)
	callsAfterFirst := a.calls
	second := a.prune(nil, []int{2, 3}, 1000)
	require.Equal(t, callsAfterFirst, a.calls, "second call must hit the memo cache, not recompute")
	require.Equal(t, first, second)
}

func TestPrune_EmptyOnHopelessBound(t *testing.T) {
	a := mkAgeAnonymizer(t)
	a.k = 4
	a.bestCost = infCost
	a.pruneCache = make(map[string][]int)

	// A bound of 1 cannot be beaten by anything; prune must return ∅.
	got := a.prune(nil, []int{2, 3}, 1)
	require.Empty(t, got)
}
