// Package anonymizer_test verifies the branch-and-bound search against
// the end-to-end scenarios and invariants the engine must satisfy.
// Focus:
//  1. Tiny deterministic dataset: exact best_head/best_cost for two k
//     values (no suppression).
//  2. Suppression fallback when some class cannot reach k.
//  3. k out of range is rejected.
//  4. Determinism: repeated runs agree.
package anonymizer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnruth96/kanonymity/anonymizer"
	"github.com/johnruth96/kanonymity/table"
)

// ageTable builds the scenario-1 dataset: QI=[age], domain {20,30,40}
// occurring {3,3,4} times (spec.md §8 scenario 1).
func ageTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New([]string{"age"})
	require.NoError(t, err)
	counts := map[string]int{"20": 3, "30": 3, "40": 4}
	for _, age := range []string{"20", "30", "40"} {
		for i := 0; i < counts[age]; i++ {
			require.NoError(t, tb.AddRow([]string{age}))
		}
	}

	return tb
}

// Exhaustively over the 4 candidate head-sets (σ = {id(30), id(40)} for
// this single-attribute domain): H=∅ merges everything into one class
// of 10 (cost 2+100=102); H={id(30)} splits off {20} from {30,40}
// (cost 1+9+49=59); H={id(40)} splits off {40} from {20,30} (cost
// 1+36+16=53); H=σ keeps all three values distinct (cost 0+9+9+16=34).
// At k=3 every option is feasible and H=σ is cheapest (34); at k=4 the
// {20}|{30,40} and full-split options both produce a class below 4, so
// the cheapest feasible option is H={id(40)} (cost 53).

func TestRun_TinyDataset_K3_FullSplitIsCheapest(t *testing.T) {
	tb := ageTable(t)
	a, err := anonymizer.New(tb, []string{"age"}, anonymizer.Options{})
	require.NoError(t, err)

	res, err := a.Run(3)
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, res.BestHead)
	require.Equal(t, 3*3+3*3+4*4, res.BestCost)
}

func TestRun_TinyDataset_K4_SplitsOffOldestGroup(t *testing.T) {
	tb := ageTable(t)
	a, err := anonymizer.New(tb, []string{"age"}, anonymizer.Options{})
	require.NoError(t, err)

	res, err := a.Run(4)
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.BestHead)
	require.Equal(t, 1+6*6+4*4, res.BestCost)
}

func TestRun_TinyDataset_OutputLabels(t *testing.T) {
	tb := ageTable(t)
	a, err := anonymizer.New(tb, []string{"age"}, anonymizer.Options{})
	require.NoError(t, err)
	_, err = a.Run(4)
	require.NoError(t, err)

	out, err := a.AnonymizedTable()
	require.NoError(t, err)
	ages, err := out.Column("age")
	require.NoError(t, err)
	for _, v := range ages {
		require.Contains(t, []string{"{20; 30}", "40"}, v)
	}
}

func TestRun_SuppressionFallback(t *testing.T) {
	tb, err := table.New([]string{"sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"F"}))
	for i := 0; i < 9; i++ {
		require.NoError(t, tb.AddRow([]string{"M"}))
	}

	a, err := anonymizer.New(tb, []string{"sex"}, anonymizer.Options{UseSuppression: true})
	require.NoError(t, err)
	res, err := a.Run(2)
	require.NoError(t, err)
	// Splitting F (id 1) from M (id 9 rows, id 2) and suppressing the F
	// class (1*N=10) beats merging both into one class of 10 (1+100=101):
	// g=0 + 1*10 + 9*9 = 91.
	require.Equal(t, []int{2}, res.BestHead)
	require.Equal(t, 9*9+1*10, res.BestCost)

	out, err := a.AnonymizedTable()
	require.NoError(t, err)
	require.Equal(t, 9, out.Len())
	sexes, err := out.Column("sex")
	require.NoError(t, err)
	for _, s := range sexes {
		require.Equal(t, "M", s)
	}
}

func TestRun_InvalidK(t *testing.T) {
	tb := ageTable(t)
	a, err := anonymizer.New(tb, []string{"age"}, anonymizer.Options{})
	require.NoError(t, err)

	_, err = a.Run(0)
	require.ErrorIs(t, err, anonymizer.ErrInvalidK)

	_, err = a.Run(a.KMax() + 1)
	require.ErrorIs(t, err, anonymizer.ErrInvalidK)
}

func TestRun_KMaxCollapsesToSingleClass(t *testing.T) {
	tb := ageTable(t)
	a, err := anonymizer.New(tb, []string{"age"}, anonymizer.Options{})
	require.NoError(t, err)

	res, err := a.Run(a.KMax())
	require.NoError(t, err)
	require.Empty(t, res.BestHead)
}

func TestRun_DeterministicAcrossRepeatedRuns(t *testing.T) {
	tb := ageTable(t)
	a, err := anonymizer.New(tb, []string{"age"}, anonymizer.Options{})
	require.NoError(t, err)

	first, err := a.Run(4)
	require.NoError(t, err)
	second, err := a.Run(4)
	require.NoError(t, err)
	require.Equal(t, first.BestHead, second.BestHead)
	require.Equal(t, first.BestCost, second.BestCost)
}
