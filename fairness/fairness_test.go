// Package fairness_test verifies contingency-table construction and
// the ratio-of-discrimination / rank-based fairness statistics.
package fairness_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnruth96/kanonymity/fairness"
	"github.com/johnruth96/kanonymity/table"
)

func discrTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New([]string{"outcome", "sex", "race"})
	require.NoError(t, err)
	rows := [][]string{
		{"approve", "M", "A"},
		{"approve", "M", "A"},
		{"deny", "M", "A"},
		{"approve", "F", "A"},
		{"deny", "F", "A"},
		{"deny", "F", "A"},
	}
	for _, r := range rows {
		require.NoError(t, tb.AddRow(r))
	}

	return tb
}

func TestBuildContingencyTable_CountsMatchCrossTab(t *testing.T) {
	tb := discrTable(t)
	ct, err := fairness.BuildContingencyTable(tb, []string{"outcome"}, []string{"sex"})
	require.NoError(t, err)

	require.Equal(t, []string{"approve", "deny"}, ct.RowKeys)
	require.Equal(t, []string{"F", "M"}, ct.ColKeys)
	// rows=outcome, cols=sex
	require.Equal(t, [][]int{{1, 2}, {2, 1}}, ct.Counts)
}

func TestGroupedContingencyTables_EmptyGroupColsYieldsSingleGroup(t *testing.T) {
	tb := discrTable(t)
	groups, err := fairness.GroupedContingencyTables(tb, []string{"outcome"}, []string{"sex"}, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1)
}

func TestGroupedContingencyTables_SplitsByGroupCols(t *testing.T) {
	tb, err := table.New([]string{"outcome", "sex", "race"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"approve", "M", "A"}))
	require.NoError(t, tb.AddRow([]string{"deny", "F", "B"}))

	groups, err := fairness.GroupedContingencyTables(tb, []string{"outcome"}, []string{"sex"}, []string{"race"})
	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestRatioOfDiscrimination_NonBinaryDomainReturnsOne(t *testing.T) {
	tb, err := table.New([]string{"outcome", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"approve", "M"}))
	require.NoError(t, tb.AddRow([]string{"deny", "F"}))
	require.NoError(t, tb.AddRow([]string{"neutral", "F"}))

	rods, err := fairness.RatioOfDiscrimination(tb, nil, "outcome", "sex")
	require.NoError(t, err)
	require.Equal(t, []float64{1.0}, rods)
}

func TestRatioOfDiscrimination_BinaryDomainComputesRatio(t *testing.T) {
	tb := discrTable(t)
	rods, err := fairness.RatioOfDiscrimination(tb, nil, "outcome", "sex")
	require.NoError(t, err)
	require.Len(t, rods, 1)
	// F: approve=1,deny=2 ; M: approve=2,deny=1
	// cb = count(outcome=deny,sex=F) * count(outcome=approve,sex=M) = 2*2 = 4
	// ad = count(outcome=approve,sex=F) * count(outcome=deny,sex=M) = 1*1 = 1
	require.InDelta(t, 4.0, rods[0], 1e-9)
}

func TestMeasure_ReportsSizeAndContingencyCount(t *testing.T) {
	tb := discrTable(t)
	stats, err := fairness.Measure(tb, nil, []string{"race"}, "outcome", "sex")
	require.NoError(t, err)
	require.Equal(t, tb.Len(), stats.Size)
	require.Equal(t, 1, stats.NCont)
	require.GreaterOrEqual(t, stats.RankMean, 1.0)
}
