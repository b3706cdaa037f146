// Package diversity_test verifies the greedy merge post-processor.
// Focus:
//  1. Table-wide diversity below l fails fast.
//  2. Two classes with insufficient diversity merge into one whose
//     label is the element-wise union (spec.md §8 scenario 4).
//  3. A table already meeting l is left with unmerged classes.
package diversity_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnruth96/kanonymity/diversity"
	"github.com/johnruth96/kanonymity/table"
)

func TestProcess_InsufficientTableWideDiversity(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))

	_, err = diversity.Process(tb, 2, "sex", []string{"age"})
	require.ErrorIs(t, err, diversity.ErrInsufficientDiversity)
}

func TestProcess_MergesMinDiversityClass(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{30; 40}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{30; 40}", "M"}))

	out, err := diversity.Process(tb, 2, "sex", []string{"age"})
	require.NoError(t, err)

	ages, err := out.Column("age")
	require.NoError(t, err)
	for _, a := range ages {
		require.Equal(t, "{10; 20; 30; 40}", a)
	}
}

func TestProcess_AlreadyDiverseLeavesClassesUnmerged(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "M"}))
	require.NoError(t, tb.AddRow([]string{"{30; 40}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{30; 40}", "M"}))

	out, err := diversity.Process(tb, 2, "sex", []string{"age"})
	require.NoError(t, err)

	ages, err := out.Column("age")
	require.NoError(t, err)
	require.Equal(t, "{10; 20}", ages[0])
	require.Equal(t, "{30; 40}", ages[2])
}

func TestProcess_OriginalTableUntouched(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{10; 20}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{30; 40}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{30; 40}", "M"}))

	_, err = diversity.Process(tb, 2, "sex", []string{"age"})
	require.NoError(t, err)

	ages, err := tb.Column("age")
	require.NoError(t, err)
	require.Equal(t, "{10; 20}", ages[0])
}
