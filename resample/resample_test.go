// Package resample_test verifies Cartesian and Uniform resampling.
// Focus:
//  1. Cartesian expansion of a generalized row into the product of its
//     member values (spec.md §8 scenario 5).
//  2. Projection of a Cartesian expansion onto QI recovers exactly the
//     union of original values.
//  3. Uniform resampling preserves row count and never invents a value
//     outside the generalized cell's member set.
//  4. Uniform rejects a nil *rand.Rand rather than falling back to a
//     package-global source.
package resample_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnruth96/kanonymity/resample"
	"github.com/johnruth96/kanonymity/table"
)

func genTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New([]string{"age", "workclass", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{20; 30}", "{Gov; Priv}", "F"}))

	return tb
}

func TestCartesian_ExpandsGeneralizedCellToProduct(t *testing.T) {
	out, err := resample.Cartesian(genTable(t), []string{"age", "workclass", "sex"})
	require.NoError(t, err)
	require.Equal(t, 4, out.Len())

	ages, err := out.Column("age")
	require.NoError(t, err)
	workclasses, err := out.Column("workclass")
	require.NoError(t, err)
	sexes, err := out.Column("sex")
	require.NoError(t, err)

	seen := make(map[[2]string]bool)
	for i := 0; i < out.Len(); i++ {
		require.Equal(t, "F", sexes[i])
		seen[[2]string{ages[i], workclasses[i]}] = true
	}
	require.Len(t, seen, 4)
	for _, age := range []string{"20", "30"} {
		for _, wc := range []string{"Gov", "Priv"} {
			require.True(t, seen[[2]string{age, wc}], "missing combination %s/%s", age, wc)
		}
	}
}

func TestCartesian_RowIDTracksSourceRow(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{20; 30}", "F"}))
	require.NoError(t, tb.AddRow([]string{"40", "M"}))

	out, err := resample.Cartesian(tb, []string{"age", "sex"})
	require.NoError(t, err)
	require.Equal(t, 3, out.Len())

	rowIDs, err := out.Column(resample.RowIDColumn)
	require.NoError(t, err)
	require.Equal(t, []string{"0", "0", "1"}, rowIDs)
}

func TestCartesian_ProjectionToQIRecoversUnionOfValues(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{20; 30; 40}", "F"}))

	out, err := resample.Cartesian(tb, []string{"age", "sex"})
	require.NoError(t, err)

	ages, err := out.Column("age")
	require.NoError(t, err)

	seen := make(map[string]bool)
	for _, a := range ages {
		seen[a] = true
	}
	require.Equal(t, map[string]bool{"20": true, "30": true, "40": true}, seen)
}

func TestUniform_PreservesRowCount(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{20; 30; 40}", "F"}))
	require.NoError(t, tb.AddRow([]string{"{20; 30}", "M"}))
	require.NoError(t, tb.AddRow([]string{"40", "F"}))

	out, err := resample.Uniform(tb, []string{"age", "sex"}, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	require.Equal(t, tb.Len(), out.Len())
}

func TestUniform_ChoosesValueFromMemberSet(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{20; 30; 40}", "F"}))

	allowed := map[string]bool{"20": true, "30": true, "40": true}
	for seed := int64(0); seed < 20; seed++ {
		out, err := resample.Uniform(tb, []string{"age"}, rand.New(rand.NewSource(seed)))
		require.NoError(t, err)

		ages, err := out.Column("age")
		require.NoError(t, err)
		require.True(t, allowed[ages[0]], "unexpected value %q", ages[0])
	}
}

func TestUniform_NonQIColumnsReplicateVerbatim(t *testing.T) {
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"{20; 30}", "F"}))

	out, err := resample.Uniform(tb, []string{"age"}, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	sexes, err := out.Column("sex")
	require.NoError(t, err)
	require.Equal(t, []string{"F"}, sexes)
}

func TestUniform_NilRandIsRejected(t *testing.T) {
	_, err := resample.Uniform(genTable(t), []string{"age"}, nil)
	require.ErrorIs(t, err, resample.ErrNilRand)
}
