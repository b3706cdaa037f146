// Package encode_test verifies domain flattening and the encode/decode
// round trip. Focus:
//  1. M/Sigma construction from per-attribute offsets.
//  2. H = ∅ decodes every row to the whole-domain bucket label.
//  3. A non-trivial head-set decodes to the expected finer buckets.
package encode_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/johnruth96/kanonymity/encode"
	"github.com/johnruth96/kanonymity/table"
)

func mkDomainTable(t *testing.T) *table.Table {
	t.Helper()
	tb, err := table.New([]string{"age", "sex"})
	require.NoError(t, err)
	require.NoError(t, tb.AddRow([]string{"20", "F"}))
	require.NoError(t, tb.AddRow([]string{"30", "F"}))
	require.NoError(t, tb.AddRow([]string{"30", "M"}))
	require.NoError(t, tb.AddRow([]string{"40", "M"}))

	return tb
}

func TestEncode_NoAttributes(t *testing.T) {
	tb := mkDomainTable(t)
	_, err := encode.Encode(tb, nil)
	require.ErrorIs(t, err, encode.ErrNoAttributes)
}

func TestEncode_UnknownAttribute(t *testing.T) {
	tb := mkDomainTable(t)
	_, err := encode.Encode(tb, []string{"nope"})
	require.ErrorIs(t, err, encode.ErrUnknownAttribute)
}

func TestEncode_DomainShape(t *testing.T) {
	tb := mkDomainTable(t)
	dom, err := encode.Encode(tb, []string{"sex", "age"})
	require.NoError(t, err)

	// Attrs canonicalized to sorted order regardless of input order.
	require.Equal(t, []string{"age", "sex"}, dom.Attrs)

	// age domain {20,30,40} -> ids 1,2,3; sex domain {F,M} -> ids 4,5.
	require.Equal(t, []string{"20", "30", "40", "F", "M"}, dom.Values)
	require.Equal(t, []int{0, 3}, dom.Offsets)
	require.Equal(t, []int{3, 2}, dom.Sizes)
	require.Equal(t, []int{1, 4}, dom.M)
	require.Equal(t, []int{2, 3, 5}, dom.Sigma)
	require.Equal(t, 4, dom.NumRows())
}

func TestEncode_RowEncoding(t *testing.T) {
	tb := mkDomainTable(t)
	dom, err := encode.Encode(tb, []string{"age", "sex"})
	require.NoError(t, err)

	// row 0: age=20 (id 1), sex=F (id 4).
	require.Equal(t, []int{1, 4}, dom.Row(0))
	// row 2: age=30 (id 2), sex=M (id 5).
	require.Equal(t, []int{2, 5}, dom.Row(2))
}

func TestDecode_EmptyHeadIsMostGeneral(t *testing.T) {
	tb := mkDomainTable(t)
	dom, err := encode.Encode(tb, []string{"age", "sex"})
	require.NoError(t, err)

	for r := 0; r < dom.NumRows(); r++ {
		out := dom.Decode(nil, dom.Row(r))
		require.Equal(t, "{20; 30; 40}", out[0])
		require.Equal(t, "{F; M}", out[1])
	}
}

func TestDecode_HeadSetRefinesBuckets(t *testing.T) {
	tb := mkDomainTable(t)
	dom, err := encode.Encode(tb, []string{"age", "sex"})
	require.NoError(t, err)

	// Cutting the age domain at id 2 (value 30) splits {20} | {30,40}.
	// Sigma = {2,3,5}; 2 and 3 are the age cut points, only 2 is used.
	out := dom.Decode([]int{2}, dom.Row(0)) // age=20
	require.Equal(t, "20", out[0])
	require.Equal(t, "{F; M}", out[1])

	out = dom.Decode([]int{2}, dom.Row(3)) // age=40
	require.Equal(t, "{30; 40}", out[0])
	require.Equal(t, "{F; M}", out[1])
}

func TestExpandHead_UnionsWithM(t *testing.T) {
	tb := mkDomainTable(t)
	dom, err := encode.Encode(tb, []string{"age", "sex"})
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 4}, dom.ExpandHead([]int{2}))
	require.Equal(t, []int{1, 4}, dom.ExpandHead(nil))
}

func TestSortedUnion(t *testing.T) {
	require.Equal(t, []int{1, 2, 3, 5}, encode.SortedUnion([]int{3, 5, 1}, []int{2, 3}))
}

func TestRemoveValue(t *testing.T) {
	require.Equal(t, []int{1, 3}, encode.RemoveValue([]int{1, 2, 3}, 2))
}
