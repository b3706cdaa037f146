package fairness

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/johnruth96/kanonymity/table"
)

// RatioOfDiscrimination computes one contingency-adjusted Ratio of
// Observational Discrimination per admissibles group (spec.md/
// original_source/fairness.py: get_ratio_of_discr). A group whose
// contingency table is not 2x2 contributes 1.0; a group whose a*d
// product is zero contributes no value. If either outcome or sensitive
// does not have exactly two distinct values table-wide, it returns a
// single 1.0 (no discrimination signal is defined).
func RatioOfDiscrimination(t *table.Table, admissibles []string, outcome, sensitive string) ([]float64, error) {
	domSensitive, err := sortedDomain(t, sensitive)
	if err != nil {
		return nil, fmt.Errorf("fairness: RatioOfDiscrimination: %w", err)
	}
	domOutcome, err := sortedDomain(t, outcome)
	if err != nil {
		return nil, fmt.Errorf("fairness: RatioOfDiscrimination: %w", err)
	}
	if len(domSensitive) != 2 || len(domOutcome) != 2 {
		return []float64{1.0}, nil
	}
	s0, s1 := domSensitive[0], domSensitive[1]
	o0, o1 := domOutcome[0], domOutcome[1]

	groups, err := GroupedContingencyTables(t, []string{outcome}, []string{sensitive}, admissibles)
	if err != nil {
		return nil, fmt.Errorf("fairness: RatioOfDiscrimination: %w", err)
	}

	rods := make([]float64, 0, len(groups))
	for _, cm := range groups {
		if len(cm.RowKeys) != 2 || len(cm.ColKeys) != 2 {
			rods = append(rods, 1.0)
			continue
		}

		io0, io1 := indexOf(cm.RowKeys, o0), indexOf(cm.RowKeys, o1)
		is0, is1 := indexOf(cm.ColKeys, s0), indexOf(cm.ColKeys, s1)
		if io0 < 0 || io1 < 0 || is0 < 0 || is1 < 0 {
			rods = append(rods, 1.0)
			continue
		}

		cb := float64(cm.Counts[io1][is0]) * float64(cm.Counts[io0][is1])
		ad := float64(cm.Counts[io0][is0]) * float64(cm.Counts[io1][is1])
		if ad != 0 {
			rods = append(rods, cb/ad)
		}
	}

	return rods, nil
}

// Stats is the result of Measure: original_source/fairness.py's
// measure_fairness return dict, field for field.
type Stats struct {
	NCont      int
	ROD        float64
	RODAbs     float64
	Size       int
	RatioFair  float64
	RankMean   float64
	RankMedian float64
}

// Measure reports the fairness statistics of t with respect to
// admissible attributes adm, inadmissible attributes inadm, an
// outcome column and a sensitive column (original_source/fairness.py:
// measure_fairness). Matrix rank is computed via gonum's SVD-backed
// rank, in place of numpy.linalg.matrix_rank.
func Measure(t *table.Table, adm, inadm []string, outcome, sensitive string) (Stats, error) {
	rods, err := RatioOfDiscrimination(t, adm, outcome, sensitive)
	if err != nil {
		return Stats{}, fmt.Errorf("fairness: Measure: %w", err)
	}

	groups, err := GroupedContingencyTables(t, []string{outcome}, inadm, adm)
	if err != nil {
		return Stats{}, fmt.Errorf("fairness: Measure: %w", err)
	}

	ranks := make([]int, len(groups))
	for i, cm := range groups {
		ranks[i] = matrixRank(cm.Counts)
	}

	rodMean := mean(rods)
	fairCount := 0
	for _, r := range ranks {
		if r == 1 {
			fairCount++
		}
	}

	return Stats{
		NCont:      len(ranks),
		ROD:        rodMean,
		RODAbs:     abs(1 - rodMean),
		Size:       t.Len(),
		RatioFair:  float64(fairCount) / float64(len(ranks)),
		RankMean:   meanInt(ranks),
		RankMedian: medianInt(ranks),
	}, nil
}

func sortedDomain(t *table.Table, col string) ([]string, error) {
	vals, err := t.Column(col)
	if err != nil {
		return nil, err
	}
	set := make(map[string]struct{})
	for _, v := range vals {
		set[v] = struct{}{}
	}
	dom := make([]string, 0, len(set))
	for v := range set {
		dom = append(dom, v)
	}
	sort.Strings(dom)

	return dom, nil
}

func matrixRank(counts [][]int) int {
	rows, cols := len(counts), 0
	if rows > 0 {
		cols = len(counts[0])
	}
	data := make([]float64, rows*cols)
	for i, row := range counts {
		for j, v := range row {
			data[i*cols+j] = float64(v)
		}
	}
	m := mat.NewDense(rows, cols, data)

	var svd mat.SVD
	if !svd.Factorize(m, mat.SVDNone) {
		return 0
	}

	return svd.Rank(1e-10)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

func meanInt(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0
	for _, x := range xs {
		sum += x
	}

	return float64(sum) / float64(len(xs))
}

func medianInt(xs []int) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := append([]int(nil), xs...)
	sort.Ints(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return float64(sorted[mid])
	}

	return float64(sorted[mid-1]+sorted[mid]) / 2
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}

	return x
}
