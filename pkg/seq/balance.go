package seq

import (
	"math"
	"math/rand"

	"github.com/gnames/protax/pkg/taxon"
)

// Balance draws an approximately class-balanced subset of labeled
// records. Every label group contributes round(fraction * len(recs))
// records, sampled uniformly without replacement. Label groups keep
// their first-appearance order; records within a group come out in
// sample order.
//
// Balance fails when any label group has fewer members than the
// requested sample size; the caller decides whether to lower the
// fraction, it is never clamped silently.
func Balance(recs []Record, fraction float64, rng *rand.Rand) ([]Record, error) {
	sampleSize := int(math.Round(fraction * float64(len(recs))))

	var order []taxon.Label
	groups := make(map[taxon.Label][]Record)
	for _, v := range recs {
		if _, ok := groups[v.Label]; !ok {
			order = append(order, v.Label)
		}
		groups[v.Label] = append(groups[v.Label], v)
	}

	res := make([]Record, 0, sampleSize*len(order))
	for _, lbl := range order {
		group := groups[lbl]
		if len(group) < sampleSize {
			return nil, InsufficientSamplesError(lbl, len(group), sampleSize)
		}
		for _, idx := range rng.Perm(len(group))[:sampleSize] {
			res = append(res, group[idx])
		}
	}
	return res, nil
}
