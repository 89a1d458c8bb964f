package seq_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// population builds a labeled population with the given group sizes.
func population(sizes map[taxon.Label]int) []seq.Record {
	var res []seq.Record
	for _, lbl := range taxon.Labels() {
		for i := range sizes[lbl] {
			res = append(res, seq.Record{
				UniqueID:   fmt.Sprintf("%s-%d", lbl, i),
				OrganismID: taxon.OrganismID(fmt.Sprintf("%d", i)),
				Label:      lbl,
			})
		}
	}
	return res
}

func TestBalanceProportionality(t *testing.T) {
	// 4 labels x 250 records, fraction 0.01 over 1000 records
	// gives 10 per label.
	sizes := map[taxon.Label]int{
		taxon.Viruses: 250, taxon.Bacteria: 250,
		taxon.Chordata: 250, taxon.Eukaryota: 250,
	}
	recs := population(sizes)
	rng := rand.New(rand.NewSource(1))

	res, err := seq.Balance(recs, 0.01, rng)
	require.NoError(t, err)
	require.Len(t, res, 40)

	stats := seq.Stats(res)
	require.Len(t, stats, 4)
	for lbl, st := range stats {
		assert.Equal(t, 10, st.Count, "label %s", lbl)
	}
}

func TestBalanceGroupedByLabel(t *testing.T) {
	recs := population(map[taxon.Label]int{
		taxon.Viruses: 100, taxon.Fungi: 100,
	})
	rng := rand.New(rand.NewSource(1))

	res, err := seq.Balance(recs, 0.05, rng)
	require.NoError(t, err)
	require.Len(t, res, 20)

	// output keeps records of one label contiguous
	assert.Equal(t, taxon.Viruses, res[0].Label)
	assert.Equal(t, taxon.Viruses, res[9].Label)
	assert.Equal(t, taxon.Fungi, res[10].Label)
	assert.Equal(t, taxon.Fungi, res[19].Label)
}

func TestBalanceWithoutReplacement(t *testing.T) {
	recs := population(map[taxon.Label]int{taxon.Bacteria: 50})
	rng := rand.New(rand.NewSource(7))

	res, err := seq.Balance(recs, 0.8, rng)
	require.NoError(t, err)
	require.Len(t, res, 40)

	seen := make(map[string]bool)
	for _, v := range res {
		assert.False(t, seen[v.UniqueID], "duplicate %s", v.UniqueID)
		seen[v.UniqueID] = true
	}
}

func TestBalanceInsufficientSamples(t *testing.T) {
	recs := population(map[taxon.Label]int{
		taxon.Viruses: 90, taxon.Archaea: 10,
	})
	rng := rand.New(rand.NewSource(1))

	// sample size is round(0.2 * 100) = 20, Archaea has 10
	res, err := seq.Balance(recs, 0.2, rng)
	assert.Error(t, err)
	assert.Nil(t, res)
	assert.Contains(t, err.Error(), "Archaea")
}

func TestBalanceDeterministicWithSeed(t *testing.T) {
	recs := population(map[taxon.Label]int{
		taxon.Viruses: 100, taxon.Metazoa: 100,
	})

	res1, err := seq.Balance(recs, 0.05, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	res2, err := seq.Balance(recs, 0.05, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, res1, res2)
}

func TestStats(t *testing.T) {
	recs := population(map[taxon.Label]int{
		taxon.Viruses: 75, taxon.Bacteria: 25,
	})
	stats := seq.Stats(recs)
	require.Len(t, stats, 2)
	assert.Equal(t, 75, stats[taxon.Viruses].Count)
	assert.InDelta(t, 0.75, stats[taxon.Viruses].Fraction, 1e-9)
	assert.Equal(t, 25, stats[taxon.Bacteria].Count)
	assert.InDelta(t, 0.25, stats[taxon.Bacteria].Fraction, 1e-9)

	assert.Empty(t, seq.Stats(nil))
}
