// Package seq provides the sequence record data model, label
// statistics and class-balanced sampling.
//
// This is a pure package: no file operations, no network calls.
package seq

import (
	"github.com/gnames/protax/pkg/taxon"
)

// Record is one parsed UniProt protein entry. Label stays empty until
// the labeling pass assigns one.
type Record struct {
	DB           string
	UniqueID     string
	EntryName    string
	ProteinName  string
	OrganismName string
	OrganismID   taxon.OrganismID
	Sequence     string
	Label        taxon.Label
}

// LabelStat describes one label's share of a labeled population.
type LabelStat struct {
	Count    int
	Fraction float64
}

// Stats returns per-label counts and fractions of the population.
func Stats(recs []Record) map[taxon.Label]LabelStat {
	res := make(map[taxon.Label]LabelStat)
	if len(recs) == 0 {
		return res
	}
	for _, v := range recs {
		st := res[v.Label]
		st.Count++
		res[v.Label] = st
	}
	n := float64(len(recs))
	for lbl, st := range res {
		st.Fraction = float64(st.Count) / n
		res[lbl] = st
	}
	return res
}
