// Package iolabel assigns taxonomic labels to sequence records using
// a taxonomy cache snapshot.
package iolabel

import (
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
)

// Labeler maps organism ids to labels through one immutable cache
// snapshot. Results are memoized per instance; swapping the snapshot
// means constructing a new Labeler.
type Labeler interface {
	// Label returns the label of one organism. It fails when the
	// organism has no cache entry: the cache build is a precondition
	// of labeling, classification never fetches.
	Label(id taxon.OrganismID) (taxon.Label, error)

	// LabelAll returns a copy of recs with labels assigned.
	LabelAll(recs []seq.Record) ([]seq.Record, error)
}

// labeler implements the Labeler interface.
type labeler struct {
	cache taxon.Cache
	memo  map[taxon.OrganismID]taxon.Label
}

// New creates a Labeler bound to the given cache snapshot.
func New(cache taxon.Cache) Labeler {
	return &labeler{
		cache: cache,
		memo:  make(map[taxon.OrganismID]taxon.Label),
	}
}

func (l *labeler) Label(id taxon.OrganismID) (taxon.Label, error) {
	if lbl, ok := l.memo[id]; ok {
		return lbl, nil
	}

	rec, ok := l.cache[id]
	if !ok {
		return "", MissingLineageError(id)
	}

	lbl := taxon.Classify(rec)
	l.memo[id] = lbl
	return lbl, nil
}

func (l *labeler) LabelAll(recs []seq.Record) ([]seq.Record, error) {
	res := make([]seq.Record, len(recs))
	for i, rec := range recs {
		lbl, err := l.Label(rec.OrganismID)
		if err != nil {
			slog.Error("Cannot label sequence record",
				"unique_id", rec.UniqueID,
				"organism_id", rec.OrganismID,
				"error", err,
			)
			return nil, err
		}
		rec.Label = lbl
		res[i] = rec
	}

	slog.Info("Labeled sequence records",
		"records", len(res),
		"organisms", len(l.memo),
	)
	gn.Info("Labeled <em>%s</em> sequence records",
		humanize.Comma(int64(len(res))))

	return res, nil
}
