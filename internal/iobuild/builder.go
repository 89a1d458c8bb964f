// Package iobuild populates the taxonomy cache from the organisms
// found in a sequence table. This is an impure package that performs
// network fetches and snapshot writes.
package iobuild

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/protax/internal/iocache"
	"github.com/gnames/protax/internal/iofetch"
	"github.com/gnames/protax/pkg/config"
	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
)

// Builder populates a taxonomy cache with the lineages of every
// distinct organism referenced by a collection of sequence records.
// Builds are idempotent: organisms already in the cache are never
// fetched again, so an interrupted build resumes from its last
// checkpoint when re-run over the same input.
type Builder interface {
	// Build runs the population pass and returns the resulting cache.
	// A remote lookup failure aborts the run; the last checkpoint
	// stays valid on disk.
	Build(recs []seq.Record) (taxon.Cache, error)
}

// builder implements the Builder interface.
type builder struct {
	cfg     *config.Config
	fetcher iofetch.Fetcher
	store   iocache.Store
}

// New creates a Builder.
func New(cfg *config.Config, f iofetch.Fetcher, st iocache.Store) Builder {
	return &builder{cfg: cfg, fetcher: f, store: st}
}

func (b *builder) Build(recs []seq.Record) (taxon.Cache, error) {
	start := time.Now()

	cache, err := b.initCache()
	if err != nil {
		return nil, err
	}

	slog.Info("Populating taxonomy cache",
		"records", len(recs),
		"cached", len(cache),
		"checkpoint_interval", b.cfg.Build.CheckpointInterval,
	)
	gn.Info("Populating taxonomy cache from <em>%s</em> sequence entries",
		humanize.Comma(int64(len(recs))))

	bar := newProgressBar(len(recs), "organisms")
	var added, sinceCheckpoint int

	for _, rec := range recs {
		bar.Increment()

		if _, ok := cache[rec.OrganismID]; ok {
			continue
		}

		taxRec, err := b.fetcher.Fetch(rec.OrganismID)
		if err != nil {
			// abort the run; the last checkpoint stays valid and a
			// re-run skips everything already cached
			bar.Finish()
			slog.Error("Taxonomy lookup failed, aborting build",
				"organism_id", rec.OrganismID,
				"added_before_failure", added,
				"error", err,
			)
			return nil, err
		}

		cache[rec.OrganismID] = taxRec
		added++
		sinceCheckpoint++

		if sinceCheckpoint == b.cfg.Build.CheckpointInterval {
			if err = b.store.Save(cache); err != nil {
				bar.Finish()
				return nil, err
			}
			slog.Info("Checkpoint saved",
				"added", sinceCheckpoint,
				"total", len(cache),
			)
			gn.Message("<em>%s organisms added to taxonomy cache</em>",
				humanize.Comma(int64(sinceCheckpoint)))
			sinceCheckpoint = 0
		}
	}
	bar.Finish()

	// covers the final batch smaller than the checkpoint interval
	if err = b.store.Save(cache); err != nil {
		return nil, err
	}

	duration := time.Since(start)
	slog.Info("Taxonomy cache build complete",
		"added", added,
		"total", len(cache),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Taxonomy cache build complete
Organisms added: %s, total in cache: %s.
Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(added)),
		humanize.Comma(int64(len(cache))),
		gnfmt.TimeString(duration.Seconds()),
	)

	return cache, nil
}

// initCache returns the cache the build starts from: empty on a
// forced-fresh build or when no snapshot exists, otherwise the loaded
// snapshot.
func (b *builder) initCache() (taxon.Cache, error) {
	if b.cfg.Build.Recreate {
		slog.Info("Recreating taxonomy cache", "path", b.store.Path())
		gn.Info("Initializing new taxonomy cache")
		return taxon.Cache{}, nil
	}

	cache, err := b.store.Load()
	if err != nil {
		if iocache.IsNotFound(err) {
			gn.Info("No taxonomy cache found, initializing a new one")
			return taxon.Cache{}, nil
		}
		return nil, err
	}

	gn.Info("Loaded taxonomy cache from <em>%s</em>", b.store.Path())
	return cache, nil
}
