/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/protax/internal/iobuild"
	"github.com/gnames/protax/internal/iocache"
	"github.com/gnames/protax/internal/iocsv"
	"github.com/gnames/protax/internal/iofetch"
	"github.com/gnames/protax/pkg/config"
	"github.com/spf13/cobra"
)

// getBuildCmd returns the build command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getBuildCmd() *cobra.Command {
	var (
		seqFile  string
		dbFile   string
		recreate bool
		interval int
	)

	buildCmd := &cobra.Command{
		Use:   "build",
		Short: "Build the taxonomy cache from a sequence table",
		Long: `Build the local taxonomy cache for a sequence table.

Every distinct organism of the table that is not yet in the cache
is fetched from the remote taxonomy service. The cache is flushed
to disk after every --interval new organisms, so an interrupted
run loses at most one interval of work and never refetches
organisms it already knows.

Rerunning build on an unchanged sequence table is a no-op.

Use --recreate to discard the existing cache and start over.

Examples:
  protax build
  protax build --seq-file data/seq.csv --db-file data/taxonomy_db.gob
  protax build --recreate --interval 50`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flagOpts []config.Option
			if cmd.Flags().Changed("seq-file") {
				flagOpts = append(flagOpts, config.OptSeqFile(seqFile))
			}
			if cmd.Flags().Changed("db-file") {
				flagOpts = append(flagOpts, config.OptDBFile(dbFile))
			}
			if cmd.Flags().Changed("interval") {
				flagOpts = append(flagOpts,
					config.OptBuildCheckpointInterval(interval))
			}
			flagOpts = append(flagOpts, config.OptBuildRecreate(recreate))
			cfg.Update(flagOpts)

			return runBuild()
		},
	}

	buildCmd.Flags().StringVarP(&seqFile, "seq-file", "s",
		"", "sequence table (CSV) with organisms to resolve")
	buildCmd.Flags().StringVarP(&dbFile, "db-file", "d",
		"", "taxonomy cache snapshot file")
	buildCmd.Flags().BoolVarP(&recreate, "recreate", "r",
		false, "discard the existing cache and start over")
	buildCmd.Flags().IntVarP(&interval, "interval", "i",
		0, "number of new organisms between cache snapshots")

	return buildCmd
}

func runBuild() error {
	recs, err := iocsv.ReadSequences(cfg.Paths.SeqFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Read <em>%s</em> records from <em>%s</em>",
		humanize.Comma(int64(len(recs))), cfg.Paths.SeqFile)

	store := iocache.New(cfg.Paths.DBFile)
	fetcher := iofetch.New(cfg)

	cache, err := iobuild.New(cfg, fetcher, store).Build(recs)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Taxonomy cache at <em>%s</em> has <em>%s</em> organisms",
		store.Path(), humanize.Comma(int64(len(cache))))
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'protax label' to label and balance sequences")

	return nil
}
