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
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/protax/internal/iocache"
	"github.com/gnames/protax/internal/iocsv"
	"github.com/gnames/protax/internal/iolabel"
	"github.com/gnames/protax/pkg/config"
	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
	"github.com/spf13/cobra"
)

// getLabelCmd returns the label command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLabelCmd() *cobra.Command {
	var (
		seqFile  string
		dbFile   string
		outFile  string
		fraction float64
		seed     int64
	)

	labelCmd := &cobra.Command{
		Use:   "label",
		Short: "Label sequences and draw a class-balanced sample",
		Long: `Label every sequence of a table with its taxonomic group and
write a class-balanced sample of the labeled table.

Labels come from the local taxonomy cache built by the build
command. A sequence whose organism is missing from the cache
aborts the run; rerun build first.

Each of the eight labels contributes round(fraction * total)
records to the balanced output, sampled uniformly without
replacement. The run fails when a label group is too small for
the requested fraction.

Use --seed for a reproducible sample; the default seeds from
entropy.

Examples:
  protax label
  protax label --fraction 0.02 --seed 42
  protax label -o labeled.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flagOpts []config.Option
			if cmd.Flags().Changed("seq-file") {
				flagOpts = append(flagOpts, config.OptSeqFile(seqFile))
			}
			if cmd.Flags().Changed("db-file") {
				flagOpts = append(flagOpts, config.OptDBFile(dbFile))
			}
			if cmd.Flags().Changed("out-file") {
				flagOpts = append(flagOpts, config.OptOutFile(outFile))
			}
			if cmd.Flags().Changed("fraction") {
				flagOpts = append(flagOpts,
					config.OptBalanceFraction(fraction))
			}
			flagOpts = append(flagOpts, config.OptBalanceSeed(seed))
			cfg.Update(flagOpts)

			return runLabel()
		},
	}

	labelCmd.Flags().StringVarP(&seqFile, "seq-file", "s",
		"", "sequence table (CSV) to label")
	labelCmd.Flags().StringVarP(&dbFile, "db-file", "d",
		"", "taxonomy cache snapshot file")
	labelCmd.Flags().StringVarP(&outFile, "out-file", "o",
		"", "labeled, balanced output table (CSV)")
	labelCmd.Flags().Float64VarP(&fraction, "fraction", "f",
		0, "per-label sample fraction of the total population")
	labelCmd.Flags().Int64Var(&seed, "seed",
		0, "random seed for sampling, 0 seeds from entropy")

	return labelCmd
}

func runLabel() error {
	recs, err := iocsv.ReadSequences(cfg.Paths.SeqFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	store := iocache.New(cfg.Paths.DBFile)
	cache, err := store.Load()
	if err != nil {
		if iocache.IsNotFound(err) {
			gn.Warn("No taxonomy cache at <em>%s</em>", store.Path())
			gn.Warn("Run <em>'protax build'</em> first")
		}
		gn.PrintErrorMessage(err)
		return err
	}

	labeled, err := iolabel.New(cache).LabelAll(recs)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	printStats("Labeled", labeled)

	balanced, err := seq.Balance(
		labeled, cfg.Balance.Fraction, newRand(cfg.Balance.Seed))
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	printStats("Balanced", balanced)

	if err = iocsv.WriteSequences(cfg.Paths.OutFile, balanced, true); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Wrote <em>%s</em> balanced records to <em>%s</em>",
		humanize.Comma(int64(len(balanced))), cfg.Paths.OutFile)

	return nil
}

// newRand creates the sampling random source. Zero seed means a
// non-reproducible run.
func newRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func printStats(title string, recs []seq.Record) {
	stats := seq.Stats(recs)
	gn.Info("\n%s records by label:", title)
	for _, label := range taxon.Labels() {
		st, ok := stats[label]
		if !ok {
			continue
		}
		gn.Info("  %-14s %10s  (%.2f%%)",
			label, humanize.Comma(int64(st.Count)), st.Fraction*100)
	}
}
