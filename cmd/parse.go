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
	"github.com/gnames/protax/internal/iocsv"
	"github.com/gnames/protax/internal/iofasta"
	"github.com/gnames/protax/pkg/config"
	"github.com/spf13/cobra"
)

// getParseCmd returns the parse command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getParseCmd() *cobra.Command {
	var fastaFile, seqFile string

	parseCmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse a UniProt FASTA file into a sequence table",
		Long: `Parse a UniProt FASTA file into a CSV sequence table.

Each FASTA header of the shape

  >db|UniqueID|EntryName ProteinName OS=Organism OX=TaxonID ...

becomes one row of the table, with the sequence lines concatenated
into a single string. The resulting table is the input for the
build and label commands.

Examples:
  protax parse
  protax parse --fasta-file data/uniprot_sprot.fasta
  protax parse -f swissprot.fasta -s seq.csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var flagOpts []config.Option
			if cmd.Flags().Changed("fasta-file") {
				flagOpts = append(flagOpts, config.OptFastaFile(fastaFile))
			}
			if cmd.Flags().Changed("seq-file") {
				flagOpts = append(flagOpts, config.OptSeqFile(seqFile))
			}
			cfg.Update(flagOpts)

			return runParse()
		},
	}

	parseCmd.Flags().StringVarP(&fastaFile, "fasta-file", "f",
		"", "UniProt FASTA file to parse")
	parseCmd.Flags().StringVarP(&seqFile, "seq-file", "s",
		"", "output sequence table (CSV)")

	return parseCmd
}

func runParse() error {
	gn.Info("Parsing FASTA file <em>%s</em>", cfg.Paths.FastaFile)

	recs, err := iofasta.ReadFile(cfg.Paths.FastaFile)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iocsv.WriteSequences(cfg.Paths.SeqFile, recs, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Wrote <em>%s</em> records to <em>%s</em>",
		humanize.Comma(int64(len(recs))), cfg.Paths.SeqFile)
	gn.Info("\nNext steps:")
	gn.Info("  - Run 'protax build' to build the taxonomy cache")

	return nil
}
