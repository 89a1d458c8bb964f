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
	_ "embed"
	"os"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/gnames/gnsys"
	"github.com/gnames/protax/internal/iobuild"
	"github.com/gnames/protax/internal/iocache"
	"github.com/gnames/protax/internal/iocsv"
	"github.com/gnames/protax/internal/iofasta"
	"github.com/gnames/protax/internal/iofetch"
	"github.com/gnames/protax/pkg/config"
	"github.com/spf13/cobra"
)

// testFasta holds eight entries, one organism per taxonomic label.
//
//go:embed testdata.fasta
var testFasta string

// getTestdataCmd returns the testdata command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getTestdataCmd() *cobra.Command {
	var dir string

	testdataCmd := &cobra.Command{
		Use:   "testdata",
		Short: "Create a small dataset for trying out the pipeline",
		Long: `Create a small dataset for trying out the pipeline.

The command writes a FASTA file with eight entries, one organism
per taxonomic label, parses it into a sequence table, and builds
a taxonomy cache for it. Building the cache fetches the eight
organisms from the remote taxonomy service.

Files created in the target directory:
  test.fasta       FASTA input
  seq.csv          parsed sequence table
  taxonomy_db.gob  taxonomy cache snapshot

Examples:
  protax testdata
  protax testdata --dir /tmp/protax-test`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTestdata(dir)
		},
	}

	testdataCmd.Flags().StringVarP(&dir, "dir", "d",
		"testdata", "directory for the generated files")

	return testdataCmd
}

func runTestdata(dir string) error {
	if err := gnsys.MakeDir(dir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	fastaPath := filepath.Join(dir, "test.fasta")
	if err := os.WriteFile(fastaPath, []byte(testFasta), 0644); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Wrote <em>%s</em>", fastaPath)

	recs, err := iofasta.ReadFile(fastaPath)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	seqPath := filepath.Join(dir, "seq.csv")
	if err = iocsv.WriteSequences(seqPath, recs, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Wrote <em>%s</em>", seqPath)

	dbPath := filepath.Join(dir, "taxonomy_db.gob")
	cfg.Update([]config.Option{
		config.OptSeqFile(seqPath),
		config.OptDBFile(dbPath),
		config.OptBuildRecreate(true),
	})

	store := iocache.New(dbPath)
	fetcher := iofetch.New(cfg)
	if _, err = iobuild.New(cfg, fetcher, store).Build(recs); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	gn.Info("Wrote <em>%s</em>", dbPath)

	gn.Info("\nNext steps:")
	gn.Info("  - Run 'protax label -s %s -d %s' to label the dataset",
		seqPath, dbPath)

	return nil
}
