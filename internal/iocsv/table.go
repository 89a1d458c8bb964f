// Package iocsv reads and writes the sequence table, a CSV file with
// one row per protein entry.
package iocsv

import (
	"encoding/csv"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gnsys"
	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
)

var header = []string{
	"db", "unique_id", "entry_name", "protein_name",
	"organism_name", "organism_id", "sequence",
}

const labelColumn = "label"

// ReadSequences reads a sequence table. Both unlabeled (7 columns)
// and labeled (8 columns) tables are accepted.
func ReadSequences(path string) ([]seq.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ReadError(path, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, ReadError(path, err)
	}
	if len(rows) == 0 {
		return nil, HeaderMismatchError(path)
	}

	withLabel, err := checkHeader(path, rows[0])
	if err != nil {
		return nil, err
	}

	res := make([]seq.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := seq.Record{
			DB:           row[0],
			UniqueID:     row[1],
			EntryName:    row[2],
			ProteinName:  row[3],
			OrganismName: row[4],
			OrganismID:   taxon.OrganismID(row[5]),
			Sequence:     row[6],
		}
		if withLabel {
			rec.Label = taxon.Label(row[7])
		}
		res = append(res, rec)
	}

	slog.Info("Read sequence table",
		"path", path, "records", len(res), "labeled", withLabel)
	return res, nil
}

// WriteSequences writes a sequence table. With withLabels the label
// column is appended to the schema.
func WriteSequences(
	path string,
	recs []seq.Record,
	withLabels bool,
) error {
	dir := filepath.Dir(path)
	if err := gnsys.MakeDir(dir); err != nil {
		return WriteError(path, err)
	}

	file, err := os.Create(path)
	if err != nil {
		return WriteError(path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	head := header
	if withLabels {
		head = append(append([]string{}, header...), labelColumn)
	}
	if err = w.Write(head); err != nil {
		return WriteError(path, err)
	}

	for _, rec := range recs {
		row := []string{
			rec.DB, rec.UniqueID, rec.EntryName, rec.ProteinName,
			rec.OrganismName, string(rec.OrganismID), rec.Sequence,
		}
		if withLabels {
			row = append(row, string(rec.Label))
		}
		if err = w.Write(row); err != nil {
			return WriteError(path, err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return WriteError(path, err)
	}

	slog.Info("Wrote sequence table",
		"path", path, "records", len(recs), "labeled", withLabels)
	return nil
}

// checkHeader validates the first row against the schema and reports
// whether the table carries a label column.
func checkHeader(path string, row []string) (bool, error) {
	if len(row) != len(header) && len(row) != len(header)+1 {
		return false, HeaderMismatchError(path)
	}
	for i, col := range header {
		if row[i] != col {
			return false, HeaderMismatchError(path)
		}
	}
	withLabel := len(row) == len(header)+1
	if withLabel && row[len(header)] != labelColumn {
		return false, HeaderMismatchError(path)
	}
	return withLabel, nil
}
