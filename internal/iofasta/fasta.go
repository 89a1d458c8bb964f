// Package iofasta reads UniProt FASTA files and parses their headers
// into sequence records.
package iofasta

import (
	"bufio"
	"os"
	"strings"

	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
)

// ParseHeader splits a UniProt FASTA description line into its fields.
// The expected shape is
//
//	db|UniqueID|EntryName ProteinName OS=OrganismName OX=OrganismID ...
//
// The leading '>' must already be stripped.
func ParseHeader(raw string) (seq.Record, error) {
	var res seq.Record

	idBlock, remaining, ok := strings.Cut(raw, " ")
	if !ok {
		return res, HeaderError(raw, "no description after id block")
	}

	idParts := strings.Split(idBlock, "|")
	if len(idParts) != 3 {
		return res, HeaderError(raw, "id block is not 'db|id|entry'")
	}

	osIdx := strings.Index(remaining, "OS=")
	oxIdx := strings.Index(remaining, "OX=")
	if osIdx < 0 || oxIdx < 0 || oxIdx < osIdx {
		return res, HeaderError(raw, "missing OS= or OX= fields")
	}

	organism := strings.TrimSpace(
		strings.TrimPrefix(remaining[osIdx:oxIdx], "OS="))
	organismID, _, _ := strings.Cut(
		strings.TrimPrefix(remaining[oxIdx:], "OX="), " ")
	if organismID == "" {
		return res, HeaderError(raw, "empty OX= field")
	}

	res = seq.Record{
		DB:           idParts[0],
		UniqueID:     idParts[1],
		EntryName:    idParts[2],
		ProteinName:  strings.TrimSpace(remaining[:osIdx]),
		OrganismName: organism,
		OrganismID:   taxon.OrganismID(organismID),
	}
	return res, nil
}

// ReadFile parses all records of a UniProt FASTA file.
func ReadFile(path string) ([]seq.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, FileError(path, err)
	}
	defer file.Close()

	var res []seq.Record
	var cur *seq.Record
	var sb strings.Builder

	flush := func() {
		if cur != nil {
			cur.Sequence = sb.String()
			res = append(res, *cur)
		}
		sb.Reset()
	}

	sc := bufio.NewScanner(file)
	// sequences are long; the default token size is too small
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r\n")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			rec, err := ParseHeader(strings.TrimPrefix(line, ">"))
			if err != nil {
				return nil, err
			}
			cur = &rec
			continue
		}
		if cur == nil {
			return nil, FileError(path, errSequenceBeforeHeader)
		}
		sb.WriteString(line)
	}
	if err := sc.Err(); err != nil {
		return nil, FileError(path, err)
	}
	flush()

	return res, nil
}
