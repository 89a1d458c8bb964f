package iocsv

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/errcode"
)

// ReadError creates an error for when a sequence table cannot be
// read.
func ReadError(path string, err error) error {
	msg := `Cannot read sequence table <em>%s</em>

<em>How to fix:</em>
  1. Run <em>'protax parse'</em> to create it from a FASTA file`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SeqFileReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read sequence table %s: %w", path, err),
	}
}

// HeaderMismatchError creates an error for when a sequence table does
// not carry the expected columns.
func HeaderMismatchError(path string) error {
	msg := `Sequence table <em>%s</em> has an unexpected header

<em>Expected columns:</em>
  db, unique_id, entry_name, protein_name,
  organism_name, organism_id, sequence[, label]`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SeqFileReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("unexpected header in sequence table %s", path),
	}
}

// WriteError creates an error for when a sequence table cannot be
// written.
func WriteError(path string, err error) error {
	msg := "Cannot write sequence table <em>%s</em>"

	vars := []any{path}

	return &gn.Error{
		Code: errcode.SeqFileWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot write sequence table %s: %w", path, err),
	}
}
