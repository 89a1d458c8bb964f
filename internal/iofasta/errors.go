package iofasta

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/errcode"
)

var errSequenceBeforeHeader = errors.New(
	"sequence data before the first header")

// FileError creates an error for when a FASTA file cannot be read.
func FileError(path string, err error) error {
	msg := "Cannot read FASTA file <em>%s</em>"

	vars := []any{path}

	return &gn.Error{
		Code: errcode.FastaFileError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read FASTA file %s: %w", path, err),
	}
}

// HeaderError creates an error for when a FASTA header does not match
// the UniProt shape.
func HeaderError(header, reason string) error {
	msg := `Cannot parse FASTA header: %s

<em>Header:</em> %s`

	vars := []any{reason, header}

	return &gn.Error{
		Code: errcode.FastaHeaderError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot parse FASTA header %q: %s", header, reason),
	}
}
