package seq

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/errcode"
	"github.com/gnames/protax/pkg/taxon"
)

// InsufficientSamplesError creates an error for when a label group is
// smaller than the requested balanced sample size.
func InsufficientSamplesError(
	label taxon.Label,
	have, want int,
) error {
	msg := `Label group <em>%s</em> has %d records, %d requested

<em>How to fix:</em>
  1. Lower the balance fraction
  2. Check the label statistics of the input data`

	vars := []any{label, have, want}

	return &gn.Error{
		Code: errcode.InsufficientSamplesError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot sample %d records from %d of label %q",
			want, have, label),
	}
}
