package iofetch

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/errcode"
	"github.com/gnames/protax/pkg/taxon"
)

// LookupRequestError creates an error for when the taxonomy service
// cannot be reached or its response cannot be read.
func LookupRequestError(id taxon.OrganismID, err error) error {
	msg := `Cannot reach taxonomy service for organism <em>%s</em>

<em>Possible causes:</em>
  - No network connection
  - Taxonomy service is down`

	vars := []any{id}

	return &gn.Error{
		Code: errcode.LookupRequestError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("taxonomy lookup of %s failed: %w", id, err),
	}
}

// LookupStatusError creates an error for when the taxonomy service
// returns a non-success status.
func LookupStatusError(id taxon.OrganismID, status int) error {
	msg := `Taxonomy service returned status %d for organism <em>%s</em>`

	vars := []any{status, id}

	return &gn.Error{
		Code: errcode.LookupStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"taxonomy lookup of %s returned status %d", id, status),
	}
}

// LookupDecodeError creates an error for when the taxonomy service
// response cannot be decoded into a taxonomy record.
func LookupDecodeError(id taxon.OrganismID, err error) error {
	msg := "Cannot decode taxonomy service response for organism <em>%s</em>"

	vars := []any{id}

	return &gn.Error{
		Code: errcode.LookupDecodeError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"cannot decode taxonomy record of %s: %w", id, err),
	}
}
