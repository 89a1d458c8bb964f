package iolabel

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/protax/pkg/errcode"
	"github.com/gnames/protax/pkg/taxon"
)

// MissingLineageError creates an error for when an organism has no
// entry in the taxonomy cache.
func MissingLineageError(id taxon.OrganismID) error {
	msg := `Organism <em>%s</em> is missing from the taxonomy cache

<em>How to fix:</em>
  1. Run <em>'protax build'</em> over the full sequence table
  2. Re-run labeling once the build completes`

	vars := []any{id}

	return &gn.Error{
		Code: errcode.MissingLineageError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("no lineage cached for organism %s", id),
	}
}
