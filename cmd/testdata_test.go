package cmd

import (
	"strings"
	"testing"

	"github.com/gnames/protax/internal/iofasta"
	"github.com/gnames/protax/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetTestdataCmd_Exists verifies getTestdataCmd returns
// a valid command.
func TestGetTestdataCmd_Exists(t *testing.T) {
	cmd := getTestdataCmd()
	require.NotNil(t, cmd, "Testdata command should exist")
	assert.Equal(t, "testdata", cmd.Use,
		"Command name should be testdata")
}

// TestGetTestdataCmd_DirFlag verifies --dir flag exists.
func TestGetTestdataCmd_DirFlag(t *testing.T) {
	cmd := getTestdataCmd()

	dirFlag := cmd.Flags().Lookup("dir")
	require.NotNil(t, dirFlag, "--dir flag should exist")
	assert.Equal(t, "d", dirFlag.Shorthand,
		"Short form should be -d")
	assert.Equal(t, "testdata", dirFlag.DefValue,
		"Default should be testdata")
}

// TestEmbeddedFasta verifies the embedded FASTA has one parseable
// entry per taxonomic label.
func TestEmbeddedFasta(t *testing.T) {
	assert.NotEmpty(t, testFasta,
		"Embedded FASTA should not be empty")

	var ids []taxon.OrganismID
	for _, line := range strings.Split(testFasta, "\n") {
		if !strings.HasPrefix(line, ">") {
			continue
		}
		rec, err := iofasta.ParseHeader(strings.TrimPrefix(line, ">"))
		require.NoError(t, err)
		ids = append(ids, rec.OrganismID)
	}
	require.Len(t, ids, len(taxon.Labels()),
		"One entry per taxonomic label")

	seen := make(map[taxon.OrganismID]bool)
	for _, id := range ids {
		assert.False(t, seen[id], "Organism %s should appear once", id)
		seen[id] = true
	}
}
