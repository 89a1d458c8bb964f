package iocsv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/protax/internal/iocsv"
	"github.com/gnames/protax/internal/iotesting"
	"github.com/gnames/protax/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.csv")
	recs := iotesting.FixtureSequences()

	err := iocsv.WriteSequences(path, recs, false)
	require.NoError(t, err)

	got, err := iocsv.ReadSequences(path)
	require.NoError(t, err)
	assert.Equal(t, recs, got)
}

func TestWriteReadLabeled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "labeled.csv")
	recs := iotesting.FixtureSequences()
	for i := range recs {
		recs[i].Label = taxon.Eukaryota
	}

	err := iocsv.WriteSequences(path, recs, true)
	require.NoError(t, err)

	got, err := iocsv.ReadSequences(path)
	require.NoError(t, err)
	require.Len(t, got, len(recs))
	for _, rec := range got {
		assert.Equal(t, taxon.Eukaryota, rec.Label)
	}
}

func TestWriteCreatesDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "seq.csv")

	err := iocsv.WriteSequences(path, iotesting.FixtureSequences(), false)
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestReadMissingFile(t *testing.T) {
	_, err := iocsv.ReadSequences(filepath.Join(t.TempDir(), "none.csv"))
	assert.Error(t, err)
}

func TestReadBadHeader(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"empty file", ""},
		{"wrong columns", "id,name,sequence\n1,x,MEEP\n"},
		{
			"wrong label column",
			"db,unique_id,entry_name,protein_name," +
				"organism_name,organism_id,sequence,class\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.csv")
			require.NoError(t,
				os.WriteFile(path, []byte(tt.content), 0644))

			_, err := iocsv.ReadSequences(path)
			assert.Error(t, err)
		})
	}
}

func TestCommaAndQuoteFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seq.csv")
	recs := iotesting.FixtureSequences()
	recs[0].ProteinName = `Putative "factor", fragment`

	err := iocsv.WriteSequences(path, recs, false)
	require.NoError(t, err)

	got, err := iocsv.ReadSequences(path)
	require.NoError(t, err)
	assert.Equal(t, recs[0].ProteinName, got[0].ProteinName)
}
