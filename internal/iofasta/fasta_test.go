package iofasta_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gnames/protax/internal/iofasta"
	"github.com/gnames/protax/pkg/taxon"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		db      string
		uid     string
		entry   string
		protein string
		org     string
		orgID   taxon.OrganismID
		wantErr bool
	}{
		{
			name: "full swiss-prot header",
			header: "sp|Q6GZX4|001R_FRG3G Putative transcription " +
				"factor 001R OS=Frog virus 3 (isolate Goorha) " +
				"OX=654924 GN=FV3-001R PE=4 SV=1",
			db: "sp", uid: "Q6GZX4", entry: "001R_FRG3G",
			protein: "Putative transcription factor 001R",
			org:     "Frog virus 3 (isolate Goorha)",
			orgID:   "654924",
		},
		{
			name: "header without gene name",
			header: "sp|P04637|P53_HUMAN Cellular tumor antigen p53 " +
				"OS=Homo sapiens OX=9606 PE=1 SV=4",
			db: "sp", uid: "P04637", entry: "P53_HUMAN",
			protein: "Cellular tumor antigen p53",
			org:     "Homo sapiens",
			orgID:   "9606",
		},
		{
			name: "trembl header",
			header: "tr|A0A023GPI8|A0A023GPI8_CANBL Lectin " +
				"OS=Canavalia boliviana OX=538502 GN=lec PE=1 SV=1",
			db: "tr", uid: "A0A023GPI8", entry: "A0A023GPI8_CANBL",
			protein: "Lectin",
			org:     "Canavalia boliviana",
			orgID:   "538502",
		},
		{
			name:    "missing OX field",
			header:  "sp|P04637|P53_HUMAN p53 OS=Homo sapiens PE=1",
			wantErr: true,
		},
		{
			name:    "malformed id block",
			header:  "P04637 p53 OS=Homo sapiens OX=9606",
			wantErr: true,
		},
		{
			name:    "no description",
			header:  "sp|P04637|P53_HUMAN",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := iofasta.ParseHeader(tt.header)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.db, rec.DB)
			assert.Equal(t, tt.uid, rec.UniqueID)
			assert.Equal(t, tt.entry, rec.EntryName)
			assert.Equal(t, tt.protein, rec.ProteinName)
			assert.Equal(t, tt.org, rec.OrganismName)
			assert.Equal(t, tt.orgID, rec.OrganismID)
		})
	}
}

const fixtureFasta = `>sp|Q6GZX4|001R_FRG3G Putative transcription factor 001R OS=Frog virus 3 (isolate Goorha) OX=654924 GN=FV3-001R PE=4 SV=1
MAFSAEDVLKEYDRRRRMEALLLSLYYPNDRKLLDYKEWSPPRVQVECPKAPVEWNNPPS
EKGLIVGHFSGIKYKGEKAQASEVDVNKMCCWVSKFKDAMRRYQGIQTCKIPGKVLSDLD
AKIKAYNLTVEGVEGFVRYSRVTKQHVAAFLKELRHSKQYENVNLIHYILTDKRVDIQHL
>sp|P04637|P53_HUMAN Cellular tumor antigen p53 OS=Homo sapiens OX=9606 GN=TP53 PE=1 SV=4
MEEPQSDPSVEPPLSQETFSDLWKLLPENNVLSPLPSQAMDDLMLSPDDIEQWFTEDPGP
DEAPRMPEAAPPVAPAPAAPTPAAPAPAPSWPLSSSVPSQKTYQGSYGFRLGFLHSGTAK
`

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.fasta")
	require.NoError(t, os.WriteFile(path, []byte(fixtureFasta), 0644))

	recs, err := iofasta.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "Q6GZX4", recs[0].UniqueID)
	assert.Equal(t, taxon.OrganismID("654924"), recs[0].OrganismID)
	// sequence lines are concatenated
	assert.Len(t, recs[0].Sequence, 180)
	assert.True(t,
		len(recs[0].Sequence) > 0 && recs[0].Sequence[:4] == "MAFS")

	assert.Equal(t, "P53_HUMAN", recs[1].EntryName)
	assert.Len(t, recs[1].Sequence, 120)
}

func TestReadFileMissing(t *testing.T) {
	_, err := iofasta.ReadFile(filepath.Join(t.TempDir(), "none.fasta"))
	assert.Error(t, err)
}

func TestReadFileSequenceBeforeHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.fasta")
	require.NoError(t, os.WriteFile(path,
		[]byte("MEEPQSDPSV\n>sp|P04637|P53_HUMAN p53 OS=Homo sapiens OX=9606\nMEEP\n"),
		0644))

	_, err := iofasta.ReadFile(path)
	assert.Error(t, err)
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.fasta")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	recs, err := iofasta.ReadFile(path)
	require.NoError(t, err)
	assert.Empty(t, recs)
}
