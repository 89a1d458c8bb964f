// Package iotesting provides shared fixtures for tests: a reference
// set of eight organisms whose lineages cover every label of the
// classification cascade, one organism per label.
package iotesting

import (
	"github.com/gnames/protax/pkg/seq"
	"github.com/gnames/protax/pkg/taxon"
)

func lineage(pairs ...string) []taxon.LineageEntry {
	res := make([]taxon.LineageEntry, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		res = append(res, taxon.LineageEntry{
			ScientificName: pairs[i],
			Rank:           pairs[i+1],
		})
	}
	return res
}

// FixtureCache returns a taxonomy cache with the eight reference
// organisms. Lineages are ordered most specific first, root last,
// matching the taxonomy service convention.
func FixtureCache() taxon.Cache {
	return taxon.Cache{
		"10493": {
			TaxonID:        10493,
			ScientificName: "Frog virus 3",
			Rank:           "species",
			Lineage: lineage(
				"Ranavirus", "genus",
				"Alphairidovirinae", "subfamily",
				"Iridoviridae", "family",
				"Pimascovirales", "order",
				"Megaviricetes", "class",
				"Nucleocytoviricota", "phylum",
				"Bamfordvirae", "kingdom",
				"Varidnaviria", "clade",
				"Viruses", "superkingdom",
			),
		},
		"224308": {
			TaxonID:        224308,
			ScientificName: "Bacillus subtilis subsp. subtilis str. 168",
			Rank:           "strain",
			Lineage: lineage(
				"Bacillus subtilis", "species",
				"Bacillus", "genus",
				"Bacillaceae", "family",
				"Bacillales", "order",
				"Bacilli", "class",
				"Bacillota", "phylum",
				"Bacteria", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
		"43687": {
			TaxonID:        43687,
			ScientificName: "Metallosphaera sedula",
			Rank:           "species",
			Lineage: lineage(
				"Metallosphaera", "genus",
				"Sulfolobaceae", "family",
				"Sulfolobales", "order",
				"Thermoprotei", "class",
				"Thermoproteota", "phylum",
				"Archaea", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
		"39947": {
			TaxonID:        39947,
			ScientificName: "Oryza sativa subsp. japonica",
			Rank:           "subspecies",
			Lineage: lineage(
				"Oryza sativa", "species",
				"Oryza", "genus",
				"Poaceae", "family",
				"Poales", "order",
				"Liliopsida", "class",
				"Magnoliopsida", "clade",
				"Streptophyta", "phylum",
				"Viridiplantae", "kingdom",
				"Eukaryota", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
		"559292": {
			TaxonID:        559292,
			ScientificName: "Saccharomyces cerevisiae S288C",
			Rank:           "strain",
			Lineage: lineage(
				"Saccharomyces cerevisiae", "species",
				"Saccharomyces", "genus",
				"Saccharomycetaceae", "family",
				"Saccharomycetales", "order",
				"Saccharomycetes", "class",
				"Ascomycota", "phylum",
				"Dikarya", "subkingdom",
				"Fungi", "kingdom",
				"Opisthokonta", "clade",
				"Eukaryota", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
		"9606": {
			TaxonID:        9606,
			ScientificName: "Homo sapiens",
			Rank:           "species",
			Lineage: lineage(
				"Homo", "genus",
				"Hominidae", "family",
				"Primates", "order",
				"Mammalia", "class",
				"Chordata", "phylum",
				"Metazoa", "kingdom",
				"Opisthokonta", "clade",
				"Eukaryota", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
		"7227": {
			TaxonID:        7227,
			ScientificName: "Drosophila melanogaster",
			Rank:           "species",
			Lineage: lineage(
				"Drosophila", "genus",
				"Drosophilidae", "family",
				"Diptera", "order",
				"Insecta", "class",
				"Arthropoda", "phylum",
				"Metazoa", "kingdom",
				"Opisthokonta", "clade",
				"Eukaryota", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
		"44689": {
			TaxonID:        44689,
			ScientificName: "Dictyostelium discoideum",
			Rank:           "species",
			Lineage: lineage(
				"Dictyostelium", "genus",
				"Dictyosteliaceae", "family",
				"Dictyosteliales", "order",
				"Dictyostelia", "class",
				"Evosea", "phylum",
				"Amoebozoa", "clade",
				"Eukaryota", "superkingdom",
				"cellular organisms", "no rank",
			),
		},
	}
}

// ExpectedLabels maps each reference organism to its expected label,
// one organism per label of the cascade.
func ExpectedLabels() map[taxon.OrganismID]taxon.Label {
	return map[taxon.OrganismID]taxon.Label{
		"10493":  taxon.Viruses,
		"224308": taxon.Bacteria,
		"43687":  taxon.Archaea,
		"39947":  taxon.Viridiplantae,
		"559292": taxon.Fungi,
		"9606":   taxon.Chordata,
		"7227":   taxon.Metazoa,
		"44689":  taxon.Eukaryota,
	}
}

// FixtureSequences returns one sequence record per reference organism,
// unlabeled, in a fixed order.
func FixtureSequences() []seq.Record {
	return []seq.Record{
		{
			DB: "sp", UniqueID: "Q6GZX4", EntryName: "001R_FRG3G",
			ProteinName:  "Putative transcription factor 001R",
			OrganismName: "Frog virus 3 (isolate Goorha)",
			OrganismID:   "10493", Sequence: "MAFSAEDVLKEYDRRRRMEALLLSLYYPND",
		},
		{
			DB: "sp", UniqueID: "P28366", EntryName: "SECA_BACSU",
			ProteinName:  "Protein translocase subunit SecA",
			OrganismName: "Bacillus subtilis (strain 168)",
			OrganismID:   "224308", Sequence: "MLGILNKMFDPTKRTLNRYEKIANDIDAIR",
		},
		{
			DB: "sp", UniqueID: "A4YEA0", EntryName: "MCM_METS5",
			ProteinName:  "Minichromosome maintenance protein MCM",
			OrganismName: "Metallosphaera sedula (strain ATCC 51363)",
			OrganismID:   "43687", Sequence: "MSENEVDKFFREFLQEFKGSDGEIKYLPQL",
		},
		{
			DB: "sp", UniqueID: "Q6YZD9", EntryName: "PSBL_ORYSJ",
			ProteinName:  "Photosystem II reaction center protein L",
			OrganismName: "Oryza sativa subsp. japonica",
			OrganismID:   "39947", Sequence: "MTQSNPNEQNVELNRTSLYWGLLLIFVLAV",
		},
		{
			DB: "sp", UniqueID: "P32478", EntryName: "YB8J_YEAST",
			ProteinName:  "PH domain-containing protein YBR150C",
			OrganismName: "Saccharomyces cerevisiae (strain ATCC 204508)",
			OrganismID:   "559292", Sequence: "MSQDNLKELLSLLNSPSPLNDLQSTQKLLN",
		},
		{
			DB: "sp", UniqueID: "P04637", EntryName: "P53_HUMAN",
			ProteinName:  "Cellular tumor antigen p53",
			OrganismName: "Homo sapiens",
			OrganismID:   "9606", Sequence: "MEEPQSDPSVEPPLSQETFSDLWKLLPENN",
		},
		{
			DB: "sp", UniqueID: "P02574", EntryName: "ACT1_DROME",
			ProteinName:  "Actin-5C",
			OrganismName: "Drosophila melanogaster",
			OrganismID:   "7227", Sequence: "MCDDEVAALVVDNGSGMCKAGFAGDDAPRA",
		},
		{
			DB: "sp", UniqueID: "P03962", EntryName: "DUTA_DICDI",
			ProteinName:  "Deoxyuridine 5'-triphosphate nucleotidohydrolase",
			OrganismName: "Dictyostelium discoideum",
			OrganismID:   "44689", Sequence: "MSLNIKLLSENATIPTRGSSLAAGYDLYSA",
		},
	}
}
