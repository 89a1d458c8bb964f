// Package taxon provides the taxonomy data model and the lineage
// classification rules used to assign coarse taxonomic labels to
// protein sequences.
//
// This is a pure package: no file operations, no network calls.
package taxon

// OrganismID identifies one taxon in the remote taxonomy service.
// It is the value of the OX field of a UniProt FASTA header.
type OrganismID string

// LineageEntry is one rank of a taxonomic lineage.
type LineageEntry struct {
	TaxonID        int    `json:"taxonId"`
	ScientificName string `json:"scientificName"`
	Rank           string `json:"rank"`
}

// Record is the result of a taxonomy lookup for one organism.
// The lineage is kept exactly as the service returns it: ordered from
// the most specific rank down to the root, so the last entry is the
// root rank. A Record is immutable once fetched.
type Record struct {
	TaxonID        int            `json:"taxonId"`
	ScientificName string         `json:"scientificName"`
	Rank           string         `json:"rank"`
	Lineage        []LineageEntry `json:"lineage"`
}

// Cache maps organism ids to their taxonomy records. An organism has
// at most one record and a record is never overwritten, so repeated
// cache builds over the same input converge without duplicate fetches.
type Cache map[OrganismID]Record

// HasRank reports whether a rank with the given scientific name
// appears anywhere in the lineage.
func (r Record) HasRank(name string) bool {
	for _, v := range r.Lineage {
		if v.ScientificName == name {
			return true
		}
	}
	return false
}

// RankAt reports whether the lineage entry at the given from-end
// position has the given scientific name. Position -1 is the root
// rank, -2 the next level down. Positions outside the lineage
// report false, so organisms with truncated lineages fall through
// the classification cascade to its default label.
func (r Record) RankAt(name string, pos int) bool {
	idx := len(r.Lineage) + pos
	if idx < 0 || idx >= len(r.Lineage) {
		return false
	}
	return r.Lineage[idx].ScientificName == name
}
