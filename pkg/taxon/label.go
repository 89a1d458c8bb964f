package taxon

// Label is one of the coarse taxonomic classes a sequence record can
// be assigned to.
type Label string

const (
	Viruses       Label = "Viruses"
	Bacteria      Label = "Bacteria"
	Archaea       Label = "Archaea"
	Viridiplantae Label = "Viridiplantae"
	Fungi         Label = "Fungi"
	Chordata      Label = "Chordata"
	Metazoa       Label = "Metazoa"
	Eukaryota     Label = "Eukaryota"
)

// Labels lists all labels in cascade order, the fallback last.
func Labels() []Label {
	return []Label{
		Viruses, Bacteria, Archaea, Viridiplantae,
		Fungi, Chordata, Metazoa, Eukaryota,
	}
}

// IsVirus reports whether the root rank is Viruses.
func (r Record) IsVirus() bool {
	return r.RankAt("Viruses", -1)
}

// IsCellular reports whether the root rank is "cellular organisms".
func (r Record) IsCellular() bool {
	return r.RankAt("cellular organisms", -1)
}

// IsEukaryote reports whether the organism is a cellular eukaryote.
func (r Record) IsEukaryote() bool {
	return r.IsCellular() && r.RankAt("Eukaryota", -2)
}

// IsBacteria reports whether the organism is a cellular bacterium.
func (r Record) IsBacteria() bool {
	return r.IsCellular() && r.RankAt("Bacteria", -2)
}

// IsArchaea reports whether the organism is a cellular archaeon.
func (r Record) IsArchaea() bool {
	return r.IsCellular() && r.RankAt("Archaea", -2)
}

// IsViridiplantae reports whether the organism is a green plant.
func (r Record) IsViridiplantae() bool {
	return r.IsEukaryote() && r.HasRank("Viridiplantae")
}

// IsFungi reports whether the organism is a fungus.
func (r Record) IsFungi() bool {
	return r.IsEukaryote() && r.HasRank("Fungi")
}

// IsChordata reports whether the organism is a chordate.
func (r Record) IsChordata() bool {
	return r.IsEukaryote() && r.HasRank("Chordata")
}

// IsMetazoa reports whether the organism is a non-chordate animal.
func (r Record) IsMetazoa() bool {
	return r.IsEukaryote() && !r.IsChordata() && r.HasRank("Metazoa")
}

// rule pairs a lineage predicate with the label it assigns.
type rule struct {
	match func(Record) bool
	label Label
}

// cascade is evaluated top to bottom, first match wins. The predicates
// overlap (a chordate lineage also contains Metazoa), so the order is
// part of the contract and must not change without re-deriving the
// expected labels of the reference organisms in the tests.
var cascade = []rule{
	{Record.IsVirus, Viruses},
	{Record.IsBacteria, Bacteria},
	{Record.IsArchaea, Archaea},
	{Record.IsViridiplantae, Viridiplantae},
	{Record.IsFungi, Fungi},
	{Record.IsChordata, Chordata},
	{Record.IsMetazoa, Metazoa},
}

// Classify maps a taxonomy record to exactly one Label. It is a pure
// function of the record's lineage. Lineages that match none of the
// cascade rules get the Eukaryota fallback.
func Classify(r Record) Label {
	for _, v := range cascade {
		if v.match(r) {
			return v.label
		}
	}
	return Eukaryota
}
