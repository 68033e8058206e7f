package types

type EntryType string

const (
	Plasmid     EntryType = "plasmid"
	Strain      EntryType = "strain"
	Part        EntryType = "part"
	Arabidopsis EntryType = "arabidopsis"
)

func (t EntryType) Valid() bool {
	switch t {
	case Plasmid, Strain, Part, Arabidopsis:
		return true
	}
	return false
}

// EntryField is the closed set of logical fields a bulk upload row may carry.
type EntryField string

const (
	FieldName             EntryField = "name"
	FieldAlias            EntryField = "alias"
	FieldSummary          EntryField = "summary"
	FieldPI               EntryField = "principal_investigator"
	FieldFundingSource    EntryField = "funding_source"
	FieldStatus           EntryField = "status"
	FieldBioSafetyLevel   EntryField = "biosafety_level"
	FieldSelectionMarkers EntryField = "selection_markers"
	FieldLinks            EntryField = "links"

	// plasmid
	FieldCircular            EntryField = "circular"
	FieldBackbone            EntryField = "backbone"
	FieldOriginOfReplication EntryField = "origin_of_replication"
	FieldPromoters           EntryField = "promoters"

	// strain
	FieldHost              EntryField = "host"
	FieldGenotypePhenotype EntryField = "genotype_phenotype"
	FieldPlasmids          EntryField = "plasmids"

	// arabidopsis seed
	FieldGeneration   EntryField = "generation"
	FieldHomozygosity EntryField = "homozygosity"
	FieldEcotype      EntryField = "ecotype"
	FieldHarvestDate  EntryField = "harvest_date"
)

// FieldKind selects the FieldValue variant a field resolves to.
type FieldKind int

const (
	KindText FieldKind = iota
	KindMultiText
	KindNumber
	KindFlag
)

var fieldKinds = map[EntryField]FieldKind{
	FieldName:                KindText,
	FieldAlias:               KindText,
	FieldSummary:             KindText,
	FieldPI:                  KindText,
	FieldFundingSource:       KindText,
	FieldStatus:              KindText,
	FieldBioSafetyLevel:      KindNumber,
	FieldSelectionMarkers:    KindMultiText,
	FieldLinks:               KindMultiText,
	FieldCircular:            KindFlag,
	FieldBackbone:            KindText,
	FieldOriginOfReplication: KindText,
	FieldPromoters:           KindText,
	FieldHost:                KindText,
	FieldGenotypePhenotype:   KindText,
	FieldPlasmids:            KindMultiText,
	FieldGeneration:          KindText,
	FieldHomozygosity:        KindText,
	FieldEcotype:             KindText,
	FieldHarvestDate:         KindText,
}

func (f EntryField) Kind() (FieldKind, bool) {
	kind, ok := fieldKinds[f]
	return kind, ok
}

// FieldValue is the typed result of resolving a raw field string. Exactly
// one variant is meaningful, selected by Kind.
type FieldValue struct {
	Kind   FieldKind
	Text   string
	List   []string
	Number int
	Flag   bool
}

func TextValue(s string) FieldValue {
	return FieldValue{Kind: KindText, Text: s}
}

func ListValue(items []string) FieldValue {
	return FieldValue{Kind: KindMultiText, List: items}
}

func NumberValue(n int) FieldValue {
	return FieldValue{Kind: KindNumber, Number: n}
}

func FlagValue(b bool) FieldValue {
	return FieldValue{Kind: KindFlag, Flag: b}
}

// StatusOptions are the status values accepted without an account preference.
var StatusOptions = []string{"Complete", "In Progress", "Planned", "Abandoned"}
