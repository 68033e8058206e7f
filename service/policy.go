package service

import (
	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/types"
)

// requiredFields gates the DRAFT to PENDING transition per entry type.
// Arabidopsis seeds carry no selection markers and submit without them.
var requiredFields = map[types.EntryType][]types.EntryField{
	types.Plasmid: {
		types.FieldName, types.FieldSummary, types.FieldPI,
		types.FieldStatus, types.FieldBioSafetyLevel, types.FieldSelectionMarkers,
	},
	types.Strain: {
		types.FieldName, types.FieldSummary, types.FieldPI,
		types.FieldStatus, types.FieldBioSafetyLevel, types.FieldSelectionMarkers,
	},
	types.Part: {
		types.FieldName, types.FieldSummary, types.FieldPI,
		types.FieldStatus, types.FieldBioSafetyLevel,
	},
	types.Arabidopsis: {
		types.FieldName, types.FieldSummary, types.FieldPI,
		types.FieldStatus, types.FieldBioSafetyLevel,
	},
}

// TypePolicy is the required-field contract per entry type. IsComplete is a
// pure check of current field values; it never mutates.
type TypePolicy struct{}

func NewTypePolicy() *TypePolicy {
	return &TypePolicy{}
}

func (p *TypePolicy) RequiredFields(entryType types.EntryType) []types.EntryField {
	return requiredFields[entryType]
}

func (p *TypePolicy) IsComplete(entry *db.Entry) bool {
	for _, field := range requiredFields[types.EntryType(entry.Type)] {
		if !fieldSet(entry, field) {
			return false
		}
	}
	return true
}

func fieldSet(entry *db.Entry, field types.EntryField) bool {
	switch field {
	case types.FieldName:
		return entry.Name != ""
	case types.FieldSummary:
		return entry.ShortDescription != ""
	case types.FieldPI:
		return entry.PrincipalInvestigator != ""
	case types.FieldStatus:
		return entry.Status != ""
	case types.FieldBioSafetyLevel:
		return entry.BioSafetyLevel > 0
	case types.FieldSelectionMarkers:
		return entry.SelectionMarkers != ""
	case types.FieldFundingSource:
		return entry.FundingSource != ""
	}
	return false
}
