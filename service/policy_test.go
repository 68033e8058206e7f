package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/types"
)

func completeEntry(entryType types.EntryType) *db.Entry {
	return &db.Entry{
		Type:                  string(entryType),
		Name:                  "JBx_042",
		ShortDescription:      "production host",
		PrincipalInvestigator: "N. Hillson",
		Status:                "Complete",
		BioSafetyLevel:        1,
		SelectionMarkers:      "kanamycin",
	}
}

func TestIsCompleteRequiredFields(t *testing.T) {
	policy := NewTypePolicy()

	for _, entryType := range []types.EntryType{types.Plasmid, types.Strain, types.Part, types.Arabidopsis} {
		require.True(t, policy.IsComplete(completeEntry(entryType)), entryType)
	}

	entry := completeEntry(types.Strain)
	entry.Name = ""
	require.False(t, policy.IsComplete(entry))

	entry = completeEntry(types.Plasmid)
	entry.BioSafetyLevel = 0
	require.False(t, policy.IsComplete(entry))
}

func TestSelectionMarkersRequiredPerType(t *testing.T) {
	policy := NewTypePolicy()

	entry := completeEntry(types.Strain)
	entry.SelectionMarkers = ""
	require.False(t, policy.IsComplete(entry))

	entry = completeEntry(types.Plasmid)
	entry.SelectionMarkers = ""
	require.False(t, policy.IsComplete(entry))

	// seeds and generic parts submit without markers
	entry = completeEntry(types.Arabidopsis)
	entry.SelectionMarkers = ""
	require.True(t, policy.IsComplete(entry))

	entry = completeEntry(types.Part)
	entry.SelectionMarkers = ""
	require.True(t, policy.IsComplete(entry))
}

func TestRequiredFieldsListed(t *testing.T) {
	policy := NewTypePolicy()

	require.Contains(t, policy.RequiredFields(types.Strain), types.FieldSelectionMarkers)
	require.NotContains(t, policy.RequiredFields(types.Arabidopsis), types.FieldSelectionMarkers)
}
