package service

import (
	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/types"
	"github.com/bio-registry/part-hub/util"
)

func applyField(entry *db.Entry, field types.EntryField, value types.FieldValue) {
	switch field {
	case types.FieldName:
		entry.Name = value.Text
	case types.FieldAlias:
		entry.Alias = value.Text
	case types.FieldSummary:
		entry.ShortDescription = value.Text
	case types.FieldPI:
		entry.PrincipalInvestigator = value.Text
	case types.FieldFundingSource:
		entry.FundingSource = value.Text
	case types.FieldStatus:
		entry.Status = value.Text
	case types.FieldBioSafetyLevel:
		entry.BioSafetyLevel = value.Number
	case types.FieldSelectionMarkers:
		entry.SelectionMarkers = util.JoinWithComma(value.List)
	case types.FieldLinks:
		entry.Links = util.JoinWithComma(value.List)
	case types.FieldCircular:
		entry.Circular = value.Flag
	case types.FieldBackbone:
		entry.Backbone = value.Text
	case types.FieldOriginOfReplication:
		entry.OriginOfReplication = value.Text
	case types.FieldPromoters:
		entry.Promoters = value.Text
	case types.FieldHost:
		entry.Host = value.Text
	case types.FieldGenotypePhenotype:
		entry.GenotypePhenotype = value.Text
	case types.FieldPlasmids:
		entry.PlasmidNames = util.JoinWithComma(value.List)
	case types.FieldGeneration:
		entry.Generation = value.Text
	case types.FieldHomozygosity:
		entry.Homozygosity = value.Text
	case types.FieldEcotype:
		entry.Ecotype = value.Text
	case types.FieldHarvestDate:
		entry.HarvestDate = value.Text
	}
}

func entryToPartData(entry *db.Entry) *models.PartData {
	return &models.PartData{
		Id:               entry.Id,
		Type:             entry.Type,
		PartId:           entry.PartNumber,
		RecordId:         entry.RecordId,
		OwnerEmail:       entry.OwnerEmail,
		Visibility:       int(entry.Visibility),
		CreationTime:     entry.CreatedTime,
		ModificationTime: entry.ModificationTime,

		Name:                  entry.Name,
		Alias:                 entry.Alias,
		ShortDescription:      entry.ShortDescription,
		PrincipalInvestigator: entry.PrincipalInvestigator,
		FundingSource:         entry.FundingSource,
		Status:                entry.Status,
		BioSafetyLevel:        entry.BioSafetyLevel,
		SelectionMarkers:      util.SplitByComma(entry.SelectionMarkers),
		Links:                 util.SplitByComma(entry.Links),

		Circular:            entry.Circular,
		Backbone:            entry.Backbone,
		OriginOfReplication: entry.OriginOfReplication,
		Promoters:           entry.Promoters,

		Host:              entry.Host,
		GenotypePhenotype: entry.GenotypePhenotype,
		Plasmids:          util.SplitByComma(entry.PlasmidNames),

		Generation:   entry.Generation,
		Homozygosity: entry.Homozygosity,
		Ecotype:      entry.Ecotype,
		HarvestDate:  entry.HarvestDate,
	}
}

func uploadStatusString(status db.UploadStatus) string {
	if status == db.Submitted {
		return "SUBMITTED"
	}
	return "IN_PROGRESS"
}

func uploadToInfo(upload *db.BulkUpload, count int64) *models.BulkUploadInfo {
	return &models.BulkUploadInfo{
		Id:             upload.Id,
		OwnerEmail:     upload.OwnerEmail,
		Name:           upload.Name,
		Status:         uploadStatusString(upload.Status),
		Count:          count,
		CreatedTime:    upload.CreatedTime,
		LastUpdateTime: upload.LastUpdateTime,
		Entries:        make([]*models.PartData, 0),
	}
}
