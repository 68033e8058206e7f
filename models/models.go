package models

import (
	"github.com/bio-registry/part-hub/types"
)

type Error struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// PartData is the outward representation of a single entry.
type PartData struct {
	Id               int64  `json:"id"`
	Type             string `json:"type"`
	PartId           string `json:"partId"`
	RecordId         string `json:"recordId"`
	OwnerEmail       string `json:"ownerEmail"`
	Visibility       int    `json:"visibility"`
	CreationTime     int64  `json:"creationTime"`
	ModificationTime int64  `json:"modificationTime"`

	Name                  string   `json:"name"`
	Alias                 string   `json:"alias,omitempty"`
	ShortDescription      string   `json:"shortDescription"`
	PrincipalInvestigator string   `json:"principalInvestigator"`
	FundingSource         string   `json:"fundingSource"`
	Status                string   `json:"status"`
	BioSafetyLevel        int      `json:"bioSafetyLevel"`
	SelectionMarkers      []string `json:"selectionMarkers"`
	Links                 []string `json:"links"`

	Circular            bool   `json:"circular,omitempty"`
	Backbone            string `json:"backbone,omitempty"`
	OriginOfReplication string `json:"originOfReplication,omitempty"`
	Promoters           string `json:"promoters,omitempty"`

	Host              string   `json:"host,omitempty"`
	GenotypePhenotype string   `json:"genotypePhenotype,omitempty"`
	Plasmids          []string `json:"plasmids,omitempty"`

	Generation   string `json:"generation,omitempty"`
	Homozygosity string `json:"homozygosity,omitempty"`
	Ecotype      string `json:"ecotype,omitempty"`
	HarvestDate  string `json:"harvestDate,omitempty"`
}

// BulkUploadInfo summarizes one bulk upload container and, when requested,
// a page of its entries.
type BulkUploadInfo struct {
	Id             int64       `json:"id"`
	OwnerEmail     string      `json:"ownerEmail"`
	Name           string      `json:"name,omitempty"`
	Status         string      `json:"status"`
	Count          int64       `json:"count"`
	CreatedTime    int64       `json:"createdTime"`
	LastUpdateTime int64       `json:"lastUpdateTime"`
	Entries        []*PartData `json:"entries"`
}

// AutoUpdateRequest is one incremental save of a spreadsheet row.
// BulkUploadId zero starts a new container; Row addresses the entry within
// it. Omitted fields are left untouched on the entry.
type AutoUpdateRequest struct {
	BulkUploadId int64                       `json:"bulkUploadId"`
	Row          int                         `json:"row"`
	EntryType    types.EntryType             `json:"entryType"`
	Fields       map[types.EntryField]string `json:"fields"`
}

type AutoUpdateResponse struct {
	EntryId       int64              `json:"entryId"`
	BulkUploadId  int64              `json:"bulkUploadId"`
	LastUpdate    int64              `json:"lastUpdate"`
	DroppedFields []types.EntryField `json:"droppedFields,omitempty"`
}

// PreferenceInfo registers or removes an account field preference.
type PreferenceInfo struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Add   bool   `json:"add"`
}
