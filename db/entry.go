package db

type Visibility int

const (
	Draft   Visibility = 0
	Pending Visibility = 1
	OK      Visibility = 9 // publicly visible, terminal
)

type Entry struct {
	Id         int64
	RecordId   string `gorm:"NOT NULL;uniqueIndex:idx_entry_record_id;size:36"`
	PartNumber string `gorm:"index:idx_entry_part_number;size:32"`
	Type       string `gorm:"NOT NULL;size:32"`
	OwnerEmail string `gorm:"NOT NULL;index:idx_entry_owner"`
	Visibility Visibility
	Version    int64 `gorm:"NOT NULL"`

	// bulk upload membership, zero once the entry stands alone
	BulkUploadId int64 `gorm:"index:idx_entry_bulk_upload"`
	RowIndex     int

	Name                  string
	Alias                 string
	ShortDescription      string
	PrincipalInvestigator string
	FundingSource         string
	Status                string
	BioSafetyLevel        int
	SelectionMarkers      string // comma separated
	Links                 string // comma separated

	// plasmid
	Circular            bool
	Backbone            string
	OriginOfReplication string
	Promoters           string

	// strain
	Host              string
	GenotypePhenotype string
	PlasmidNames      string

	// arabidopsis seed
	Generation   string
	Homozygosity string
	Ecotype      string
	HarvestDate  string

	CreatedTime      int64 `gorm:"NOT NULL"`
	ModificationTime int64
}

func (*Entry) TableName() string {
	return "entry"
}
