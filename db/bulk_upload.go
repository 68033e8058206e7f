package db

type UploadStatus int

const (
	InProgress UploadStatus = 0
	Submitted  UploadStatus = 1 // every contained entry has reached at least Pending
)

type BulkUpload struct {
	Id             int64
	OwnerEmail     string       `gorm:"NOT NULL;index:idx_bulk_upload_owner"`
	Status         UploadStatus `gorm:"NOT NULL"`
	Name           string
	CreatedTime    int64 `gorm:"NOT NULL"`
	LastUpdateTime int64
}

func (*BulkUpload) TableName() string {
	return "bulk_upload"
}
