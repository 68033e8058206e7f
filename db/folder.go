package db

type Folder struct {
	Id           int64
	OwnerEmail   string `gorm:"NOT NULL;index:idx_folder_owner"`
	Name         string `gorm:"NOT NULL"`
	PublicAccess bool
	CreatedTime  int64 `gorm:"NOT NULL"`
}

func (*Folder) TableName() string {
	return "folder"
}

type FolderEntry struct {
	Id       int64
	FolderId int64 `gorm:"NOT NULL;uniqueIndex:idx_folder_entry;index:idx_folder_entry_folder"`
	EntryId  int64 `gorm:"NOT NULL;uniqueIndex:idx_folder_entry"`
}

func (*FolderEntry) TableName() string {
	return "folder_entry"
}

// Permission grants an account read (and optionally write) access to a
// single entry beyond what ownership and visibility already allow.
type Permission struct {
	Id           int64
	EntryId      int64  `gorm:"NOT NULL;uniqueIndex:idx_permission_entry_account"`
	AccountEmail string `gorm:"NOT NULL;uniqueIndex:idx_permission_entry_account;size:128"`
	CanWrite     bool
}

func (*Permission) TableName() string {
	return "permission"
}
