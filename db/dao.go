package db

import (
	"gorm.io/gorm"
)

type RegistryDao interface {
	EntryDB
	BulkUploadDB
	PreferenceDB
	AccountDB
	FolderDB
	PermissionDB
	// Transaction runs fn against a dao bound to a single transaction,
	// committing on nil and rolling back on error. Nested calls reuse the
	// ambient transaction.
	Transaction(fn func(dao RegistryDao) error) error
}

type RegistrySvcDB struct {
	db *gorm.DB
}

func NewRegistrySvcDB(db *gorm.DB) RegistryDao {
	return &RegistrySvcDB{
		db,
	}
}

func (d *RegistrySvcDB) Transaction(fn func(dao RegistryDao) error) error {
	return d.db.Transaction(func(dbTx *gorm.DB) error {
		return fn(&RegistrySvcDB{dbTx})
	})
}

type EntryDB interface {
	GetEntry(id int64) (*Entry, error)
	GetEntryByPartNumber(partNumber string) (*Entry, error)
	GetEntryByRecordId(recordId string) (*Entry, error)
	GetEntryByUploadAndRow(bulkUploadId int64, rowIndex int) (*Entry, error)
	GetEntriesByUpload(bulkUploadId int64, offset, limit int) ([]*Entry, error)
	GetOwnerEntryIds(ownerEmail, entryType string) ([]int64, error)
	GetVisibleEntryIds(visibilities []Visibility) ([]int64, error)
	CountEntriesByUpload(bulkUploadId int64) (int64, error)
	CountEntriesByVisibility(v Visibility) (int64, error)
	CreateEntry(entry *Entry) error
	UpdateEntry(entry *Entry) error
	UpdateEntriesVisibility(bulkUploadId int64, from, to Visibility) error
	DetachEntries(bulkUploadId int64) error
	DeleteEntriesByUpload(bulkUploadId int64) error
}

func (d *RegistrySvcDB) GetEntry(id int64) (*Entry, error) {
	entry := Entry{}
	err := d.db.Model(Entry{}).Where("id = ?", id).Take(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (d *RegistrySvcDB) GetEntryByPartNumber(partNumber string) (*Entry, error) {
	entry := Entry{}
	err := d.db.Model(Entry{}).Where("part_number = ?", partNumber).Take(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (d *RegistrySvcDB) GetEntryByRecordId(recordId string) (*Entry, error) {
	entry := Entry{}
	err := d.db.Model(Entry{}).Where("record_id = ?", recordId).Take(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (d *RegistrySvcDB) GetEntryByUploadAndRow(bulkUploadId int64, rowIndex int) (*Entry, error) {
	entry := Entry{}
	err := d.db.Model(Entry{}).Where("bulk_upload_id = ? and row_index = ?", bulkUploadId, rowIndex).Take(&entry).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (d *RegistrySvcDB) GetEntriesByUpload(bulkUploadId int64, offset, limit int) ([]*Entry, error) {
	entries := make([]*Entry, 0)
	tx := d.db.Where("bulk_upload_id = ?", bulkUploadId).Order("row_index asc").Offset(offset)
	if limit > 0 {
		tx = tx.Limit(limit)
	}
	if err := tx.Find(&entries).Error; err != nil {
		return entries, err
	}
	return entries, nil
}

func (d *RegistrySvcDB) GetOwnerEntryIds(ownerEmail, entryType string) ([]int64, error) {
	ids := make([]int64, 0)
	tx := d.db.Model(Entry{}).Where("owner_email = ?", ownerEmail)
	if entryType != "" {
		tx = tx.Where("type = ?", entryType)
	}
	if err := tx.Order("id asc").Pluck("id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *RegistrySvcDB) GetVisibleEntryIds(visibilities []Visibility) ([]int64, error) {
	ids := make([]int64, 0)
	err := d.db.Model(Entry{}).Where("visibility in (?)", visibilities).Order("id asc").Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *RegistrySvcDB) CountEntriesByUpload(bulkUploadId int64) (int64, error) {
	var count int64
	err := d.db.Model(Entry{}).Where("bulk_upload_id = ?", bulkUploadId).Count(&count).Error
	return count, err
}

func (d *RegistrySvcDB) CountEntriesByVisibility(v Visibility) (int64, error) {
	var count int64
	err := d.db.Model(Entry{}).Where("visibility = ?", v).Count(&count).Error
	return count, err
}

func (d *RegistrySvcDB) CreateEntry(entry *Entry) error {
	return d.db.Create(entry).Error
}

// UpdateEntry writes every column of the entry, guarded by the version the
// caller loaded. A concurrent writer that committed first leaves the stored
// version ahead of ours and the update matches no row.
func (d *RegistrySvcDB) UpdateEntry(entry *Entry) error {
	prev := entry.Version
	entry.Version = prev + 1
	res := d.db.Model(Entry{}).Where("id = ? and version = ?", entry.Id, prev).
		Select("*").Omit("id", "created_time").Updates(entry)
	if res.Error != nil {
		entry.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		entry.Version = prev
		return ErrStaleEntry
	}
	return nil
}

func (d *RegistrySvcDB) UpdateEntriesVisibility(bulkUploadId int64, from, to Visibility) error {
	return d.db.Model(Entry{}).Where("bulk_upload_id = ? and visibility = ?", bulkUploadId, from).
		Updates(map[string]interface{}{"visibility": to}).Error
}

func (d *RegistrySvcDB) DetachEntries(bulkUploadId int64) error {
	return d.db.Model(Entry{}).Where("bulk_upload_id = ?", bulkUploadId).
		Updates(map[string]interface{}{"bulk_upload_id": 0, "row_index": 0}).Error
}

func (d *RegistrySvcDB) DeleteEntriesByUpload(bulkUploadId int64) error {
	return d.db.Where("bulk_upload_id = ?", bulkUploadId).Delete(&Entry{}).Error
}

type BulkUploadDB interface {
	GetUpload(id int64) (*BulkUpload, error)
	GetUploadsByOwner(ownerEmail string) ([]*BulkUpload, error)
	GetUploadsByStatus(status UploadStatus) ([]*BulkUpload, error)
	CountUploadsByStatus(status UploadStatus) (int64, error)
	CreateUpload(upload *BulkUpload) error
	UpdateUpload(upload *BulkUpload) error
	UpdateUploadStatus(id int64, status UploadStatus) error
	DeleteUpload(id int64) error
}

func (d *RegistrySvcDB) GetUpload(id int64) (*BulkUpload, error) {
	upload := BulkUpload{}
	err := d.db.Model(BulkUpload{}).Where("id = ?", id).Take(&upload).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &upload, nil
}

func (d *RegistrySvcDB) GetUploadsByOwner(ownerEmail string) ([]*BulkUpload, error) {
	uploads := make([]*BulkUpload, 0)
	if err := d.db.Where("owner_email = ?", ownerEmail).Order("id asc").Find(&uploads).Error; err != nil {
		return uploads, err
	}
	return uploads, nil
}

func (d *RegistrySvcDB) GetUploadsByStatus(status UploadStatus) ([]*BulkUpload, error) {
	uploads := make([]*BulkUpload, 0)
	if err := d.db.Where("status = ?", status).Order("id asc").Find(&uploads).Error; err != nil {
		return uploads, err
	}
	return uploads, nil
}

func (d *RegistrySvcDB) CountUploadsByStatus(status UploadStatus) (int64, error) {
	var count int64
	err := d.db.Model(BulkUpload{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

func (d *RegistrySvcDB) CreateUpload(upload *BulkUpload) error {
	return d.db.Create(upload).Error
}

func (d *RegistrySvcDB) UpdateUpload(upload *BulkUpload) error {
	return d.db.Save(upload).Error
}

func (d *RegistrySvcDB) UpdateUploadStatus(id int64, status UploadStatus) error {
	return d.db.Model(BulkUpload{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status}).Error
}

func (d *RegistrySvcDB) DeleteUpload(id int64) error {
	return d.db.Where("id = ?", id).Delete(&BulkUpload{}).Error
}

type PreferenceDB interface {
	GetPreference(ownerEmail, key string) (*Preference, error)
	GetPreferences(ownerEmail string) ([]*Preference, error)
	SavePreference(pref *Preference) error
	DeletePreference(ownerEmail, key string) error
}

func (d *RegistrySvcDB) GetPreference(ownerEmail, key string) (*Preference, error) {
	pref := Preference{}
	err := d.db.Model(Preference{}).Where("owner_email = ? and pref_key = ?", ownerEmail, key).Take(&pref).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pref, nil
}

func (d *RegistrySvcDB) GetPreferences(ownerEmail string) ([]*Preference, error) {
	prefs := make([]*Preference, 0)
	if err := d.db.Where("owner_email = ?", ownerEmail).Order("pref_key asc").Find(&prefs).Error; err != nil {
		return prefs, err
	}
	return prefs, nil
}

func (d *RegistrySvcDB) SavePreference(pref *Preference) error {
	existing, err := d.GetPreference(pref.OwnerEmail, pref.Key)
	if err != nil {
		return err
	}
	if existing != nil {
		existing.Value = pref.Value
		return d.db.Save(existing).Error
	}
	return d.db.Create(pref).Error
}

func (d *RegistrySvcDB) DeletePreference(ownerEmail, key string) error {
	return d.db.Where("owner_email = ? and pref_key = ?", ownerEmail, key).Delete(&Preference{}).Error
}

type AccountDB interface {
	GetAccountByEmail(email string) (*Account, error)
	CreateAccount(account *Account) error
}

func (d *RegistrySvcDB) GetAccountByEmail(email string) (*Account, error) {
	account := Account{}
	err := d.db.Model(Account{}).Where("email = ?", email).Take(&account).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (d *RegistrySvcDB) CreateAccount(account *Account) error {
	return d.db.Create(account).Error
}

type FolderDB interface {
	GetFolder(id int64) (*Folder, error)
	GetFolderEntryIds(folderId int64, entryType string) ([]int64, error)
	CreateFolder(folder *Folder) error
	AddToFolder(folderId, entryId int64) error
}

func (d *RegistrySvcDB) GetFolder(id int64) (*Folder, error) {
	folder := Folder{}
	err := d.db.Model(Folder{}).Where("id = ?", id).Take(&folder).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &folder, nil
}

func (d *RegistrySvcDB) GetFolderEntryIds(folderId int64, entryType string) ([]int64, error) {
	ids := make([]int64, 0)
	tx := d.db.Model(FolderEntry{}).
		Joins("join entry on entry.id = folder_entry.entry_id").
		Where("folder_entry.folder_id = ?", folderId)
	if entryType != "" {
		tx = tx.Where("entry.type = ?", entryType)
	}
	if err := tx.Order("folder_entry.id asc").Pluck("folder_entry.entry_id", &ids).Error; err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *RegistrySvcDB) CreateFolder(folder *Folder) error {
	return d.db.Create(folder).Error
}

func (d *RegistrySvcDB) AddToFolder(folderId, entryId int64) error {
	return d.db.Create(&FolderEntry{FolderId: folderId, EntryId: entryId}).Error
}

type PermissionDB interface {
	HasPermission(entryId int64, accountEmail string, write bool) (bool, error)
	GetSharedEntryIds(accountEmail string) ([]int64, error)
	CreatePermission(permission *Permission) error
}

func (d *RegistrySvcDB) HasPermission(entryId int64, accountEmail string, write bool) (bool, error) {
	var count int64
	tx := d.db.Model(Permission{}).Where("entry_id = ? and account_email = ?", entryId, accountEmail)
	if write {
		tx = tx.Where("can_write = ?", true)
	}
	if err := tx.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (d *RegistrySvcDB) GetSharedEntryIds(accountEmail string) ([]int64, error) {
	ids := make([]int64, 0)
	err := d.db.Model(Permission{}).Where("account_email = ?", accountEmail).
		Order("entry_id asc").Pluck("entry_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (d *RegistrySvcDB) CreatePermission(permission *Permission) error {
	return d.db.Create(permission).Error
}

func InitTables(db *gorm.DB) {
	var err error
	if err = db.AutoMigrate(&Account{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&BulkUpload{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&Entry{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&Preference{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&Folder{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&FolderEntry{}); err != nil {
		panic(err)
	}
	if err = db.AutoMigrate(&Permission{}); err != nil {
		panic(err)
	}
}
