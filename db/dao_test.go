package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDao(t *testing.T) RegistryDao {
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "registry.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	InitTables(database)
	return NewRegistrySvcDB(database)
}

func TestEntryLookups(t *testing.T) {
	dao := newTestDao(t)

	entry := &Entry{
		RecordId:     "9f7a8c1e-1111-2222-3333-444455556666",
		Type:         "plasmid",
		OwnerEmail:   "owner@test.org",
		Visibility:   Draft,
		BulkUploadId: 7,
		RowIndex:     3,
		CreatedTime:  100,
	}
	require.NoError(t, dao.CreateEntry(entry))
	require.NotZero(t, entry.Id)

	entry.PartNumber = "TEST-000001"
	require.NoError(t, dao.UpdateEntry(entry))

	byId, err := dao.GetEntry(entry.Id)
	require.NoError(t, err)
	require.Equal(t, entry.RecordId, byId.RecordId)

	byPart, err := dao.GetEntryByPartNumber("TEST-000001")
	require.NoError(t, err)
	require.Equal(t, entry.Id, byPart.Id)

	byRecord, err := dao.GetEntryByRecordId(entry.RecordId)
	require.NoError(t, err)
	require.Equal(t, entry.Id, byRecord.Id)

	byRow, err := dao.GetEntryByUploadAndRow(7, 3)
	require.NoError(t, err)
	require.Equal(t, entry.Id, byRow.Id)

	missing, err := dao.GetEntry(99999)
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestUpdateEntryStaleVersion(t *testing.T) {
	dao := newTestDao(t)

	entry := &Entry{RecordId: "r-1", Type: "part", OwnerEmail: "a@test.org", CreatedTime: 1}
	require.NoError(t, dao.CreateEntry(entry))

	first, err := dao.GetEntry(entry.Id)
	require.NoError(t, err)
	second, err := dao.GetEntry(entry.Id)
	require.NoError(t, err)

	first.Name = "pBbA1"
	require.NoError(t, dao.UpdateEntry(first))

	second.Name = "pBbB2"
	err = dao.UpdateEntry(second)
	require.ErrorIs(t, err, ErrStaleEntry)
	// version restored so the caller can reload and retry
	require.Equal(t, int64(0), second.Version)

	stored, err := dao.GetEntry(entry.Id)
	require.NoError(t, err)
	require.Equal(t, "pBbA1", stored.Name)
	require.Equal(t, int64(1), stored.Version)
}

func TestBatchVisibilityTransitions(t *testing.T) {
	dao := newTestDao(t)

	for i := 0; i < 3; i++ {
		require.NoError(t, dao.CreateEntry(&Entry{
			RecordId: "batch-" + string(rune('a'+i)), Type: "strain",
			OwnerEmail: "a@test.org", Visibility: Draft,
			BulkUploadId: 1, RowIndex: i, CreatedTime: 1,
		}))
	}
	require.NoError(t, dao.CreateEntry(&Entry{
		RecordId: "outside", Type: "strain", OwnerEmail: "a@test.org",
		Visibility: Draft, BulkUploadId: 2, CreatedTime: 1,
	}))

	require.NoError(t, dao.UpdateEntriesVisibility(1, Draft, Pending))

	pending, err := dao.CountEntriesByVisibility(Pending)
	require.NoError(t, err)
	require.Equal(t, int64(3), pending)
	drafts, err := dao.CountEntriesByVisibility(Draft)
	require.NoError(t, err)
	require.Equal(t, int64(1), drafts)

	require.NoError(t, dao.UpdateEntriesVisibility(1, Pending, OK))
	require.NoError(t, dao.DetachEntries(1))

	count, err := dao.CountEntriesByUpload(1)
	require.NoError(t, err)
	require.Zero(t, count)

	ids, err := dao.GetVisibleEntryIds([]Visibility{OK})
	require.NoError(t, err)
	require.Len(t, ids, 3)

	require.NoError(t, dao.DeleteEntriesByUpload(2))
	drafts, err = dao.CountEntriesByVisibility(Draft)
	require.NoError(t, err)
	require.Zero(t, drafts)
}

func TestEntriesByUploadPaging(t *testing.T) {
	dao := newTestDao(t)

	for i := 4; i >= 0; i-- {
		require.NoError(t, dao.CreateEntry(&Entry{
			RecordId: "row-" + string(rune('a'+i)), Type: "part",
			OwnerEmail: "a@test.org", BulkUploadId: 5, RowIndex: i, CreatedTime: 1,
		}))
	}

	page, err := dao.GetEntriesByUpload(5, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	require.Equal(t, 1, page[0].RowIndex)
	require.Equal(t, 2, page[1].RowIndex)

	// limit zero means no limit
	all, err := dao.GetEntriesByUpload(5, 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 5)
	require.Equal(t, 0, all[0].RowIndex)
}

func TestUploadLifecycle(t *testing.T) {
	dao := newTestDao(t)

	upload := &BulkUpload{OwnerEmail: "a@test.org", Status: InProgress, CreatedTime: 1, LastUpdateTime: 1}
	require.NoError(t, dao.CreateUpload(upload))
	require.NotZero(t, upload.Id)

	require.NoError(t, dao.UpdateUploadStatus(upload.Id, Submitted))

	stored, err := dao.GetUpload(upload.Id)
	require.NoError(t, err)
	require.Equal(t, Submitted, stored.Status)

	submitted, err := dao.GetUploadsByStatus(Submitted)
	require.NoError(t, err)
	require.Len(t, submitted, 1)

	count, err := dao.CountUploadsByStatus(Submitted)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	byOwner, err := dao.GetUploadsByOwner("a@test.org")
	require.NoError(t, err)
	require.Len(t, byOwner, 1)

	require.NoError(t, dao.DeleteUpload(upload.Id))
	gone, err := dao.GetUpload(upload.Id)
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestPreferenceUpsert(t *testing.T) {
	dao := newTestDao(t)

	require.NoError(t, dao.SavePreference(&Preference{OwnerEmail: "a@test.org", Key: "status", Value: "Complete"}))
	require.NoError(t, dao.SavePreference(&Preference{OwnerEmail: "a@test.org", Key: "status", Value: "Planned"}))
	require.NoError(t, dao.SavePreference(&Preference{OwnerEmail: "a@test.org", Key: "biosafety_level", Value: "1"}))

	pref, err := dao.GetPreference("a@test.org", "status")
	require.NoError(t, err)
	require.Equal(t, "Planned", pref.Value)

	prefs, err := dao.GetPreferences("a@test.org")
	require.NoError(t, err)
	require.Len(t, prefs, 2)

	require.NoError(t, dao.DeletePreference("a@test.org", "status"))
	pref, err = dao.GetPreference("a@test.org", "status")
	require.NoError(t, err)
	require.Nil(t, pref)
}

func TestFolderAndPermissionQueries(t *testing.T) {
	dao := newTestDao(t)

	plasmid := &Entry{RecordId: "p-1", Type: "plasmid", OwnerEmail: "a@test.org", CreatedTime: 1}
	strain := &Entry{RecordId: "s-1", Type: "strain", OwnerEmail: "a@test.org", CreatedTime: 1}
	require.NoError(t, dao.CreateEntry(plasmid))
	require.NoError(t, dao.CreateEntry(strain))

	folder := &Folder{OwnerEmail: "a@test.org", Name: "constructs"}
	require.NoError(t, dao.CreateFolder(folder))
	require.NoError(t, dao.AddToFolder(folder.Id, plasmid.Id))
	require.NoError(t, dao.AddToFolder(folder.Id, strain.Id))

	ids, err := dao.GetFolderEntryIds(folder.Id, "")
	require.NoError(t, err)
	require.Len(t, ids, 2)

	ids, err = dao.GetFolderEntryIds(folder.Id, "plasmid")
	require.NoError(t, err)
	require.Equal(t, []int64{plasmid.Id}, ids)

	require.NoError(t, dao.CreatePermission(&Permission{EntryId: plasmid.Id, AccountEmail: "b@test.org"}))

	canRead, err := dao.HasPermission(plasmid.Id, "b@test.org", false)
	require.NoError(t, err)
	require.True(t, canRead)

	canWrite, err := dao.HasPermission(plasmid.Id, "b@test.org", true)
	require.NoError(t, err)
	require.False(t, canWrite)

	shared, err := dao.GetSharedEntryIds("b@test.org")
	require.NoError(t, err)
	require.Equal(t, []int64{plasmid.Id}, shared)
}

func TestTransactionRollback(t *testing.T) {
	dao := newTestDao(t)

	err := dao.Transaction(func(tx RegistryDao) error {
		if err := tx.CreateEntry(&Entry{RecordId: "tx-1", Type: "part", OwnerEmail: "a@test.org", CreatedTime: 1}); err != nil {
			return err
		}
		return ErrStaleEntry
	})
	require.Error(t, err)

	entry, err := dao.GetEntryByRecordId("tx-1")
	require.NoError(t, err)
	require.Nil(t, entry)
}
