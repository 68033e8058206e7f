package service

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bio-registry/part-hub/config"
	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/types"
)

const (
	testUser  = "researcher@test.org"
	testAdmin = "curator@test.org"
	testOther = "visitor@test.org"
)

func newTestDao(t *testing.T) db.RegistryDao {
	database, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "registry.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	db.InitTables(database)
	return db.NewRegistrySvcDB(database)
}

func newTestService(t *testing.T) (db.RegistryDao, BulkImport) {
	dao := newTestDao(t)
	require.NoError(t, dao.CreateAccount(&db.Account{Email: testUser, Type: db.AccountNormal, CreatedTime: 1}))
	require.NoError(t, dao.CreateAccount(&db.Account{Email: testAdmin, Type: db.AccountAdmin, CreatedTime: 1}))
	require.NoError(t, dao.CreateAccount(&db.Account{Email: testOther, Type: db.AccountNormal, CreatedTime: 1}))

	auth := NewAuthorization(dao)
	svc := NewBulkImportService(dao, NewFieldResolver(dao), NewTypePolicy(), auth, &config.ServerConfig{
		Host:             "127.0.0.1",
		Port:             8080,
		PartNumberPrefix: "TEST",
	})
	return dao, svc
}

// completeStrainFields satisfies the strain submission requirements.
func completeStrainFields() map[types.EntryField]string {
	return map[types.EntryField]string{
		types.FieldName:             "JBx_042",
		types.FieldSummary:          "E. coli production host",
		types.FieldPI:               "N. Hillson",
		types.FieldStatus:           "Complete",
		types.FieldBioSafetyLevel:   "1",
		types.FieldSelectionMarkers: "kanamycin",
	}
}

func createDraftRow(t *testing.T, svc BulkImport, user string, uploadId int64, row int,
	entryType types.EntryType, fields map[types.EntryField]string) *models.AutoUpdateResponse {
	resp, err := svc.AutoUpdate(user, &models.AutoUpdateRequest{
		BulkUploadId: uploadId,
		Row:          row,
		EntryType:    entryType,
		Fields:       fields,
	})
	require.NoError(t, err)
	require.NotNil(t, resp)
	return resp
}
