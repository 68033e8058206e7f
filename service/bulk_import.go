package service

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/bio-registry/part-hub/config"
	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/logging"
	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/types"
)

var BulkSvc BulkImport

type BulkImport interface {
	AutoUpdate(userID string, req *models.AutoUpdateRequest) (*models.AutoUpdateResponse, error)
	SubmitBulkImportDraft(userID string, bulkUploadId int64) (bool, error)
	ApproveBulkImport(userID string, bulkUploadId int64) (bool, error)
	RevertSubmitted(userID string, bulkUploadId int64) (bool, error)
	DeleteDraftById(userID string, bulkUploadId int64) (*models.BulkUploadInfo, error)
	RetrieveById(userID string, bulkUploadId int64, offset, limit int) (*models.BulkUploadInfo, error)
	RetrieveByUser(userID, targetEmail string) ([]*models.BulkUploadInfo, error)
	RetrievePendingImports(userID string) ([]*models.BulkUploadInfo, error)
	SetPreference(userID string, pref *models.PreferenceInfo) error
	CreateAccount(email string, admin bool) (*db.Account, error)
}

// BulkImportService drives the bulk upload state machine. Every method runs
// inside a single DAO transaction so batch transitions commit or roll back
// as one unit.
type BulkImportService struct {
	dao      db.RegistryDao
	resolver *FieldResolver
	policy   *TypePolicy
	auth     *Authorization
	config   *config.ServerConfig
}

func NewBulkImportService(dao db.RegistryDao, resolver *FieldResolver, policy *TypePolicy,
	auth *Authorization, cfg *config.ServerConfig) BulkImport {
	return &BulkImportService{
		dao:      dao,
		resolver: resolver,
		policy:   policy,
		auth:     auth,
		config:   cfg,
	}
}

// AutoUpdate is one incremental save of a spreadsheet row. It creates the
// container and the row's entry on first touch, then applies the supplied
// fields one by one; a field that fails validation is dropped while the
// rest of the update goes through. Required-field completeness is not
// checked here, drafts may stay incomplete indefinitely.
func (s *BulkImportService) AutoUpdate(userID string, req *models.AutoUpdateRequest) (*models.AutoUpdateResponse, error) {
	if req == nil || req.Row < 0 || req.BulkUploadId < 0 {
		return nil, ErrBadRequest
	}
	if !req.EntryType.Valid() {
		return nil, ErrBadRequest.Enrich("unknown entry type " + string(req.EntryType))
	}

	var resp *models.AutoUpdateResponse
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		resolver := s.resolver.withDao(tx)

		if _, err := auth.GetAccount(userID); err != nil {
			return err
		}

		now := time.Now().Unix()
		upload, err := s.loadOrCreateUpload(tx, auth, userID, req.BulkUploadId, now)
		if err != nil {
			return err
		}

		entry, err := tx.GetEntryByUploadAndRow(upload.Id, req.Row)
		if err != nil {
			return err
		}
		if entry == nil {
			entry = &db.Entry{
				RecordId:     uuid.NewString(),
				Type:         string(req.EntryType),
				OwnerEmail:   upload.OwnerEmail,
				Visibility:   db.Draft,
				BulkUploadId: upload.Id,
				RowIndex:     req.Row,
				CreatedTime:  now,
			}
			if err = tx.CreateEntry(entry); err != nil {
				return err
			}
			entry.PartNumber = types.GetPartNumber(s.config.PartNumberPrefix, entry.Id)
		} else if entry.Visibility != db.Draft {
			return ErrInvalidState.Enrich("entry is no longer a draft")
		}

		dropped := s.applyFields(resolver, userID, entry, req.Fields)
		if err = s.applyPreferenceDefaults(resolver, userID, entry); err != nil {
			return err
		}

		entry.ModificationTime = now
		if err = tx.UpdateEntry(entry); err != nil {
			if errors.Is(err, db.ErrStaleEntry) {
				return ErrConflict
			}
			return err
		}
		upload.LastUpdateTime = now
		if err = tx.UpdateUpload(upload); err != nil {
			return err
		}

		resp = &models.AutoUpdateResponse{
			EntryId:       entry.Id,
			BulkUploadId:  upload.Id,
			LastUpdate:    now,
			DroppedFields: dropped,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (s *BulkImportService) loadOrCreateUpload(tx db.RegistryDao, auth *Authorization,
	userID string, bulkUploadId, now int64) (*db.BulkUpload, error) {
	if bulkUploadId == 0 {
		upload := &db.BulkUpload{
			OwnerEmail:     userID,
			Status:         db.InProgress,
			CreatedTime:    now,
			LastUpdateTime: now,
		}
		if err := tx.CreateUpload(upload); err != nil {
			return nil, err
		}
		return upload, nil
	}

	upload, err := tx.GetUpload(bulkUploadId)
	if err != nil {
		return nil, err
	}
	if upload == nil {
		return nil, ErrNotFound.Enrich("no such bulk upload")
	}
	ok, err := auth.CanWriteUpload(userID, upload)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized.Enrich("bulk upload belongs to another account")
	}
	return upload, nil
}

func (s *BulkImportService) applyFields(resolver *FieldResolver, userID string,
	entry *db.Entry, fields map[types.EntryField]string) []types.EntryField {
	keys := make([]types.EntryField, 0, len(fields))
	for field := range fields {
		keys = append(keys, field)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var dropped []types.EntryField
	for _, field := range keys {
		value, err := resolver.Resolve(userID, field, fields[field])
		if err != nil {
			logging.Logger.Warningf("dropping field %s of entry %d: %s", field, entry.Id, err.Error())
			dropped = append(dropped, field)
			continue
		}
		applyField(entry, field, value)
	}
	return dropped
}

// applyPreferenceDefaults fills fields the row never set from the account's
// saved preferences, so a STATUS preference of "Complete" both satisfies
// submission and lands on the entry.
func (s *BulkImportService) applyPreferenceDefaults(resolver *FieldResolver, userID string, entry *db.Entry) error {
	defaults, err := resolver.Defaults(userID)
	if err != nil {
		return err
	}
	for field := range defaults {
		if fieldSet(entry, field) {
			continue
		}
		value, err := resolver.Resolve(userID, field, "")
		if err != nil {
			logging.Logger.Warningf("skipping preference %s for entry %d: %s", field, entry.Id, err.Error())
			continue
		}
		applyField(entry, field, value)
	}
	return nil
}

// SubmitBulkImportDraft advances every contained entry DRAFT to PENDING and
// the container to SUBMITTED, or does nothing at all: one incomplete row
// rejects the whole batch with a false return.
func (s *BulkImportService) SubmitBulkImportDraft(userID string, bulkUploadId int64) (bool, error) {
	submitted := false
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		upload, err := tx.GetUpload(bulkUploadId)
		if err != nil {
			return err
		}
		if upload == nil {
			return ErrNotFound.Enrich("no such bulk upload")
		}
		ok, err := auth.CanWriteUpload(userID, upload)
		if err != nil {
			return err
		}
		if !ok {
			return ErrUnauthorized.Enrich("bulk upload belongs to another account")
		}
		if upload.Status == db.Submitted {
			return nil
		}

		entries, err := tx.GetEntriesByUpload(bulkUploadId, 0, 0)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			return nil
		}
		for _, entry := range entries {
			if entry.Visibility == db.Draft && !s.policy.IsComplete(entry) {
				logging.Logger.Infof("bulk upload %d rejected, row %d of type %s is incomplete",
					bulkUploadId, entry.RowIndex, entry.Type)
				return nil
			}
		}

		if err = tx.UpdateEntriesVisibility(bulkUploadId, db.Draft, db.Pending); err != nil {
			return err
		}
		if err = tx.UpdateUploadStatus(bulkUploadId, db.Submitted); err != nil {
			return err
		}
		submitted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return submitted, nil
}

// ApproveBulkImport makes every pending entry public and discards the
// container; the entries stand alone afterwards.
func (s *BulkImportService) ApproveBulkImport(userID string, bulkUploadId int64) (bool, error) {
	approved := false
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		admin, err := auth.IsAdmin(userID)
		if err != nil {
			return err
		}
		if !admin {
			return ErrUnauthorized.Enrich("approval requires an administrator")
		}
		upload, err := tx.GetUpload(bulkUploadId)
		if err != nil {
			return err
		}
		if upload == nil {
			return ErrNotFound.Enrich("no such bulk upload")
		}
		if upload.Status != db.Submitted {
			return nil
		}

		if err = tx.UpdateEntriesVisibility(bulkUploadId, db.Pending, db.OK); err != nil {
			return err
		}
		if err = tx.DetachEntries(bulkUploadId); err != nil {
			return err
		}
		if err = tx.DeleteUpload(bulkUploadId); err != nil {
			return err
		}
		approved = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return approved, nil
}

// RevertSubmitted returns a submitted batch to its owner for more edits.
// A container that was never submitted is left untouched.
func (s *BulkImportService) RevertSubmitted(userID string, bulkUploadId int64) (bool, error) {
	reverted := false
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		admin, err := auth.IsAdmin(userID)
		if err != nil {
			return err
		}
		if !admin {
			return ErrUnauthorized.Enrich("revert requires an administrator")
		}
		upload, err := tx.GetUpload(bulkUploadId)
		if err != nil {
			return err
		}
		if upload == nil {
			return ErrNotFound.Enrich("no such bulk upload")
		}
		if upload.Status != db.Submitted {
			return nil
		}

		if err = tx.UpdateEntriesVisibility(bulkUploadId, db.Pending, db.Draft); err != nil {
			return err
		}
		if err = tx.UpdateUploadStatus(bulkUploadId, db.InProgress); err != nil {
			return err
		}
		reverted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return reverted, nil
}

// DeleteDraftById cascades only while every contained entry is still a
// draft; any row that progressed past DRAFT blocks the whole deletion.
func (s *BulkImportService) DeleteDraftById(userID string, bulkUploadId int64) (*models.BulkUploadInfo, error) {
	var info *models.BulkUploadInfo
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		upload, err := tx.GetUpload(bulkUploadId)
		if err != nil {
			return err
		}
		visible := upload != nil
		if visible && upload.OwnerEmail != userID {
			visible, err = auth.IsAdmin(userID)
			if err != nil {
				return err
			}
		}
		if !visible {
			return ErrNotFound.Enrich("no such bulk upload")
		}

		entries, err := tx.GetEntriesByUpload(bulkUploadId, 0, 0)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if entry.Visibility != db.Draft {
				return ErrInvalidState.Enrich("bulk upload has submitted entries")
			}
		}

		info = uploadToInfo(upload, int64(len(entries)))
		for _, entry := range entries {
			info.Entries = append(info.Entries, entryToPartData(entry))
		}

		if err = tx.DeleteEntriesByUpload(bulkUploadId); err != nil {
			return err
		}
		return tx.DeleteUpload(bulkUploadId)
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// RetrieveById returns container metadata plus a page of its entries in row
// order. Limit zero means metadata and count only. Containers the caller
// may not see read as not found.
func (s *BulkImportService) RetrieveById(userID string, bulkUploadId int64, offset, limit int) (*models.BulkUploadInfo, error) {
	if offset < 0 || limit < 0 {
		return nil, ErrBadRequest
	}
	var info *models.BulkUploadInfo
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		upload, err := tx.GetUpload(bulkUploadId)
		if err != nil {
			return err
		}
		if upload == nil {
			return nil
		}
		if upload.OwnerEmail != userID {
			admin, err := auth.IsAdmin(userID)
			if err != nil {
				return err
			}
			if !admin {
				return nil
			}
		}

		count, err := tx.CountEntriesByUpload(bulkUploadId)
		if err != nil {
			return err
		}
		info = uploadToInfo(upload, count)
		if limit == 0 {
			return nil
		}
		entries, err := tx.GetEntriesByUpload(bulkUploadId, offset, limit)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			info.Entries = append(info.Entries, entryToPartData(entry))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return info, nil
}

// RetrieveByUser lists the containers a target account owns; only that
// account and admins may ask.
func (s *BulkImportService) RetrieveByUser(userID, targetEmail string) ([]*models.BulkUploadInfo, error) {
	var infos []*models.BulkUploadInfo
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		if userID != targetEmail {
			admin, err := auth.IsAdmin(userID)
			if err != nil {
				return err
			}
			if !admin {
				return ErrUnauthorized.Enrich("cannot list another account's uploads")
			}
		}
		uploads, err := tx.GetUploadsByOwner(targetEmail)
		if err != nil {
			return err
		}
		infos = make([]*models.BulkUploadInfo, 0, len(uploads))
		for _, upload := range uploads {
			count, err := tx.CountEntriesByUpload(upload.Id)
			if err != nil {
				return err
			}
			infos = append(infos, uploadToInfo(upload, count))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}

// RetrievePendingImports is the reviewer queue: every submitted container
// across all accounts.
func (s *BulkImportService) RetrievePendingImports(userID string) ([]*models.BulkUploadInfo, error) {
	var infos []*models.BulkUploadInfo
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		admin, err := auth.IsAdmin(userID)
		if err != nil {
			return err
		}
		if !admin {
			return ErrUnauthorized.Enrich("reviewer queue requires an administrator")
		}
		uploads, err := tx.GetUploadsByStatus(db.Submitted)
		if err != nil {
			return err
		}
		infos = make([]*models.BulkUploadInfo, 0, len(uploads))
		for _, upload := range uploads {
			count, err := tx.CountEntriesByUpload(upload.Id)
			if err != nil {
				return err
			}
			infos = append(infos, uploadToInfo(upload, count))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return infos, nil
}
