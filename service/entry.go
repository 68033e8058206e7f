package service

import (
	"github.com/bio-registry/part-hub/cache"
	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/types"
	"github.com/bio-registry/part-hub/util"
)

var EntrySvc Entry

type Entry interface {
	Get(userID string, id int64) (*models.PartData, error)
	GetByIdentifier(userID, identifier string) (*models.PartData, error)
	GetEntriesFromSelection(userID string, selection *types.EntrySelection) ([]int64, error)
}

// EntryService reads individual entries and resolves entry selections.
// Publicly visible entries are served from a local cache since their
// visibility is terminal.
type EntryService struct {
	dao   db.RegistryDao
	auth  *Authorization
	cache cache.Cache
}

func NewEntryService(dao db.RegistryDao, auth *Authorization, c cache.Cache) Entry {
	return &EntryService{
		dao:   dao,
		auth:  auth,
		cache: c,
	}
}

func (s *EntryService) Get(userID string, id int64) (*models.PartData, error) {
	if cached, ok := s.cache.Get(util.Int64ToString(id)); ok {
		return cached.(*models.PartData), nil
	}
	entry, err := s.dao.GetEntry(id)
	if err != nil {
		return nil, err
	}
	return s.checkAndConvert(userID, entry)
}

// GetByIdentifier resolves a user supplied identifier against the database
// id, then the part number, then the record id, in that order.
func (s *EntryService) GetByIdentifier(userID, identifier string) (*models.PartData, error) {
	if id, err := util.StringToInt64(identifier); err == nil {
		entry, err := s.dao.GetEntry(id)
		if err != nil {
			return nil, err
		}
		if entry != nil {
			return s.checkAndConvert(userID, entry)
		}
	}
	entry, err := s.dao.GetEntryByPartNumber(identifier)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		entry, err = s.dao.GetEntryByRecordId(identifier)
		if err != nil {
			return nil, err
		}
	}
	return s.checkAndConvert(userID, entry)
}

func (s *EntryService) checkAndConvert(userID string, entry *db.Entry) (*models.PartData, error) {
	if entry == nil {
		return nil, nil
	}
	ok, err := s.auth.CanRead(userID, entry)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized.Enrich("entry is not visible to this account")
	}
	data := entryToPartData(entry)
	if entry.Visibility == db.OK {
		s.cache.Set(util.Int64ToString(entry.Id), data)
	}
	return data, nil
}

// GetEntriesFromSelection expands a selection into entry ids. An explicit
// id list always wins; otherwise the folder or named collection is
// consulted.
func (s *EntryService) GetEntriesFromSelection(userID string, selection *types.EntrySelection) ([]int64, error) {
	if selection == nil {
		return nil, ErrBadRequest
	}
	if !selection.All && len(selection.Entries) > 0 {
		return selection.Entries, nil
	}

	switch selection.Selection {
	case types.SelectionFolder:
		return s.folderEntryIds(userID, selection)
	case types.SelectionCollection:
		return s.collectionEntryIds(userID, selection)
	}
	return nil, ErrBadRequest.Enrich("unknown selection " + string(selection.Selection))
}

func (s *EntryService) folderEntryIds(userID string, selection *types.EntrySelection) ([]int64, error) {
	folder, err := s.dao.GetFolder(selection.FolderId)
	if err != nil {
		return nil, err
	}
	if folder == nil {
		return nil, ErrNotFound.Enrich("no such folder")
	}
	ok, err := s.auth.CanReadFolder(userID, folder)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUnauthorized.Enrich("folder is not visible to this account")
	}
	return s.dao.GetFolderEntryIds(folder.Id, string(selection.EntryType))
}

func (s *EntryService) collectionEntryIds(userID string, selection *types.EntrySelection) ([]int64, error) {
	switch selection.Collection {
	case types.CollectionPersonal:
		return s.dao.GetOwnerEntryIds(userID, string(selection.EntryType))
	case types.CollectionShared:
		return s.dao.GetSharedEntryIds(userID)
	case types.CollectionAvailable:
		admin, err := s.auth.IsAdmin(userID)
		if err != nil {
			return nil, err
		}
		visibilities := []db.Visibility{db.OK}
		if admin {
			visibilities = append(visibilities, db.Pending)
		}
		return s.dao.GetVisibleEntryIds(visibilities)
	}
	return nil, ErrBadRequest.Enrich("unknown collection " + selection.Collection)
}
