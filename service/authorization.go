package service

import (
	"github.com/bio-registry/part-hub/db"
)

// Authorization answers the capability questions every mutating and reading
// operation asks: admin override, ownership, explicit permissions, and
// public visibility.
type Authorization struct {
	dao db.RegistryDao
}

func NewAuthorization(dao db.RegistryDao) *Authorization {
	return &Authorization{dao: dao}
}

func (a *Authorization) withDao(dao db.RegistryDao) *Authorization {
	return &Authorization{dao: dao}
}

func (a *Authorization) GetAccount(email string) (*db.Account, error) {
	account, err := a.dao.GetAccountByEmail(email)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrUnauthorized.Enrich("unknown account " + email)
	}
	return account, nil
}

func (a *Authorization) IsAdmin(email string) (bool, error) {
	account, err := a.dao.GetAccountByEmail(email)
	if err != nil {
		return false, err
	}
	return account != nil && account.Type == db.AccountAdmin, nil
}

func (a *Authorization) CanRead(email string, entry *db.Entry) (bool, error) {
	if entry.OwnerEmail == email {
		return true, nil
	}
	if entry.Visibility == db.OK {
		return true, nil
	}
	admin, err := a.IsAdmin(email)
	if err != nil {
		return false, err
	}
	if admin {
		return true, nil
	}
	return a.dao.HasPermission(entry.Id, email, false)
}

func (a *Authorization) CanWrite(email string, entry *db.Entry) (bool, error) {
	if entry.OwnerEmail == email {
		return true, nil
	}
	admin, err := a.IsAdmin(email)
	if err != nil {
		return false, err
	}
	if admin {
		return true, nil
	}
	return a.dao.HasPermission(entry.Id, email, true)
}

// CanWriteUpload covers the container itself; only the owner and admins may
// touch a bulk upload.
func (a *Authorization) CanWriteUpload(email string, upload *db.BulkUpload) (bool, error) {
	if upload.OwnerEmail == email {
		return true, nil
	}
	return a.IsAdmin(email)
}

func (a *Authorization) CanReadFolder(email string, folder *db.Folder) (bool, error) {
	if folder.PublicAccess || folder.OwnerEmail == email {
		return true, nil
	}
	return a.IsAdmin(email)
}
