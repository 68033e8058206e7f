package service

import (
	"strings"
	"time"

	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/types"
)

// SetPreference registers or removes a saved field default for the account.
// The key must name a known entry field; values are validated the same way
// an auto-update would validate them, except STATUS, where a preference is
// allowed to extend the vocabulary.
func (s *BulkImportService) SetPreference(userID string, pref *models.PreferenceInfo) error {
	if pref == nil || pref.Key == "" {
		return ErrBadRequest
	}
	field := types.EntryField(strings.ToLower(strings.TrimSpace(pref.Key)))
	if _, ok := field.Kind(); !ok {
		return ErrValidation.Enrich("unrecognized preference key " + pref.Key)
	}

	return s.dao.Transaction(func(tx db.RegistryDao) error {
		auth := s.auth.withDao(tx)
		if _, err := auth.GetAccount(userID); err != nil {
			return err
		}

		if !pref.Add {
			return tx.DeletePreference(userID, string(field))
		}

		value := strings.TrimSpace(pref.Value)
		if value == "" {
			return ErrValidation.Enrich("preference value must not be empty")
		}
		// status preferences may introduce new vocabulary, everything else
		// must already resolve
		if field != types.FieldStatus {
			resolver := s.resolver.withDao(tx)
			if _, err := resolver.Resolve(userID, field, value); err != nil {
				return err
			}
		}

		return tx.SavePreference(&db.Preference{
			OwnerEmail: userID,
			Key:        string(field),
			Value:      value,
		})
	})
}

// CreateAccount registers an account if the email is unknown; an existing
// account is returned as is, its admin flag untouched.
func (s *BulkImportService) CreateAccount(email string, admin bool) (*db.Account, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrBadRequest.Enrich("invalid email")
	}

	var account *db.Account
	err := s.dao.Transaction(func(tx db.RegistryDao) error {
		existing, err := tx.GetAccountByEmail(email)
		if err != nil {
			return err
		}
		if existing != nil {
			account = existing
			return nil
		}
		account = &db.Account{Email: email, Type: db.AccountNormal, CreatedTime: time.Now().Unix()}
		if admin {
			account.Type = db.AccountAdmin
		}
		if err := tx.CreateAccount(account); err != nil {
			// lost a registration race, the row is there now
			if db.MysqlErrCode(err) == db.ErrDuplicateEntryCode {
				account, err = tx.GetAccountByEmail(email)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return account, nil
}
