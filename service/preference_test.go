package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/types"
)

func TestSetPreferenceValidation(t *testing.T) {
	_, svc := newTestService(t)

	err := svc.SetPreference(testUser, &models.PreferenceInfo{Key: "melting_point", Value: "42", Add: true})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.SetPreference(testUser, &models.PreferenceInfo{
		Key: string(types.FieldBioSafetyLevel), Value: "9", Add: true,
	})
	require.ErrorIs(t, err, ErrValidation)

	err = svc.SetPreference(testUser, &models.PreferenceInfo{
		Key: string(types.FieldBioSafetyLevel), Value: "2", Add: true,
	})
	require.NoError(t, err)

	// status accepts vocabulary outside the standard options
	err = svc.SetPreference(testUser, &models.PreferenceInfo{
		Key: string(types.FieldStatus), Value: "Archived", Add: true,
	})
	require.NoError(t, err)

	err = svc.SetPreference("nobody@test.org", &models.PreferenceInfo{
		Key: string(types.FieldPI), Value: "x", Add: true,
	})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestSetPreferenceRemoval(t *testing.T) {
	dao, svc := newTestService(t)

	require.NoError(t, svc.SetPreference(testUser, &models.PreferenceInfo{
		Key: string(types.FieldPI), Value: "N. Hillson", Add: true,
	}))
	require.NoError(t, svc.SetPreference(testUser, &models.PreferenceInfo{
		Key: string(types.FieldPI), Add: false,
	}))

	pref, err := dao.GetPreference(testUser, string(types.FieldPI))
	require.NoError(t, err)
	require.Nil(t, pref)
}

func TestCreateAccount(t *testing.T) {
	_, svc := newTestService(t)

	account, err := svc.CreateAccount("New.Scientist@Test.org", false)
	require.NoError(t, err)
	require.Equal(t, "new.scientist@test.org", account.Email)
	require.Equal(t, db.AccountNormal, account.Type)

	// repeated registration returns the existing account unchanged
	again, err := svc.CreateAccount("new.scientist@test.org", true)
	require.NoError(t, err)
	require.Equal(t, account.Id, again.Id)
	require.Equal(t, db.AccountNormal, again.Type)

	_, err = svc.CreateAccount("not-an-email", false)
	require.ErrorIs(t, err, ErrBadRequest)
}
