package service

import (
	"strings"
	"time"

	"github.com/bio-registry/part-hub/db"
	"github.com/bio-registry/part-hub/types"
	"github.com/bio-registry/part-hub/util"
)

// FieldResolver turns the raw strings of an auto-update payload into typed
// field values. Account preferences are consulted first: a preference value
// acts as an accepted alias for its field and as the fallback applied when
// the field arrives unset.
type FieldResolver struct {
	dao db.RegistryDao
}

func NewFieldResolver(dao db.RegistryDao) *FieldResolver {
	return &FieldResolver{dao: dao}
}

func (r *FieldResolver) withDao(dao db.RegistryDao) *FieldResolver {
	return &FieldResolver{dao: dao}
}

func (r *FieldResolver) Resolve(account string, field types.EntryField, raw string) (types.FieldValue, error) {
	kind, ok := field.Kind()
	if !ok {
		return types.FieldValue{}, ErrValidation.Enrich("unrecognized field " + string(field))
	}

	raw = strings.TrimSpace(raw)
	pref, err := r.dao.GetPreference(account, string(field))
	if err != nil {
		return types.FieldValue{}, err
	}
	if pref != nil && (raw == "" || strings.EqualFold(raw, pref.Value)) {
		raw = pref.Value
	}

	switch kind {
	case types.KindNumber:
		return r.resolveNumber(field, raw)
	case types.KindMultiText:
		return types.ListValue(util.SplitByComma(raw)), nil
	case types.KindFlag:
		return r.resolveFlag(field, raw)
	default:
		return r.resolveText(field, raw, pref != nil)
	}
}

func (r *FieldResolver) resolveNumber(field types.EntryField, raw string) (types.FieldValue, error) {
	if raw == "" {
		return types.NumberValue(0), nil
	}
	// biosafety levels also arrive spelled out, e.g. "Level 2"
	if field == types.FieldBioSafetyLevel {
		lowered := strings.ToLower(raw)
		lowered = strings.TrimSpace(strings.TrimPrefix(lowered, "level"))
		n, err := util.StringToInt64(lowered)
		if err != nil || n < 1 || n > 4 {
			return types.FieldValue{}, ErrValidation.Enrich("invalid biosafety level " + raw)
		}
		return types.NumberValue(int(n)), nil
	}
	n, err := util.StringToInt64(raw)
	if err != nil {
		return types.FieldValue{}, ErrValidation.Enrich("expected number for " + string(field))
	}
	return types.NumberValue(int(n)), nil
}

func (r *FieldResolver) resolveFlag(field types.EntryField, raw string) (types.FieldValue, error) {
	switch strings.ToLower(raw) {
	case "", "false", "no", "linear":
		return types.FlagValue(false), nil
	case "true", "yes", "circular":
		return types.FlagValue(true), nil
	}
	return types.FieldValue{}, ErrValidation.Enrich("invalid value " + raw + " for " + string(field))
}

func (r *FieldResolver) resolveText(field types.EntryField, raw string, hasPreference bool) (types.FieldValue, error) {
	switch field {
	case types.FieldStatus:
		if raw == "" {
			return types.TextValue(""), nil
		}
		for _, option := range types.StatusOptions {
			if strings.EqualFold(option, raw) {
				return types.TextValue(option), nil
			}
		}
		// an account preference widens the accepted status vocabulary
		if hasPreference {
			return types.TextValue(raw), nil
		}
		return types.FieldValue{}, ErrValidation.Enrich("unknown status " + raw)

	case types.FieldHarvestDate:
		if raw == "" {
			return types.TextValue(""), nil
		}
		if _, err := time.Parse("2006-01-02", raw); err != nil {
			return types.FieldValue{}, ErrValidation.Enrich("harvest date must be YYYY-MM-DD")
		}
		return types.TextValue(raw), nil
	}
	return types.TextValue(raw), nil
}

// Defaults returns the preference fallbacks to apply to fields an
// auto-update left unset, keyed by field.
func (r *FieldResolver) Defaults(account string) (map[types.EntryField]string, error) {
	prefs, err := r.dao.GetPreferences(account)
	if err != nil {
		return nil, err
	}
	defaults := make(map[types.EntryField]string, len(prefs))
	for _, pref := range prefs {
		field := types.EntryField(pref.Key)
		if _, ok := field.Kind(); ok {
			defaults[field] = pref.Value
		}
	}
	return defaults, nil
}
