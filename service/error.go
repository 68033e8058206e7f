package service

import (
	"fmt"

	"github.com/bio-registry/part-hub/models"
)

// Verify Interface Compliance
var _ error = (*Err)(nil)

// Err defines service errors.
type Err struct {
	Code    int64  `json:"code"`
	Message string `json:"error"`
}

var (
	NoErr           = Err{0, "success"}
	ErrBadRequest   = Err{400, "bad request"}
	ErrUnauthorized = Err{403, "permission denied"}
	ErrNotFound     = Err{404, "not found"}
	ErrInvalidState = Err{409, "invalid state for requested transition"}
	ErrConflict     = Err{412, "stale write, reload and retry"}
	ErrValidation   = Err{422, "field validation failed"}
	InternalErr     = Err{500, "internal error"}
)

func (e Err) Enrich(message string) Err {
	return Err{
		Code:    e.Code,
		Message: fmt.Sprintf("%s: %s", e.Message, message),
	}
}

func (e Err) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}

// Is lets errors.Is match enriched errors against their base code.
func (e Err) Is(target error) bool {
	t, ok := target.(Err)
	return ok && t.Code == e.Code
}

func InternalErrorWithError(err error) *models.Error {
	return &models.Error{
		Code:    500,
		Message: err.Error(),
	}
}

func BadRequestWithError(err error) *models.Error {
	return &models.Error{
		Code:    400,
		Message: err.Error(),
	}
}
