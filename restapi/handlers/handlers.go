package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/bio-registry/part-hub/service"
)

// HeaderRegistryUser carries the authenticated account email. The gateway in
// front of the service is expected to have verified it.
const HeaderRegistryUser = "X-Registry-User"

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	body       []byte
	header     http.Header
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK, []byte{}, http.Header{}}
}

func (rw *responseWriter) Write(body []byte) (int, error) {
	rw.body = body
	return rw.ResponseWriter.Write(body)
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.header = rw.ResponseWriter.Header()
	rw.ResponseWriter.WriteHeader(code)
}

func Error(err error) (int64, string) {
	switch e := err.(type) {
	case service.Err:
		return e.Code, e.Message
	case nil:
		return service.NoErr.Code, service.NoErr.Message
	default:
		return service.InternalErr.Code, err.Error()
	}
}

type response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func httpStatus(code int64) int {
	switch code {
	case service.NoErr.Code:
		return http.StatusOK
	case service.ErrBadRequest.Code:
		return http.StatusBadRequest
	case service.ErrUnauthorized.Code:
		return http.StatusForbidden
	case service.ErrNotFound.Code:
		return http.StatusNotFound
	case service.ErrInvalidState.Code:
		return http.StatusConflict
	case service.ErrConflict.Code:
		return http.StatusPreconditionFailed
	case service.ErrValidation.Code:
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeResponse(w http.ResponseWriter, err error, data interface{}) {
	code, message := Error(err)
	payload := response{
		Code:    code,
		Message: message,
	}
	if err == nil {
		payload.Data = data
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(httpStatus(code))
	_ = json.NewEncoder(w).Encode(&payload)
}

func userID(r *http.Request) string {
	return r.Header.Get(HeaderRegistryUser)
}

// RequireUser rejects requests arriving without an account header.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID(r) == "" {
			writeResponse(w, service.ErrUnauthorized.Enrich("missing "+HeaderRegistryUser+" header"), nil)
			return
		}
		next.ServeHTTP(newResponseWriter(w), r)
	})
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrBadRequest.Enrich(err.Error())
	}
	return nil
}
