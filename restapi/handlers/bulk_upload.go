package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/service"
	"github.com/bio-registry/part-hub/util"
)

func uploadId(r *http.Request) (int64, error) {
	id, err := util.StringToInt64(mux.Vars(r)["id"])
	if err != nil || id <= 0 {
		return 0, service.ErrBadRequest.Enrich("invalid upload id")
	}
	return id, nil
}

func HandleAutoUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.AutoUpdateRequest
		if err := decodeBody(r, &req); err != nil {
			writeResponse(w, err, nil)
			return
		}
		resp, err := service.BulkSvc.AutoUpdate(userID(r), &req)
		writeResponse(w, err, resp)
	}
}

func HandleGetUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uploadId(r)
		if err != nil {
			writeResponse(w, err, nil)
			return
		}
		offset := 0
		limit := 0
		if v := r.URL.Query().Get("offset"); v != "" {
			n, err := util.StringToInt64(v)
			if err != nil {
				writeResponse(w, service.ErrBadRequest.Enrich("invalid offset"), nil)
				return
			}
			offset = int(n)
		}
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := util.StringToInt64(v)
			if err != nil {
				writeResponse(w, service.ErrBadRequest.Enrich("invalid limit"), nil)
				return
			}
			limit = int(n)
		}
		info, err := service.BulkSvc.RetrieveById(userID(r), id, offset, limit)
		if err == nil && info == nil {
			err = service.ErrNotFound.Enrich("no such bulk upload")
		}
		writeResponse(w, err, info)
	}
}

func HandleDeleteUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uploadId(r)
		if err != nil {
			writeResponse(w, err, nil)
			return
		}
		info, err := service.BulkSvc.DeleteDraftById(userID(r), id)
		writeResponse(w, err, info)
	}
}

type transitionResult struct {
	Applied bool `json:"applied"`
}

func HandleSubmitUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uploadId(r)
		if err != nil {
			writeResponse(w, err, nil)
			return
		}
		ok, err := service.BulkSvc.SubmitBulkImportDraft(userID(r), id)
		writeResponse(w, err, &transitionResult{Applied: ok})
	}
}

func HandleApproveUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uploadId(r)
		if err != nil {
			writeResponse(w, err, nil)
			return
		}
		ok, err := service.BulkSvc.ApproveBulkImport(userID(r), id)
		writeResponse(w, err, &transitionResult{Applied: ok})
	}
}

func HandleRevertUpload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uploadId(r)
		if err != nil {
			writeResponse(w, err, nil)
			return
		}
		ok, err := service.BulkSvc.RevertSubmitted(userID(r), id)
		writeResponse(w, err, &transitionResult{Applied: ok})
	}
}

// HandleListUploads lists the caller's own uploads, or another account's via
// the owner query parameter, admin permitting.
func HandleListUploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		owner := r.URL.Query().Get("owner")
		if owner == "" {
			owner = userID(r)
		}
		infos, err := service.BulkSvc.RetrieveByUser(userID(r), owner)
		writeResponse(w, err, infos)
	}
}

func HandlePendingUploads() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		infos, err := service.BulkSvc.RetrievePendingImports(userID(r))
		writeResponse(w, err, infos)
	}
}
