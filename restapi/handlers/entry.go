package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bio-registry/part-hub/models"
	"github.com/bio-registry/part-hub/service"
	"github.com/bio-registry/part-hub/types"
)

// HandleGetEntry accepts a database id, a part number or a record id.
func HandleGetEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := service.EntrySvc.GetByIdentifier(userID(r), mux.Vars(r)["identifier"])
		if err == nil && data == nil {
			err = service.ErrNotFound.Enrich("no such entry")
		}
		writeResponse(w, err, data)
	}
}

func HandleEntrySelection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var selection types.EntrySelection
		if err := decodeBody(r, &selection); err != nil {
			writeResponse(w, err, nil)
			return
		}
		ids, err := service.EntrySvc.GetEntriesFromSelection(userID(r), &selection)
		writeResponse(w, err, ids)
	}
}

func HandleSetPreference() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var pref models.PreferenceInfo
		if err := decodeBody(r, &pref); err != nil {
			writeResponse(w, err, nil)
			return
		}
		err := service.BulkSvc.SetPreference(userID(r), &pref)
		writeResponse(w, err, nil)
	}
}
