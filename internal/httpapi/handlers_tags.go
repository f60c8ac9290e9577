package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
)

func (a *API) handleCreateTag(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	tag := &domain.Tag{Name: req.Name}
	if err := a.Tags.Create(r.Context(), tag); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, tag)
}

func (a *API) handleGetTag(w http.ResponseWriter, r *http.Request) {
	tag, err := a.Tags.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tag)
}

func (a *API) handleListTags(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	tags, err := a.Tags.List(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, tags)
}

func (a *API) handleDeleteTag(w http.ResponseWriter, r *http.Request) {
	if err := a.Tags.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleAttachTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := a.Tags.AttachToNote(r.Context(), vars["id"], vars["note_id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleDetachTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	if err := a.Tags.DetachFromNote(r.Context(), vars["id"], vars["note_id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
