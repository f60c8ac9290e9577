package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
)

func (a *API) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	note := &domain.Note{Title: req.Title, Content: req.Content}
	if err := a.Notes.Create(r.Context(), note); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, note)
}

func (a *API) handleGetNote(w http.ResponseWriter, r *http.Request) {
	note, err := a.Notes.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, note)
}

func (a *API) handleListNotes(w http.ResponseWriter, r *http.Request) {
	req, err := parseListRequest(r.URL.Query())
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	notes, err := a.Notes.List(r.Context(), req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

func (a *API) handleSearchNotes(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page, err := queryInt(values, "page", contract.DefaultPage)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	pageSize, err := queryInt(values, "page_size", contract.DefaultPageSize)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := a.Notes.Search(r.Context(), contract.SearchRequest{
		Query:    values.Get("q"),
		Page:     page,
		PageSize: pageSize,
		Sort:     domain.NoteSortKey(values.Get("sort")),
	})
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *API) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := a.Notes.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (a *API) handleExtract(w http.ResponseWriter, r *http.Request) {
	apply, err := queryBool(r.URL.Query(), "apply")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := a.Extraction.Extract(r.Context(), mux.Vars(r)["id"], apply != nil && *apply)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, result)
}
