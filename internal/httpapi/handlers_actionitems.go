package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
)

func (a *API) handleCreateActionItem(w http.ResponseWriter, r *http.Request) {
	var req contract.CreateActionItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	item := &domain.ActionItem{Description: req.Description}
	if err := a.ActionItems.Create(r.Context(), item); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

func (a *API) handleGetActionItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.ActionItems.GetByID(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *API) handleListActionItems(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	req, err := parseListRequest(values)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	completed, err := queryBool(values, "completed")
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	items, err := a.ActionItems.List(r.Context(), completed, req)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

func (a *API) handleCompleteActionItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.ActionItems.Complete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *API) handleReopenActionItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.ActionItems.Reopen(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *API) handlePatchActionItem(w http.ResponseWriter, r *http.Request) {
	var patch domain.ActionItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request payload")
		return
	}

	item, err := a.ActionItems.Patch(r.Context(), mux.Vars(r)["id"], patch)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (a *API) handleDeleteActionItem(w http.ResponseWriter, r *http.Request) {
	if err := a.ActionItems.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
