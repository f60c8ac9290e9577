// Package httpapi exposes the note directory over HTTP. Handlers decode
// requests, call the service layer, and translate its errors onto
// statuses; all domain rules live below this package.
package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/alexanderramin/notedir/internal/service"
)

// API holds the service dependencies behind the HTTP handlers.
type API struct {
	Notes       service.NoteService
	ActionItems service.ActionItemService
	Tags        service.TagService
	Extraction  service.ExtractionService
	Logger      zerolog.Logger
}

// Routes builds the full router, request logging included.
func (a *API) Routes() *mux.Router {
	router := mux.NewRouter()
	router.Use(requestLogger(a.Logger))

	router.HandleFunc("/health", a.handleHealth).Methods("GET")

	// Note routes. Search is registered before the {id} routes so the
	// literal segment wins.
	router.HandleFunc("/notes/search/", a.handleSearchNotes).Methods("GET")
	router.HandleFunc("/notes/", a.handleCreateNote).Methods("POST")
	router.HandleFunc("/notes/", a.handleListNotes).Methods("GET")
	router.HandleFunc("/notes/{id}", a.handleGetNote).Methods("GET")
	router.HandleFunc("/notes/{id}", a.handleDeleteNote).Methods("DELETE")
	router.HandleFunc("/notes/{id}/extract", a.handleExtract).Methods("POST")

	// Action item routes
	router.HandleFunc("/action-items/", a.handleCreateActionItem).Methods("POST")
	router.HandleFunc("/action-items/", a.handleListActionItems).Methods("GET")
	router.HandleFunc("/action-items/{id}", a.handleGetActionItem).Methods("GET")
	router.HandleFunc("/action-items/{id}", a.handlePatchActionItem).Methods("PATCH")
	router.HandleFunc("/action-items/{id}", a.handleDeleteActionItem).Methods("DELETE")
	router.HandleFunc("/action-items/{id}/complete", a.handleCompleteActionItem).Methods("PUT")
	router.HandleFunc("/action-items/{id}/reopen", a.handleReopenActionItem).Methods("PUT")

	// Tag routes
	router.HandleFunc("/tags/", a.handleCreateTag).Methods("POST")
	router.HandleFunc("/tags/", a.handleListTags).Methods("GET")
	router.HandleFunc("/tags/{id}", a.handleGetTag).Methods("GET")
	router.HandleFunc("/tags/{id}", a.handleDeleteTag).Methods("DELETE")
	router.HandleFunc("/tags/{id}/notes/{note_id}", a.handleAttachTag).Methods("POST")
	router.HandleFunc("/tags/{id}/notes/{note_id}", a.handleDetachTag).Methods("DELETE")

	return router
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
