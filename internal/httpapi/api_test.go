package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/alexanderramin/notedir/internal/service"
	"github.com/alexanderramin/notedir/internal/testutil"
)

func newTestAPI(t *testing.T) *API {
	t.Helper()
	db := testutil.NewTestDB(t)
	noteRepo := repository.NewSQLiteNoteRepo(db)
	return &API{
		Notes:       service.NewNoteService(noteRepo),
		ActionItems: service.NewActionItemService(repository.NewSQLiteActionItemRepo(db)),
		Tags:        service.NewTagService(repository.NewSQLiteTagRepo(db), noteRepo),
		Extraction:  service.NewExtractionService(noteRepo, testutil.NewTestUoW(db)),
		Logger:      zerolog.Nop(),
	}
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealth(t *testing.T) {
	router := newTestAPI(t).Routes()
	rec := doJSON(t, router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateAndGetNote(t *testing.T) {
	router := newTestAPI(t).Routes()

	rec := doJSON(t, router, "POST", "/notes/", contract.CreateNoteRequest{Title: "trip", Content: "pack bags"})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := decodeBody[domain.Note](t, rec)
	assert.NotEmpty(t, created.ID)

	rec = doJSON(t, router, "GET", "/notes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[domain.Note](t, rec)
	assert.Equal(t, "trip", got.Title)
}

func TestCreateNote_EmptyTitle(t *testing.T) {
	router := newTestAPI(t).Routes()
	rec := doJSON(t, router, "POST", "/notes/", contract.CreateNoteRequest{Content: "no title"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetNote_NotFound(t *testing.T) {
	router := newTestAPI(t).Routes()
	rec := doJSON(t, router, "GET", "/notes/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchNotes(t *testing.T) {
	router := newTestAPI(t).Routes()

	for _, title := range []string{"grocery list", "travel plans", "travel budget"} {
		rec := doJSON(t, router, "POST", "/notes/", contract.CreateNoteRequest{Title: title})
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doJSON(t, router, "GET", "/notes/search/?q=travel&page=1&page_size=10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decodeBody[contract.SearchResponse](t, rec)
	assert.Equal(t, 2, resp.Total)
	assert.Len(t, resp.Items, 2)
	assert.Equal(t, 1, resp.Page)

	// Defaults apply when paging parameters are omitted.
	rec = doJSON(t, router, "GET", "/notes/search/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp = decodeBody[contract.SearchResponse](t, rec)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, contract.DefaultPageSize, resp.PageSize)
}

func TestSearchNotes_InvalidParams(t *testing.T) {
	router := newTestAPI(t).Routes()

	for _, path := range []string{
		"/notes/search/?page=0",
		"/notes/search/?page_size=101",
		"/notes/search/?page=abc",
		"/notes/search/?page=92233720368547760&page_size=100",
		"/notes/search/?sort=bogus",
	} {
		rec := doJSON(t, router, "GET", path, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestExtract_PreviewAndApply(t *testing.T) {
	router := newTestAPI(t).Routes()

	rec := doJSON(t, router, "POST", "/notes/", contract.CreateNoteRequest{
		Title:   "visa",
		Content: "Need to call the lawyer. #urgent #visa",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	note := decodeBody[domain.Note](t, rec)

	rec = doJSON(t, router, "POST", fmt.Sprintf("/notes/%s/extract", note.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	preview := decodeBody[contract.ExtractionResult](t, rec)
	assert.False(t, preview.Applied)
	assert.Equal(t, []string{"urgent", "visa"}, preview.Tags)

	rec = doJSON(t, router, "POST", fmt.Sprintf("/notes/%s/extract?apply=true", note.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	applied := decodeBody[contract.ExtractionResult](t, rec)
	assert.True(t, applied.Applied)

	rec = doJSON(t, router, "GET", "/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := decodeBody[domain.Note](t, rec)
	assert.ElementsMatch(t, []string{"urgent", "visa"}, stored.Tags)
}

func TestActionItemLifecycle(t *testing.T) {
	router := newTestAPI(t).Routes()

	rec := doJSON(t, router, "POST", "/action-items/", contract.CreateActionItemRequest{Description: "renew passport"})
	require.Equal(t, http.StatusCreated, rec.Code)
	item := decodeBody[domain.ActionItem](t, rec)

	rec = doJSON(t, router, "PUT", "/action-items/"+item.ID+"/complete", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	done := decodeBody[domain.ActionItem](t, rec)
	assert.True(t, done.Completed)

	rec = doJSON(t, router, "GET", "/action-items/?completed=true", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeBody[[]domain.ActionItem](t, rec)
	assert.Len(t, items, 1)

	desc := "renew passport and visa"
	rec = doJSON(t, router, "PATCH", "/action-items/"+item.ID, domain.ActionItemPatch{Description: &desc})
	require.Equal(t, http.StatusOK, rec.Code)
	patched := decodeBody[domain.ActionItem](t, rec)
	assert.Equal(t, desc, patched.Description)

	rec = doJSON(t, router, "DELETE", "/action-items/"+item.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, "GET", "/action-items/"+item.ID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTagAttachDetach(t *testing.T) {
	router := newTestAPI(t).Routes()

	rec := doJSON(t, router, "POST", "/notes/", contract.CreateNoteRequest{Title: "trip"})
	require.Equal(t, http.StatusCreated, rec.Code)
	note := decodeBody[domain.Note](t, rec)

	rec = doJSON(t, router, "POST", "/tags/", contract.CreateTagRequest{Name: "Travel"})
	require.Equal(t, http.StatusCreated, rec.Code)
	tag := decodeBody[domain.Tag](t, rec)
	assert.Equal(t, "travel", tag.Name)

	rec = doJSON(t, router, "POST", fmt.Sprintf("/tags/%s/notes/%s", tag.ID, note.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, "GET", "/notes/"+note.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	stored := decodeBody[domain.Note](t, rec)
	assert.Equal(t, []string{"travel"}, stored.Tags)

	rec = doJSON(t, router, "DELETE", fmt.Sprintf("/tags/%s/notes/%s", tag.ID, note.ID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDuplicateTagRejected(t *testing.T) {
	router := newTestAPI(t).Routes()

	rec := doJSON(t, router, "POST", "/tags/", contract.CreateTagRequest{Name: "travel"})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, "POST", "/tags/", contract.CreateTagRequest{Name: "travel"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
