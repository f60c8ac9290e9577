package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/alexanderramin/notedir/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extractionFixture struct {
	notes      NoteService
	items      repository.ActionItemRepo
	extraction ExtractionService
}

func newExtractionFixture(t *testing.T) extractionFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	noteRepo := repository.NewSQLiteNoteRepo(db)
	return extractionFixture{
		notes:      NewNoteService(noteRepo),
		items:      repository.NewSQLiteActionItemRepo(db),
		extraction: NewExtractionService(noteRepo, testutil.NewTestUoW(db)),
	}
}

func TestExtractionService_PreviewDoesNotPersist(t *testing.T) {
	f := newExtractionFixture(t)
	ctx := context.Background()

	note := testutil.NewTestNote("visa", testutil.WithContent("Need to call the lawyer. #urgent #visa"))
	require.NoError(t, f.notes.Create(ctx, note))

	first, err := f.extraction.Extract(ctx, note.ID, false)
	require.NoError(t, err)
	assert.False(t, first.Applied)
	assert.Equal(t, []string{"urgent", "visa"}, first.Tags)
	require.Len(t, first.ActionItems, 1)

	// Preview twice: identical output, nothing stored.
	second, err := f.extraction.Extract(ctx, note.ID, false)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	stored, err := f.notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Tags)

	items, err := f.items.ListBySourceNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestExtractionService_ApplyPersistsTagsAndActionItems(t *testing.T) {
	f := newExtractionFixture(t)
	ctx := context.Background()

	note := testutil.NewTestNote("visa", testutil.WithContent("Need to call the lawyer. #urgent #visa"))
	require.NoError(t, f.notes.Create(ctx, note))

	result, err := f.extraction.Extract(ctx, note.ID, true)
	require.NoError(t, err)
	assert.True(t, result.Applied)

	stored, err := f.notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"urgent", "visa"}, stored.Tags)

	items, err := f.items.ListBySourceNote(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotNil(t, items[0].SourceNoteID)
	assert.Equal(t, note.ID, *items[0].SourceNoteID)
}

func TestExtractionService_ApplyTwiceDoesNotDuplicate(t *testing.T) {
	f := newExtractionFixture(t)
	ctx := context.Background()

	note := testutil.NewTestNote("visa", testutil.WithContent("todo: renew passport\n#travel"))
	require.NoError(t, f.notes.Create(ctx, note))

	_, err := f.extraction.Extract(ctx, note.ID, true)
	require.NoError(t, err)
	_, err = f.extraction.Extract(ctx, note.ID, true)
	require.NoError(t, err)

	items, err := f.items.ListBySourceNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	stored, err := f.notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"travel"}, stored.Tags)
}

func TestExtractionService_UnknownNote(t *testing.T) {
	f := newExtractionFixture(t)

	_, err := f.extraction.Extract(context.Background(), "nonexistent", false)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
