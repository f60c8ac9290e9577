package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/notedir/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagRepo_CreateAndGetByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTagRepo(db)
	ctx := context.Background()

	tag := testutil.NewTestTag("urgent")
	require.NoError(t, repo.Create(ctx, tag))

	fetched, err := repo.GetByName(ctx, "urgent")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, fetched.ID)
}

func TestTagRepo_DuplicateName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTagRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTag("urgent")))
	err := repo.Create(ctx, testutil.NewTestTag("urgent"))
	assert.ErrorIs(t, err, ErrDuplicateTag)
}

func TestTagRepo_ListSortedByName(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTagRepo(db)
	ctx := context.Background()

	for _, name := range []string{"urgent", "archived", "later"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestTag(name)))
	}

	list, err := repo.List(ctx, 0, 10)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "archived", list[0].Name)
	assert.Equal(t, "later", list[1].Name)
	assert.Equal(t, "urgent", list[2].Name)
}

func TestTagRepo_AttachDetach(t *testing.T) {
	db := testutil.NewTestDB(t)
	notes := NewSQLiteNoteRepo(db)
	repo := NewSQLiteTagRepo(db)
	ctx := context.Background()

	note := testutil.NewTestNote("Tagged")
	require.NoError(t, notes.Create(ctx, note))
	tag := testutil.NewTestTag("visa")
	require.NoError(t, repo.Create(ctx, tag))

	require.NoError(t, repo.AttachToNote(ctx, tag.ID, note.ID))
	// Attaching twice is a no-op.
	require.NoError(t, repo.AttachToNote(ctx, tag.ID, note.ID))

	fetched, err := notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"visa"}, fetched.Tags)

	require.NoError(t, repo.DetachFromNote(ctx, tag.ID, note.ID))
	fetched, err = notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Tags)
}

func TestTagRepo_DeleteCascadesAssociation(t *testing.T) {
	db := testutil.NewTestDB(t)
	notes := NewSQLiteNoteRepo(db)
	repo := NewSQLiteTagRepo(db)
	ctx := context.Background()

	note := testutil.NewTestNote("Tagged")
	require.NoError(t, notes.Create(ctx, note))
	tag := testutil.NewTestTag("gone")
	require.NoError(t, repo.Create(ctx, tag))
	require.NoError(t, repo.AttachToNote(ctx, tag.ID, note.ID))

	require.NoError(t, repo.Delete(ctx, tag.ID))

	fetched, err := notes.GetByID(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, fetched.Tags)
}
