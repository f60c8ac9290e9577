package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/notedir/internal/domain"
)

// ErrNotFound is wrapped by lookups that match no record.
var ErrNotFound = errors.New("not found")

// NoteSearch holds the parameters of a note search. Offset/Limit are the
// already-computed slice bounds; validation happens at the service layer.
type NoteSearch struct {
	Query  string
	Sort   domain.NoteSortKey
	Offset int
	Limit  int
}

// ActionItemFilter restricts and orders an action item listing.
// Sort is a column name with an optional leading '-' for descending;
// unknown columns fall back to newest-first.
type ActionItemFilter struct {
	Completed *bool
	Sort      string
	Offset    int
	Limit     int
}

type NoteRepo interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Note, error)
	// Search returns the matching page and the total match count before paging.
	Search(ctx context.Context, s NoteSearch) ([]*domain.Note, int, error)
	Delete(ctx context.Context, id string) error
}

type TagRepo interface {
	Create(ctx context.Context, t *domain.Tag) error
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	GetByName(ctx context.Context, name string) (*domain.Tag, error)
	List(ctx context.Context, offset, limit int) ([]*domain.Tag, error)
	Delete(ctx context.Context, id string) error
	AttachToNote(ctx context.Context, tagID, noteID string) error
	DetachFromNote(ctx context.Context, tagID, noteID string) error
}

type ActionItemRepo interface {
	Create(ctx context.Context, a *domain.ActionItem) error
	GetByID(ctx context.Context, id string) (*domain.ActionItem, error)
	List(ctx context.Context, f ActionItemFilter) ([]*domain.ActionItem, error)
	ListBySourceNote(ctx context.Context, noteID string) ([]*domain.ActionItem, error)
	Update(ctx context.Context, a *domain.ActionItem) error
	Delete(ctx context.Context, id string) error
}
