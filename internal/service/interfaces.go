package service

import (
	"context"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
)

type NoteService interface {
	Create(ctx context.Context, n *domain.Note) error
	GetByID(ctx context.Context, id string) (*domain.Note, error)
	List(ctx context.Context, req contract.ListRequest) ([]*domain.Note, error)
	Search(ctx context.Context, req contract.SearchRequest) (*contract.SearchResponse, error)
	Delete(ctx context.Context, id string) error
}

type ExtractionService interface {
	// Extract derives tags and action items from the note's content.
	// With apply unset this is a pure preview; with apply set the tags
	// are merged onto the note and the action items persisted.
	Extract(ctx context.Context, noteID string, apply bool) (*contract.ExtractionResult, error)
}

type ActionItemService interface {
	Create(ctx context.Context, a *domain.ActionItem) error
	GetByID(ctx context.Context, id string) (*domain.ActionItem, error)
	List(ctx context.Context, completed *bool, req contract.ListRequest) ([]*domain.ActionItem, error)
	Complete(ctx context.Context, id string) (*domain.ActionItem, error)
	Reopen(ctx context.Context, id string) (*domain.ActionItem, error)
	Patch(ctx context.Context, id string, patch domain.ActionItemPatch) (*domain.ActionItem, error)
	Delete(ctx context.Context, id string) error
}

type TagService interface {
	Create(ctx context.Context, t *domain.Tag) error
	GetByID(ctx context.Context, id string) (*domain.Tag, error)
	List(ctx context.Context, req contract.ListRequest) ([]*domain.Tag, error)
	Delete(ctx context.Context, id string) error
	AttachToNote(ctx context.Context, tagID, noteID string) error
	DetachFromNote(ctx context.Context, tagID, noteID string) error
}
