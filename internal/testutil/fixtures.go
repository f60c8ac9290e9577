package testutil

import (
	"time"

	"github.com/alexanderramin/notedir/internal/domain"
	"github.com/google/uuid"
)

// Note options
type NoteOption func(*domain.Note)

func WithContent(content string) NoteOption {
	return func(n *domain.Note) {
		n.Content = content
	}
}

func WithCreatedAt(t time.Time) NoteOption {
	return func(n *domain.Note) {
		n.CreatedAt = t
	}
}

// NewTestNote builds a note with a fresh id and sensible defaults.
func NewTestNote(title string, opts ...NoteOption) *domain.Note {
	n := &domain.Note{
		ID:        uuid.New().String(),
		Title:     title,
		Content:   "test content",
		Tags:      []string{},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// ActionItem options
type ActionItemOption func(*domain.ActionItem)

func WithCompleted(done bool) ActionItemOption {
	return func(a *domain.ActionItem) {
		a.Completed = done
	}
}

func WithSourceNote(noteID string) ActionItemOption {
	return func(a *domain.ActionItem) {
		a.SourceNoteID = &noteID
	}
}

func WithItemCreatedAt(t time.Time) ActionItemOption {
	return func(a *domain.ActionItem) {
		a.CreatedAt = t
	}
}

// NewTestActionItem builds an action item with a fresh id.
func NewTestActionItem(description string, opts ...ActionItemOption) *domain.ActionItem {
	a := &domain.ActionItem{
		ID:          uuid.New().String(),
		Description: description,
		CreatedAt:   time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewTestTag builds a tag with a fresh id.
func NewTestTag(name string) *domain.Tag {
	return &domain.Tag{
		ID:        uuid.New().String(),
		Name:      domain.NormalizeTagName(name),
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
}
