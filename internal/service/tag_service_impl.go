package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/google/uuid"
)

type tagService struct {
	tags  repository.TagRepo
	notes repository.NoteRepo
}

func NewTagService(tags repository.TagRepo, notes repository.NoteRepo) TagService {
	return &tagService{tags: tags, notes: notes}
}

func (s *tagService) Create(ctx context.Context, t *domain.Tag) error {
	if err := t.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}
	t.Name = domain.NormalizeTagName(t.Name)
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	t.CreatedAt = time.Now().UTC().Truncate(time.Second)
	if err := s.tags.Create(ctx, t); err != nil {
		if errors.Is(err, repository.ErrDuplicateTag) {
			return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
		}
		return err
	}
	return nil
}

func (s *tagService) GetByID(ctx context.Context, id string) (*domain.Tag, error) {
	return s.tags.GetByID(ctx, id)
}

func (s *tagService) List(ctx context.Context, req contract.ListRequest) ([]*domain.Tag, error) {
	skip, limit, err := normalizeListBounds(req)
	if err != nil {
		return nil, err
	}
	tags, err := s.tags.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if tags == nil {
		tags = []*domain.Tag{}
	}
	return tags, nil
}

func (s *tagService) Delete(ctx context.Context, id string) error {
	return s.tags.Delete(ctx, id)
}

// AttachToNote links an existing tag to an existing note. Both must exist;
// re-attaching is a no-op success.
func (s *tagService) AttachToNote(ctx context.Context, tagID, noteID string) error {
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return err
	}
	if _, err := s.notes.GetByID(ctx, noteID); err != nil {
		return err
	}
	return s.tags.AttachToNote(ctx, tagID, noteID)
}

func (s *tagService) DetachFromNote(ctx context.Context, tagID, noteID string) error {
	if _, err := s.tags.GetByID(ctx, tagID); err != nil {
		return err
	}
	if _, err := s.notes.GetByID(ctx, noteID); err != nil {
		return err
	}
	return s.tags.DetachFromNote(ctx, tagID, noteID)
}
