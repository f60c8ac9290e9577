package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/google/uuid"
)

type actionItemService struct {
	items repository.ActionItemRepo
}

func NewActionItemService(items repository.ActionItemRepo) ActionItemService {
	return &actionItemService{items: items}
}

func (s *actionItemService) Create(ctx context.Context, a *domain.ActionItem) error {
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}
	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	a.Completed = false
	a.CreatedAt = time.Now().UTC().Truncate(time.Second)
	return s.items.Create(ctx, a)
}

func (s *actionItemService) GetByID(ctx context.Context, id string) (*domain.ActionItem, error) {
	return s.items.GetByID(ctx, id)
}

func (s *actionItemService) List(ctx context.Context, completed *bool, req contract.ListRequest) ([]*domain.ActionItem, error) {
	skip, limit, err := normalizeListBounds(req)
	if err != nil {
		return nil, err
	}
	items, err := s.items.List(ctx, repository.ActionItemFilter{
		Completed: completed,
		Sort:      req.Sort,
		Offset:    skip,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.ActionItem{}
	}
	return items, nil
}

// Complete marks the item done. Completing an already-completed item is a
// no-op success.
func (s *actionItemService) Complete(ctx context.Context, id string) (*domain.ActionItem, error) {
	return s.setCompleted(ctx, id, true)
}

// Reopen clears the completed flag, with the same idempotence contract as
// Complete.
func (s *actionItemService) Reopen(ctx context.Context, id string) (*domain.ActionItem, error) {
	return s.setCompleted(ctx, id, false)
}

func (s *actionItemService) setCompleted(ctx context.Context, id string, completed bool) (*domain.ActionItem, error) {
	a, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.Completed == completed {
		return a, nil
	}
	a.Completed = completed
	if err := s.items.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *actionItemService) Patch(ctx context.Context, id string, patch domain.ActionItemPatch) (*domain.ActionItem, error) {
	if patch.Description != nil && *patch.Description == "" {
		return nil, fmt.Errorf("description must not be empty: %w", ErrInvalidArgument)
	}
	a, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(a)
	if err := s.items.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *actionItemService) Delete(ctx context.Context, id string) error {
	return s.items.Delete(ctx, id)
}
