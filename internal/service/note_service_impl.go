package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/domain"
	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/google/uuid"
)

type noteService struct {
	notes    repository.NoteRepo
	observer UseCaseObserver
}

func NewNoteService(notes repository.NoteRepo, observers ...UseCaseObserver) NoteService {
	return &noteService{
		notes:    notes,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *noteService) Create(ctx context.Context, n *domain.Note) error {
	if err := n.Validate(); err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidArgument)
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.Tags == nil {
		n.Tags = []string{}
	}
	n.CreatedAt = time.Now().UTC().Truncate(time.Second)
	return s.notes.Create(ctx, n)
}

func (s *noteService) GetByID(ctx context.Context, id string) (*domain.Note, error) {
	return s.notes.GetByID(ctx, id)
}

func (s *noteService) List(ctx context.Context, req contract.ListRequest) ([]*domain.Note, error) {
	skip, limit, err := normalizeListBounds(req)
	if err != nil {
		return nil, err
	}
	notes, err := s.notes.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if notes == nil {
		notes = []*domain.Note{}
	}
	return notes, nil
}

func (s *noteService) Search(ctx context.Context, req contract.SearchRequest) (*contract.SearchResponse, error) {
	start := time.Now()
	resp, err := s.search(ctx, req)
	observe(ctx, s.observer, "notes_search", start, err, map[string]any{
		"query": req.Query,
		"page":  req.Page,
		"sort":  string(req.Sort),
	})
	return resp, err
}

func (s *noteService) search(ctx context.Context, req contract.SearchRequest) (*contract.SearchResponse, error) {
	if req.Page < 1 {
		return nil, fmt.Errorf("page must be >= 1, got %d: %w", req.Page, ErrInvalidArgument)
	}
	if req.PageSize < 1 {
		return nil, fmt.Errorf("page_size must be >= 1, got %d: %w", req.PageSize, ErrInvalidArgument)
	}
	if req.PageSize > contract.MaxPageSize {
		return nil, fmt.Errorf("page_size must be <= %d, got %d: %w", contract.MaxPageSize, req.PageSize, ErrInvalidArgument)
	}
	// A page whose offset cannot be represented would wrap negative and
	// read from the start of the result set instead of past its end.
	if req.Page-1 > math.MaxInt/req.PageSize {
		return nil, fmt.Errorf("page %d out of range: %w", req.Page, ErrInvalidArgument)
	}
	if req.Sort == "" {
		req.Sort = domain.SortCreatedDesc
	}
	if !domain.ValidNoteSortKeys[req.Sort] {
		return nil, fmt.Errorf("unknown sort key %q: %w", req.Sort, ErrInvalidArgument)
	}

	items, total, err := s.notes.Search(ctx, repository.NoteSearch{
		Query:  req.Query,
		Sort:   req.Sort,
		Offset: req.Offset(),
		Limit:  req.PageSize,
	})
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*domain.Note{}
	}
	return &contract.SearchResponse{
		Items:    items,
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
	}, nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}

// normalizeListBounds applies listing defaults and rejects out-of-range
// values.
func normalizeListBounds(req contract.ListRequest) (skip, limit int, err error) {
	if req.Skip < 0 {
		return 0, 0, fmt.Errorf("skip must be >= 0, got %d: %w", req.Skip, ErrInvalidArgument)
	}
	limit = req.Limit
	if limit == 0 {
		limit = contract.DefaultListLimit
	}
	if limit < 0 || limit > contract.MaxListLimit {
		return 0, 0, fmt.Errorf("limit must be between 0 and %d, got %d: %w", contract.MaxListLimit, req.Limit, ErrInvalidArgument)
	}
	return req.Skip, limit, nil
}
