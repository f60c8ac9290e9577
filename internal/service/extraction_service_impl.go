package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/alexanderramin/notedir/internal/contract"
	"github.com/alexanderramin/notedir/internal/db"
	"github.com/alexanderramin/notedir/internal/domain"
	"github.com/alexanderramin/notedir/internal/extract"
	"github.com/alexanderramin/notedir/internal/repository"
	"github.com/google/uuid"
)

type extractionService struct {
	notes    repository.NoteRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewExtractionService(notes repository.NoteRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ExtractionService {
	return &extractionService{
		notes:    notes,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *extractionService) Extract(ctx context.Context, noteID string, apply bool) (*contract.ExtractionResult, error) {
	start := time.Now()
	result, err := s.extract(ctx, noteID, apply)
	observe(ctx, s.observer, "extract", start, err, map[string]any{
		"note_id": noteID,
		"apply":   apply,
	})
	return result, err
}

func (s *extractionService) extract(ctx context.Context, noteID string, apply bool) (*contract.ExtractionResult, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}

	result := &contract.ExtractionResult{
		Tags:        extract.Hashtags(note.Content),
		ActionItems: extract.ActionItems(note.Content),
		Applied:     apply,
	}
	if !apply {
		return result, nil
	}

	// Tag merge and action-item creation happen in one transaction so a
	// failed apply leaves nothing half-written.
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTags := repository.NewSQLiteTagRepo(tx)
		txItems := repository.NewSQLiteActionItemRepo(tx)

		for _, name := range result.Tags {
			if err := upsertAndAttachTag(ctx, txTags, name, note.ID); err != nil {
				return err
			}
		}
		return createMissingActionItems(ctx, txItems, note.ID, result.ActionItems)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// upsertAndAttachTag finds or creates the named tag and links it to the note.
func upsertAndAttachTag(ctx context.Context, tags repository.TagRepo, name, noteID string) error {
	tag, err := tags.GetByName(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		tag = &domain.Tag{
			ID:        uuid.New().String(),
			Name:      name,
			CreatedAt: time.Now().UTC().Truncate(time.Second),
		}
		if err := tags.Create(ctx, tag); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}
	return tags.AttachToNote(ctx, tag.ID, noteID)
}

// createMissingActionItems persists the derived phrases as action items,
// skipping any phrase that already exists for this source note so a
// re-run does not duplicate items.
func createMissingActionItems(ctx context.Context, items repository.ActionItemRepo, noteID string, phrases []string) error {
	existing, err := items.ListBySourceNote(ctx, noteID)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, item := range existing {
		have[strings.ToLower(item.Description)] = true
	}

	for _, phrase := range phrases {
		if have[strings.ToLower(phrase)] {
			continue
		}
		item := &domain.ActionItem{
			ID:           uuid.New().String(),
			Description:  phrase,
			Completed:    false,
			SourceNoteID: &noteID,
			CreatedAt:    time.Now().UTC().Truncate(time.Second),
		}
		if err := items.Create(ctx, item); err != nil {
			return err
		}
	}
	return nil
}
