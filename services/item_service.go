//go:generate go run go.uber.org/mock/mockgen -source=item_service.go -destination=../mocks/mock_item_service.go -package=mocks
package services

import (
	"context"
	"fmt"
	"item-lab/domain"
	"item-lab/errors"
	"item-lab/repositories"
	"item-lab/validation"
	"log/slog"

	"github.com/google/uuid"
)

type IItemService interface {
	List() ([]domain.Item, error)
	Get(id uuid.UUID) (domain.Item, error)
	Create(input map[string]string) (domain.Item, error)
	Update(id uuid.UUID, input map[string]string) (domain.Item, error)
	Delete(id uuid.UUID) error
	Search(ctx context.Context, terms string, limit int) ([]domain.Item, uint64, error)
}

// ItemService composes validation, persistence and search indexing. Every
// failure comes back as a typed outcome: *validation.Error for bad input,
// ErrNotFound for a missing id, ErrStorage (wrapped) for persistence
// failures. Nothing is swallowed, nothing is partially applied.
type ItemService struct {
	log        *slog.Logger
	repository repositories.IItemRepository
	index      repositories.IItemIndex
	schema     validation.Schema
}

func NewItemService(
	log *slog.Logger,
	repository repositories.IItemRepository,
	index repositories.IItemIndex,
) IItemService {
	return &ItemService{
		log:        log,
		repository: repository,
		index:      index,
		schema:     validation.ItemSchema(),
	}
}

func (s *ItemService) List() ([]domain.Item, error) {
	items, err := s.repository.List()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	return items, nil
}

func (s *ItemService) Get(id uuid.UUID) (domain.Item, error) {
	item, err := s.repository.GetByID(id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if item == nil {
		return domain.Item{}, errors.ErrNotFound
	}
	return *item, nil
}

func (s *ItemService) Create(input map[string]string) (domain.Item, error) {
	// 1. Validate the full field set; every violation is reported at once.
	normalized, fieldErrors := validation.Validate(input, s.schema)
	if fieldErrors != nil {
		return domain.Item{}, &validation.Error{Fields: fieldErrors}
	}

	// 2. Persist. The repository assigns the id and both timestamps.
	item, err := s.repository.Create(toDraft(normalized))
	if err != nil {
		return domain.Item{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	// 3. Index for search. The index is derived data: a failure here must
	// not undo a successful create, so it is logged and the item returned.
	if err := s.index.Index(item); err != nil {
		s.log.Warn("Indexing failed", "id", item.ID, "error", err)
	}

	return item, nil
}

func (s *ItemService) Update(id uuid.UUID, input map[string]string) (domain.Item, error) {
	// 1. Existence check first: a bad id is NotFound even when the payload
	// is invalid too.
	existing, err := s.repository.GetByID(id)
	if err != nil {
		return domain.Item{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if existing == nil {
		return domain.Item{}, errors.ErrNotFound
	}

	// 2. Validate the full field set: an update resubmits every field.
	normalized, fieldErrors := validation.Validate(input, s.schema)
	if fieldErrors != nil {
		return domain.Item{}, &validation.Error{Fields: fieldErrors}
	}

	// 3. Apply. The repository reports absence again in case the record
	// was deleted between the check and the write.
	updated, err := s.repository.Update(id, toDraft(normalized))
	if err != nil {
		return domain.Item{}, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if updated == nil {
		return domain.Item{}, errors.ErrNotFound
	}

	// 4. Refresh the search document.
	if err := s.index.Index(*updated); err != nil {
		s.log.Warn("Re-indexing failed", "id", updated.ID, "error", err)
	}

	return *updated, nil
}

func (s *ItemService) Delete(id uuid.UUID) error {
	// 1. Remove from storage; false means the id never existed or is
	// already gone, which maps to NotFound rather than an error.
	deleted, err := s.repository.Delete(id)
	if err != nil {
		return fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}
	if !deleted {
		return errors.ErrNotFound
	}

	// 2. Drop the search document, best effort.
	if err := s.index.Remove(id); err != nil {
		s.log.Warn("Index removal failed", "id", id, "error", err)
	}
	return nil
}

func (s *ItemService) Search(ctx context.Context, terms string, limit int) ([]domain.Item, uint64, error) {
	ids, total, err := s.index.Search(ctx, terms, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", errors.ErrStorage, err)
	}

	items := make([]domain.Item, 0, len(ids))
	for _, id := range ids {
		item, err := s.repository.GetByID(id)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", errors.ErrStorage, err)
		}
		// The index can briefly lag behind deletes; skip stale hits.
		if item == nil {
			continue
		}
		items = append(items, *item)
	}
	return items, total, nil
}

func toDraft(fields map[string]string) domain.ItemDraft {
	return domain.ItemDraft{
		Name:        fields["name"],
		Description: fields["description"],
	}
}
