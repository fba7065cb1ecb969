//go:generate go run go.uber.org/mock/mockgen -source=item.go -destination=../mocks/mock_item_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"errors"
	"fmt"
	"item-lab/domain"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IItemRepository interface {
	Create(draft domain.ItemDraft) (domain.Item, error)
	List() ([]domain.Item, error)
	GetByID(id uuid.UUID) (*domain.Item, error)
	Update(id uuid.UUID, draft domain.ItemDraft) (*domain.Item, error)
	Delete(id uuid.UUID) (bool, error)
}

type ItemRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewItemRepository(db *badger.DB, log *slog.Logger) *ItemRepository {
	return &ItemRepository{db: db, log: log}
}

// Primary keys are formatted as "item:{timestamp_padded}:{uuid}" so that:
//  1. A plain prefix scan returns items in insertion order thanks to the
//     19-digit zero padding (lexicographical order).
//  2. Two items created in the same nanosecond cannot collide, the UUID
//     acts as disambiguator.
//
// A secondary "idx:item:{uuid}" entry points at the primary key so lookups
// by id do not need a scan.
func primaryKey(item domain.Item) []byte {
	return []byte(fmt.Sprintf("item:%019d:%s", item.CreatedAt.UnixNano(), item.ID))
}

func indexKey(id uuid.UUID) []byte {
	return []byte("idx:item:" + id.String())
}

// Create assigns a fresh id, stamps both timestamps and persists the item.
// The returned value is the stored copy.
func (r ItemRepository) Create(draft domain.ItemDraft) (domain.Item, error) {
	now := time.Now().UTC()
	item := domain.Item{
		ID:          uuid.New(),
		Name:        draft.Name,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	data, err := json.Marshal(item)
	if err != nil {
		return domain.Item{}, fmt.Errorf("marshal failed: %w", err)
	}

	key := primaryKey(item)
	err = r.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(key, data); err != nil {
			return err
		}
		return txn.Set(indexKey(item.ID), key)
	})
	if err != nil {
		return domain.Item{}, err
	}
	return item, nil
}

// List returns every stored item in insertion order. The whole scan runs in
// a single read transaction, so the result is a consistent snapshot.
func (r ItemRepository) List() ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	prefix := []byte("item:")

	err := r.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.PrefetchValues = true
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var item domain.Item
				if err := json.Unmarshal(val, &item); err != nil {
					return err
				}
				items = append(items, item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// GetByID retrieves one item. Absence is not an error: the item is nil and
// the caller decides whether that is a NotFound.
func (r ItemRepository) GetByID(id uuid.UUID) (*domain.Item, error) {
	var item *domain.Item
	err := r.db.View(func(txn *badger.Txn) error {
		found, _, err := getItem(txn, id)
		if err != nil {
			return err
		}
		item = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Update applies the draft over the stored record inside a single
// transaction, so concurrent readers never observe a half-applied patch.
// Returns nil when the id does not exist: no implicit create.
func (r ItemRepository) Update(id uuid.UUID, draft domain.ItemDraft) (*domain.Item, error) {
	var updated *domain.Item
	err := r.db.Update(func(txn *badger.Txn) error {
		item, key, err := getItem(txn, id)
		if err != nil || item == nil {
			return err
		}

		item.Name = draft.Name
		item.Description = draft.Description
		item.UpdatedAt = r.nextUpdateTime(item.UpdatedAt)

		data, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("marshal failed: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes the item and its index entry. Returns false when the id
// does not exist, which is not an error: deletes are idempotent.
func (r ItemRepository) Delete(id uuid.UUID) (bool, error) {
	deleted := false
	err := r.db.Update(func(txn *badger.Txn) error {
		item, key, err := getItem(txn, id)
		if err != nil || item == nil {
			return err
		}
		if err := txn.Delete(key); err != nil {
			return err
		}
		if err := txn.Delete(indexKey(id)); err != nil {
			return err
		}
		deleted = true
		return nil
	})
	return deleted, err
}

// nextUpdateTime guarantees updatedAt strictly increases across successive
// updates of the same record, even when the clock resolution is coarser
// than two consecutive writes.
func (r ItemRepository) nextUpdateTime(prev time.Time) time.Time {
	now := time.Now().UTC()
	if !now.After(prev) {
		r.log.Debug("Clock did not advance, bumping updatedAt", "previous", prev)
		return prev.Add(time.Nanosecond)
	}
	return now
}

// getItem resolves the idx entry to the primary record inside txn and
// returns the decoded item with its primary key. Absence is reported as a
// nil item, not an error.
func getItem(txn *badger.Txn, id uuid.UUID) (*domain.Item, []byte, error) {
	entry, err := txn.Get(indexKey(id))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	key, err := entry.ValueCopy(nil)
	if err != nil {
		return nil, nil, err
	}

	record, err := txn.Get(key)
	if err != nil {
		return nil, nil, err
	}

	var item domain.Item
	err = record.Value(func(val []byte) error {
		return json.Unmarshal(val, &item)
	})
	if err != nil {
		return nil, nil, err
	}
	return &item, key, nil
}
