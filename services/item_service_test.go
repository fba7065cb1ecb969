package services

import (
	"context"
	"item-lab/domain"
	"item-lab/errors"
	"item-lab/mocks"
	"item-lab/repositories"
	"item-lab/validation"
	"log/slog"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestItemService_Create(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	tests := []struct {
		description string
		input       map[string]string
		badFields   []string
	}{
		{
			"Should succeed with valid input",
			map[string]string{"name": "Pen", "description": "Blue ink pen"},
			nil,
		},
		{
			"Should trim surrounding whitespace",
			map[string]string{"name": "  Pen ", "description": " Blue ink pen "},
			nil,
		},
		{
			"Should fail if name is missing",
			map[string]string{"description": "Blue ink pen"},
			[]string{"name"},
		},
		{
			"Should fail if description is blank",
			map[string]string{"name": "Pen", "description": "   "},
			[]string{"description"},
		},
		{
			"Should report every missing field at once",
			map[string]string{},
			[]string{"name", "description"},
		},
	}

	for _, test := range tests {
		t.Run(test.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			repository := mocks.NewMockIItemRepository(ctrl)
			index := mocks.NewMockIItemIndex(ctrl)
			service := NewItemService(log, repository, index)

			if test.badFields == nil {
				stored := domain.Item{ID: uuid.New(), Name: "Pen", Description: "Blue ink pen"}
				repository.EXPECT().
					Create(domain.ItemDraft{Name: "Pen", Description: "Blue ink pen"}).
					Return(stored, nil)
				index.EXPECT().Index(stored).Return(nil)

				item, err := service.Create(test.input)
				req.NoError(err)
				req.Equal(stored, item)
				return
			}

			// No repository expectations: invalid input must never reach storage
			_, err := service.Create(test.input)
			var validationErr *validation.Error
			req.ErrorAs(err, &validationErr)
			req.Len(validationErr.Fields, len(test.badFields))
			for _, field := range test.badFields {
				req.Contains(validationErr.Fields, field)
			}
		})
	}
}

func TestItemService_Get(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIItemRepository(ctrl)
	index := mocks.NewMockIItemIndex(ctrl)
	service := NewItemService(log, repository, index)

	stored := domain.Item{ID: uuid.New(), Name: "Pen", Description: "Blue ink pen"}
	repository.EXPECT().GetByID(stored.ID).Return(&stored, nil)

	item, err := service.Get(stored.ID)
	req.NoError(err)
	req.Equal(stored, item)

	missing := uuid.New()
	repository.EXPECT().GetByID(missing).Return(nil, nil)
	_, err = service.Get(missing)
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestItemService_Update_NotFound(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIItemRepository(ctrl)
	index := mocks.NewMockIItemIndex(ctrl)
	service := NewItemService(log, repository, index)

	id := uuid.New()
	repository.EXPECT().GetByID(id).Return(nil, nil)

	_, err := service.Update(id, map[string]string{"name": "Pencil", "description": "HB pencil"})
	req.ErrorIs(err, errors.ErrNotFound)
}

func TestItemService_Update_InvalidInput(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIItemRepository(ctrl)
	index := mocks.NewMockIItemIndex(ctrl)
	service := NewItemService(log, repository, index)

	stored := domain.Item{ID: uuid.New(), Name: "Pen", Description: "Blue ink pen"}
	repository.EXPECT().GetByID(stored.ID).Return(&stored, nil)

	// An update resubmits the full field set: a lone name is not enough
	_, err := service.Update(stored.ID, map[string]string{"name": "Pencil"})
	var validationErr *validation.Error
	req.ErrorAs(err, &validationErr)
	req.Contains(validationErr.Fields, "description")
}

func TestItemService_Update_Success(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIItemRepository(ctrl)
	index := mocks.NewMockIItemIndex(ctrl)
	service := NewItemService(log, repository, index)

	stored := domain.Item{ID: uuid.New(), Name: "Pen", Description: "Blue ink pen"}
	updated := stored
	updated.Name = "Pencil"
	updated.Description = "HB pencil"

	repository.EXPECT().GetByID(stored.ID).Return(&stored, nil)
	repository.EXPECT().
		Update(stored.ID, domain.ItemDraft{Name: "Pencil", Description: "HB pencil"}).
		Return(&updated, nil)
	index.EXPECT().Index(updated).Return(nil)

	item, err := service.Update(stored.ID, map[string]string{"name": "Pencil", "description": "HB pencil"})
	req.NoError(err)
	req.Equal(updated, item)
}

func TestItemService_Delete(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIItemRepository(ctrl)
	index := mocks.NewMockIItemIndex(ctrl)
	service := NewItemService(log, repository, index)

	id := uuid.New()
	repository.EXPECT().Delete(id).Return(true, nil)
	index.EXPECT().Remove(id).Return(nil)
	req.NoError(service.Delete(id))

	repository.EXPECT().Delete(id).Return(false, nil)
	req.ErrorIs(service.Delete(id), errors.ErrNotFound)
}

func TestItemService_Search_Skips_Stale_Hits(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIItemRepository(ctrl)
	index := mocks.NewMockIItemIndex(ctrl)
	service := NewItemService(log, repository, index)

	ctx := context.Background()
	live := domain.Item{ID: uuid.New(), Name: "Pen", Description: "Blue ink pen"}
	stale := uuid.New()

	index.EXPECT().Search(ctx, "pen", 10).Return([]uuid.UUID{live.ID, stale}, uint64(2), nil)
	repository.EXPECT().GetByID(live.ID).Return(&live, nil)
	repository.EXPECT().GetByID(stale).Return(nil, nil)

	items, total, err := service.Search(ctx, "pen", 10)
	req.NoError(err)
	req.Equal(uint64(2), total)
	req.Equal([]domain.Item{live}, items)
}

// Full lifecycle against real stores: the concrete scenario a transport
// adapter would drive.
func TestItemService_Lifecycle(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	defer blugeWriter.Close()

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	service := NewItemService(
		log,
		repositories.NewItemRepository(db, log),
		repositories.NewItemIndex(blugeWriter, log),
	)

	// Create
	item, err := service.Create(map[string]string{"name": "Pen", "description": "Blue ink pen"})
	req.NoError(err)
	req.NotEqual(uuid.Nil, item.ID)
	req.True(item.CreatedAt.Equal(item.UpdatedAt))

	// List contains exactly that record
	items, err := service.List()
	req.NoError(err)
	req.Len(items, 1)
	req.Equal(item.ID, items[0].ID)

	// Search finds it
	found, total, err := service.Search(context.Background(), "blue", 10)
	req.NoError(err)
	req.Equal(uint64(1), total)
	req.Len(found, 1)

	// Update refreshes updatedAt, never createdAt
	time.Sleep(time.Millisecond)
	updated, err := service.Update(item.ID, map[string]string{"name": "Pencil", "description": "HB pencil"})
	req.NoError(err)
	req.Equal("Pencil", updated.Name)
	req.True(updated.CreatedAt.Equal(item.CreatedAt))
	req.True(updated.UpdatedAt.After(updated.CreatedAt))

	// Delete, then the id is gone for good
	req.NoError(service.Delete(item.ID))
	_, err = service.Get(item.ID)
	req.ErrorIs(err, errors.ErrNotFound)
	req.ErrorIs(service.Delete(item.ID), errors.ErrNotFound)
}
