//go:generate go run go.uber.org/mock/mockgen -source=search.go -destination=../mocks/mock_item_index.go -package=mocks
package repositories

import (
	"context"
	"item-lab/domain"
	"log/slog"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
)

type IItemIndex interface {
	Index(item domain.Item) error
	Remove(id uuid.UUID) error
	Search(ctx context.Context, terms string, limit int) ([]uuid.UUID, uint64, error)
}

// ItemIndex maintains a Bluge full-text index over item names and
// descriptions. The index holds derived data only: BadgerDB remains the
// source of truth and the index can always be rebuilt from it.
type ItemIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewItemIndex(writer *bluge.Writer, log *slog.Logger) *ItemIndex {
	return &ItemIndex{writer: writer, log: log}
}

// Index upserts the search document for an item. Keyed by the item id, so
// re-indexing after an update replaces the previous document.
func (i ItemIndex) Index(item domain.Item) error {
	doc := bluge.NewDocument(item.ID.String()).
		AddField(bluge.NewTextField("name", item.Name).StoreValue()).
		AddField(bluge.NewTextField("description", item.Description))
	return i.writer.Update(doc.ID(), doc)
}

// Remove drops the search document for a deleted item.
func (i ItemIndex) Remove(id uuid.UUID) error {
	doc := bluge.NewDocument(id.String())
	return i.writer.Delete(doc.ID())
}

// Search matches terms against name and description and returns the ids of
// the best matches plus the total hit count.
func (i ItemIndex) Search(ctx context.Context, terms string, limit int) ([]uuid.UUID, uint64, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if err := reader.Close(); err != nil {
			i.log.Warn("Closing index reader failed", "error", err)
		}
	}()

	return SearchIDs(ctx, reader, terms, limit)
}

// SearchIDs runs the item query against an already-open reader. Split out
// so read-only tools can search without acquiring the writer lock.
func SearchIDs(ctx context.Context, reader *bluge.Reader, terms string, limit int) ([]uuid.UUID, uint64, error) {
	query := bluge.NewBooleanQuery().AddShould(
		bluge.NewMatchQuery(terms).SetField("name"),
		bluge.NewMatchQuery(terms).SetField("description"),
	)
	request := bluge.NewTopNSearch(limit, query).WithStandardAggregations()

	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, 0, err
	}

	ids := make([]uuid.UUID, 0)
	match, err := iterator.Next()
	for err == nil && match != nil {
		visitErr := match.VisitStoredFields(func(field string, value []byte) bool {
			if field == "_id" {
				if id, parseErr := uuid.ParseBytes(value); parseErr == nil {
					ids = append(ids, id)
				}
			}
			return true
		})
		if visitErr != nil {
			return nil, 0, visitErr
		}
		match, err = iterator.Next()
	}
	if err != nil {
		return nil, 0, err
	}
	return ids, iterator.Aggregations().Count(), nil
}
