package domain

import (
	"time"

	"github.com/google/uuid"
)

// Item is one persisted record of the collection. The repository owns the
// id and both timestamps; callers never supply them.
type Item struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ItemDraft holds validated, normalized input: exactly the declared fields,
// already trimmed. It carries no identity, the repository assigns one.
type ItemDraft struct {
	Name        string
	Description string
}
