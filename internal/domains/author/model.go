package author

import (
	"github.com/google/uuid"
)

// Author is a catalog author. Name is unique across authors.
type Author struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Bio  *string   `json:"bio"`
}
