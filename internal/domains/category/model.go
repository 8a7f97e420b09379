package category

import (
	"github.com/google/uuid"
)

// Category groups books. Name is unique across categories.
type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
}
