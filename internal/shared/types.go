package shared

import (
	"errors"

	"library-catalog/internal/shared/apperr"
)

const (
	DefaultSkip  = 0
	DefaultLimit = 100
)

// Page is an offset window over an ordered result set.
type Page struct {
	Skip  int
	Limit int
}

func DefaultPage() Page {
	return Page{Skip: DefaultSkip, Limit: DefaultLimit}
}

// Validate rejects negative offsets and limits. There is no upper bound.
func (p Page) Validate() error {
	if p.Skip < 0 {
		return apperr.Invalid("INVALID_SKIP", errors.New("skip must be greater than or equal to 0"))
	}
	if p.Limit < 0 {
		return apperr.Invalid("INVALID_LIMIT", errors.New("limit must be greater than or equal to 0"))
	}
	return nil
}
