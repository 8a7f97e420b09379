package author

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/utils"
)

const MaxNameLength = 255

// CreateAuthorRequest - POST /api/v1/authors
type CreateAuthorRequest struct {
	Name string  `json:"name"`
	Bio  *string `json:"bio"`
}

func (r *CreateAuthorRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
	)
}

// UpdateAuthorRequest - PUT/PATCH /api/v1/authors/:id
// Nil fields are left unchanged.
type UpdateAuthorRequest struct {
	Name *string `json:"name"`
	Bio  *string `json:"bio"`
}

func (r *UpdateAuthorRequest) Normalize() {
	r.Name = utils.TrimPtr(r.Name)
}

func (r UpdateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Required, validation.RuneLength(1, MaxNameLength))),
	)
}

// ApplyTo copies the present fields onto a.
func (r UpdateAuthorRequest) ApplyTo(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Bio != nil {
		a.Bio = r.Bio
	}
}
