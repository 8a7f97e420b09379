package category

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/shared/utils"
)

const MaxNameLength = 255

// CreateCategoryRequest - POST /api/v1/categories
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func (r *CreateCategoryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

func (r CreateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.RuneLength(1, MaxNameLength)),
	)
}

// UpdateCategoryRequest - PUT/PATCH /api/v1/categories/:id
type UpdateCategoryRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (r *UpdateCategoryRequest) Normalize() {
	r.Name = utils.TrimPtr(r.Name)
}

func (r UpdateCategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.When(r.Name != nil, validation.Required, validation.RuneLength(1, MaxNameLength))),
	)
}

func (r UpdateCategoryRequest) ApplyTo(c *Category) {
	if r.Name != nil {
		c.Name = *r.Name
	}
	if r.Description != nil {
		c.Description = r.Description
	}
}
