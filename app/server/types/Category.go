package types

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type CategoryInput struct {
	Name string `json:"name"`
}

func (r CategoryInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 128)),
	)
}

type SubcategoryInput struct {
	Name string `json:"name"`
}

func (r SubcategoryInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 128)),
	)
}

type SubcategoryInfo struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	CategoryID uuid.UUID `json:"categoryId"`
}

type CategoryInfo struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Subcategories []SubcategoryInfo `json:"subcategories,omitempty"`
}
