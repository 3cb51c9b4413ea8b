package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type AdvertisementInput struct {
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	Price         int64     `json:"price"`
	SubcategoryID uuid.UUID `json:"subcategoryId"`
}

func (r AdvertisementInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 256)),
		validation.Field(&r.Text, validation.Required),
		validation.Field(&r.Price, validation.Min(0)),
		validation.Field(&r.SubcategoryID, validation.By(uuidRequired)),
	)
}

type AdvertisementInfo struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Text          string    `json:"text"`
	Price         int64     `json:"price"`
	UserID        uuid.UUID `json:"userId"`
	Nickname      string    `json:"nickname"`
	SubcategoryID uuid.UUID `json:"subcategoryId"`
	Created       time.Time `json:"created"`
	Updated       time.Time `json:"updated"`
}

type AdvertisementListResponse struct {
	Limit   int                 `json:"limit"`
	PageMax int64               `json:"pageMax"`
	List    []AdvertisementInfo `json:"list"`
}
