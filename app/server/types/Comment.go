package types

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/google/uuid"
)

type CommentInput struct {
	Text string `json:"text"`
}

func (r CommentInput) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Text, validation.Required, validation.Length(1, 2048)),
	)
}

type CommentInfo struct {
	ID              uuid.UUID `json:"id"`
	Text            string    `json:"text"`
	UserID          uuid.UUID `json:"userId"`
	Nickname        string    `json:"nickname"`
	AdvertisementID uuid.UUID `json:"advertisementId"`
	Created         time.Time `json:"created"`
}
