package types

import (
	"time"

	"github.com/google/uuid"
)

type AttachmentInfo struct {
	ID              uuid.UUID `json:"id"`
	FileName        string    `json:"fileName"`
	ContentType     string    `json:"contentType"`
	Size            int64     `json:"size"`
	AdvertisementID uuid.UUID `json:"advertisementId"`
	Created         time.Time `json:"created"`
}
