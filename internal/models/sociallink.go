package models

import (
	"time"

	"github.com/google/uuid"
)

// SocialLink orders by Order rather than Sequence; the column is sort_order.
type SocialLink struct {
	ID        uuid.UUID `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon"`
	Active    bool      `json:"active"`
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
