package models

import (
	"time"

	"github.com/google/uuid"
)

type Skill struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Level       int       `json:"level"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	Active      bool      `json:"active"`
	Sequence    int       `json:"sequence"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
