package models

import (
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Company     string    `json:"company"`
	Period      string    `json:"period"`
	Description string    `json:"description"`
	Skills      []string  `json:"skills"`
	Sequence    int       `json:"sequence"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Education struct {
	ID           uuid.UUID `json:"id"`
	Institution  string    `json:"institution"`
	Degree       string    `json:"degree"`
	Field        string    `json:"field"`
	Period       string    `json:"period"`
	Description  string    `json:"description"`
	Achievements []string  `json:"achievements"`
	Sequence     int       `json:"sequence"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
