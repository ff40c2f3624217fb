package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	ContactTypeMessage = "message"
	ContactTypeQuote   = "quote"
)

const (
	ContactStatusNew      = "new"
	ContactStatusRead     = "read"
	ContactStatusReplied  = "replied"
	ContactStatusArchived = "archived"
)

type ContactMessage struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	ContactType string    `json:"contact_type"`
	Budget      string    `json:"budget,omitempty"`
	Timeline    string    `json:"timeline,omitempty"`
	ProjectType string    `json:"project_type,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type VisitorLog struct {
	ID        uuid.UUID `json:"id"`
	IPAddress string    `json:"ip_address"`
	UserAgent string    `json:"user_agent"`
	Referrer  string    `json:"referrer"`
	Page      string    `json:"page"`
	Email     *string   `json:"email,omitempty"`
	Name      *string   `json:"name,omitempty"`
	Location  *string   `json:"location,omitempty"`
	VisitDate time.Time `json:"visit_date"`
	CreatedAt time.Time `json:"created_at"`
}
