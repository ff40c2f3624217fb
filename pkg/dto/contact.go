package dto

import (
	"errors"

	"github.com/hafiz-aliAwj/portfolio/internal/models"
)

type CreateContactRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Message     string `json:"message"`
	ContactType string `json:"contact_type"`
	Budget      string `json:"budget,omitempty"`
	Timeline    string `json:"timeline,omitempty"`
	ProjectType string `json:"project_type,omitempty"`
}

func (r CreateContactRequest) Validate() error {
	if err := firstError(
		required(r.Name, "name"),
		required(r.Email, "email"),
		required(r.Message, "message"),
		required(r.ContactType, "contact_type"),
	); err != nil {
		return err
	}
	if r.ContactType != models.ContactTypeMessage && r.ContactType != models.ContactTypeQuote {
		return errors.New("contact_type must be message or quote")
	}
	return nil
}

type UpdateContactStatusRequest struct {
	Status string `json:"status"`
}

func (r UpdateContactStatusRequest) Validate() error {
	switch r.Status {
	case models.ContactStatusNew, models.ContactStatusRead, models.ContactStatusReplied, models.ContactStatusArchived:
		return nil
	case "":
		return errors.New("status is required")
	default:
		return errors.New("invalid status")
	}
}

type CreateVisitorLogRequest struct {
	Page     string  `json:"page"`
	Referrer string  `json:"referrer,omitempty"`
	Email    *string `json:"email,omitempty"`
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

type ContactListResponse struct {
	Contacts   []models.ContactMessage `json:"contacts"`
	Pagination Pagination              `json:"pagination"`
}

type VisitorLogListResponse struct {
	Logs       []models.VisitorLog `json:"logs"`
	Pagination Pagination          `json:"pagination"`
}
