package dto

import "github.com/hafiz-aliAwj/portfolio/internal/models"

type UpdateDetailsRequest struct {
	Name     string               `json:"name"`
	Title    string               `json:"title"`
	Email    string               `json:"email"`
	Phone    string               `json:"phone,omitempty"`
	Location string               `json:"location,omitempty"`
	Bio      string               `json:"bio,omitempty"`
	Social   models.SocialHandles `json:"social"`
}

func (r UpdateDetailsRequest) Validate() error {
	return firstError(
		required(r.Name, "name"),
		required(r.Title, "title"),
		required(r.Email, "email"),
	)
}
