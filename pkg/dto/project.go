package dto

import "errors"

type CreateProjectRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	LongDescription string   `json:"long_description,omitempty"`
	Images          []string `json:"images"`
	Technologies    []string `json:"technologies"`
	Keywords        []string `json:"keywords,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
	LiveURL         string   `json:"live_url,omitempty"`
	Features        []string `json:"features,omitempty"`
	Client          string   `json:"client,omitempty"`
	Duration        string   `json:"duration,omitempty"`
	Role            string   `json:"role,omitempty"`
}

func (r CreateProjectRequest) Validate() error {
	if err := firstError(required(r.Title, "title"), required(r.Description, "description")); err != nil {
		return err
	}
	if len(r.Images) == 0 {
		return errors.New("images is required")
	}
	if len(r.Technologies) == 0 {
		return errors.New("technologies is required")
	}
	return nil
}

type UpdateProjectRequest struct {
	Title           *string  `json:"title,omitempty"`
	Description     *string  `json:"description,omitempty"`
	LongDescription *string  `json:"long_description,omitempty"`
	Images          []string `json:"images,omitempty"`
	Technologies    []string `json:"technologies,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	GithubURL       *string  `json:"github_url,omitempty"`
	LiveURL         *string  `json:"live_url,omitempty"`
	Features        []string `json:"features,omitempty"`
	Client          *string  `json:"client,omitempty"`
	Duration        *string  `json:"duration,omitempty"`
	Role            *string  `json:"role,omitempty"`
	Sequence        *int     `json:"sequence,omitempty"`
}

func (r UpdateProjectRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.LongDescription == nil &&
		r.Images == nil && r.Technologies == nil && r.Keywords == nil &&
		r.GithubURL == nil && r.LiveURL == nil && r.Features == nil &&
		r.Client == nil && r.Duration == nil && r.Role == nil && r.Sequence == nil
}

func (r UpdateProjectRequest) Validate() error {
	if err := firstError(requiredIfSet(r.Title, "title"), requiredIfSet(r.Description, "description")); err != nil {
		return err
	}
	if r.Images != nil && len(r.Images) == 0 {
		return errors.New("images is required")
	}
	if r.Technologies != nil && len(r.Technologies) == 0 {
		return errors.New("technologies is required")
	}
	return nil
}
