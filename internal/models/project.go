package models

import (
	"time"

	"github.com/google/uuid"
)

type Project struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"long_description"`
	Images          []string  `json:"images"`
	Technologies    []string  `json:"technologies"`
	Keywords        []string  `json:"keywords"`
	GithubURL       string    `json:"github_url"`
	LiveURL         string    `json:"live_url"`
	Features        []string  `json:"features"`
	Client          string    `json:"client"`
	Duration        string    `json:"duration"`
	Role            string    `json:"role"`
	Sequence        int       `json:"sequence"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ProjectMetadata is the page-metadata view of a project.
type ProjectMetadata struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Keywords    string  `json:"keywords"`
	Image       *string `json:"image"`
}

// RelatedProject is a project ranked by keyword overlap with another project.
type RelatedProject struct {
	Project
	MatchScore int `json:"match_score"`
}
