package models

import "time"

type SocialHandles struct {
	Github    string `json:"github,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
}

type PersonalDetails struct {
	Name      string        `json:"name"`
	Title     string        `json:"title"`
	Email     string        `json:"email"`
	Phone     string        `json:"phone"`
	Location  string        `json:"location"`
	Bio       string        `json:"bio"`
	Social    SocialHandles `json:"social"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}
