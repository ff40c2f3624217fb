package dto

import "errors"

type CreateSkillRequest struct {
	Name        string `json:"name"`
	Level       int    `json:"level"`
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Active      *bool  `json:"active,omitempty"`
}

func (r CreateSkillRequest) Validate() error {
	if err := required(r.Name, "name"); err != nil {
		return err
	}
	if r.Level < 1 || r.Level > 100 {
		return errors.New("level must be between 1 and 100")
	}
	return required(r.Category, "category")
}

type UpdateSkillRequest struct {
	Name        *string `json:"name,omitempty"`
	Level       *int    `json:"level,omitempty"`
	Category    *string `json:"category,omitempty"`
	Description *string `json:"description,omitempty"`
	Image       *string `json:"image,omitempty"`
	Active      *bool   `json:"active,omitempty"`
	Sequence    *int    `json:"sequence,omitempty"`
}

func (r UpdateSkillRequest) IsEmpty() bool {
	return r.Name == nil && r.Level == nil && r.Category == nil && r.Description == nil &&
		r.Image == nil && r.Active == nil && r.Sequence == nil
}

func (r UpdateSkillRequest) Validate() error {
	if err := firstError(requiredIfSet(r.Name, "name"), requiredIfSet(r.Category, "category")); err != nil {
		return err
	}
	if r.Level != nil && (*r.Level < 1 || *r.Level > 100) {
		return errors.New("level must be between 1 and 100")
	}
	return nil
}
