package dto

type CreateExperienceRequest struct {
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Description string   `json:"description"`
	Skills      []string `json:"skills,omitempty"`
}

func (r CreateExperienceRequest) Validate() error {
	return firstError(
		required(r.Title, "title"),
		required(r.Company, "company"),
		required(r.Period, "period"),
		required(r.Description, "description"),
	)
}

type UpdateExperienceRequest struct {
	Title       *string  `json:"title,omitempty"`
	Company     *string  `json:"company,omitempty"`
	Period      *string  `json:"period,omitempty"`
	Description *string  `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Sequence    *int     `json:"sequence,omitempty"`
}

func (r UpdateExperienceRequest) IsEmpty() bool {
	return r.Title == nil && r.Company == nil && r.Period == nil &&
		r.Description == nil && r.Skills == nil && r.Sequence == nil
}

func (r UpdateExperienceRequest) Validate() error {
	return firstError(
		requiredIfSet(r.Title, "title"),
		requiredIfSet(r.Company, "company"),
		requiredIfSet(r.Period, "period"),
		requiredIfSet(r.Description, "description"),
	)
}

type CreateEducationRequest struct {
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	Field        string   `json:"field"`
	Period       string   `json:"period"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

func (r CreateEducationRequest) Validate() error {
	return firstError(
		required(r.Institution, "institution"),
		required(r.Degree, "degree"),
		required(r.Field, "field"),
		required(r.Period, "period"),
	)
}

type UpdateEducationRequest struct {
	Institution  *string  `json:"institution,omitempty"`
	Degree       *string  `json:"degree,omitempty"`
	Field        *string  `json:"field,omitempty"`
	Period       *string  `json:"period,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Sequence     *int     `json:"sequence,omitempty"`
}

func (r UpdateEducationRequest) IsEmpty() bool {
	return r.Institution == nil && r.Degree == nil && r.Field == nil && r.Period == nil &&
		r.Description == nil && r.Achievements == nil && r.Sequence == nil
}

func (r UpdateEducationRequest) Validate() error {
	return firstError(
		requiredIfSet(r.Institution, "institution"),
		requiredIfSet(r.Degree, "degree"),
		requiredIfSet(r.Field, "field"),
		requiredIfSet(r.Period, "period"),
	)
}
