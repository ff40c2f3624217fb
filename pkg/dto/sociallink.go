package dto

type CreateSocialLinkRequest struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	Active   *bool  `json:"active,omitempty"`
}

func (r CreateSocialLinkRequest) Validate() error {
	return firstError(
		required(r.Platform, "platform"),
		required(r.URL, "url"),
		required(r.Icon, "icon"),
	)
}

type UpdateSocialLinkRequest struct {
	Platform *string `json:"platform,omitempty"`
	URL      *string `json:"url,omitempty"`
	Icon     *string `json:"icon,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Order    *int    `json:"order,omitempty"`
}

func (r UpdateSocialLinkRequest) IsEmpty() bool {
	return r.Platform == nil && r.URL == nil && r.Icon == nil && r.Active == nil && r.Order == nil
}

func (r UpdateSocialLinkRequest) Validate() error {
	return firstError(
		requiredIfSet(r.Platform, "platform"),
		requiredIfSet(r.URL, "url"),
		requiredIfSet(r.Icon, "icon"),
	)
}
