package dto

// SequenceItem assigns a display position to one record. In the positional
// social-link form only ID is read.
type SequenceItem struct {
	ID       string `json:"id"`
	Sequence int    `json:"sequence"`
}

type UpdateSequenceRequest struct {
	Sequences []SequenceItem `json:"sequences"`
}

// UpdateSocialLinkSequenceRequest accepts either explicit sequences or the
// positional "sequence" list where array position becomes the new order.
type UpdateSocialLinkSequenceRequest struct {
	Sequences []SequenceItem `json:"sequences"`
	Sequence  []SequenceItem `json:"sequence"`
}

type SequenceResponse struct {
	Message string `json:"message"`
	Applied int    `json:"applied"`
	Skipped int    `json:"skipped"`
}
