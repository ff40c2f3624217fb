package services

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
	// MaxPage keeps (Page-1)*Limit well inside a Postgres OFFSET.
	MaxPage          = 1_000_000
)

// PageRequest is a 1-based page window over a newest-first listing.
type PageRequest struct {
	Page  int
	Limit int
}

func (p PageRequest) normalize() PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Page > MaxPage {
		p.Page = MaxPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

func (p PageRequest) offset() int {
	return (p.Page - 1) * p.Limit
}

// PageResult carries the window that was actually served with its total.
type PageResult struct {
	PageRequest
	Total int
}

func (r PageResult) Pages() int {
	if r.Limit == 0 {
		return 0
	}
	return (r.Total + r.Limit - 1) / r.Limit
}
