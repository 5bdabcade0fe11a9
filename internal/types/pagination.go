package types

const (
	DefaultPageSize = 6
	MaxPageSize     = 100
)

// Pagination is a page-number window over a list result
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// NewPagination clamps page and limit to sane values
func NewPagination(page, limit int) Pagination {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return Pagination{Page: page, Limit: limit}
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Meta is attached to paginated responses
type Meta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

func (p Pagination) Meta(total int64) *Meta {
	return &Meta{Page: p.Page, Limit: p.Limit, Total: total}
}
