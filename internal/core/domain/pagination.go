package domain

const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageRequest is a 1-based page number and a page size, both already validated.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset is the zero-based row offset of the page.
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}

type Pagination struct {
	CurrentPage int
	TotalPages  int
	PageSize    int
	HasNext     bool
	HasPrev     bool
}

// NewPagination computes page metadata for totalCount matching rows.
func NewPagination(totalCount int64, req PageRequest) Pagination {
	totalPages := 0
	if req.PageSize > 0 {
		totalPages = int((totalCount + int64(req.PageSize) - 1) / int64(req.PageSize))
	}
	return Pagination{
		CurrentPage: req.Page,
		TotalPages:  totalPages,
		PageSize:    req.PageSize,
		HasNext:     req.Page < totalPages,
		HasPrev:     req.Page > 1,
	}
}
