package ports

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListOptions carries the generic query-shaping parameters shared by every
// list endpoint: a raw filter map (reserved params already stripped), a field
// projection, a sort spec, and pagination.
//
// Filter values may be nested maps using bare comparison keywords as keys
// (gt, gte, lt, lte, in); the store layer rewrites those into operator form.
type ListOptions struct {
	Filter map[string]any
	Select []string // field projection; empty = all fields
	Sort   []string // e.g. ["-createdAt", "hourlyRate"]; empty = resource default
	Page   int
	Limit  int
}

// Normalized returns a copy with page and limit defaulted.
func (o ListOptions) Normalized() ListOptions {
	if o.Page < 1 {
		o.Page = DefaultPage
	}
	if o.Limit < 1 {
		o.Limit = DefaultLimit
	}
	return o
}

// Skip returns the number of documents to skip for the requested page.
func (o ListOptions) Skip() int {
	return (o.Page - 1) * o.Limit
}

// PageRef points at an adjacent page in a paginated listing.
type PageRef struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Pagination is the next/prev block of the response envelope.
type Pagination struct {
	Next *PageRef `json:"next,omitempty"`
	Prev *PageRef `json:"prev,omitempty"`
}

// NewPagination computes next/prev links for a page of the given total.
//
// Total is the unfiltered collection count: the links are computed against
// collection size, not the filtered result count (see DESIGN.md).
func NewPagination(page, limit int, total int64) Pagination {
	var p Pagination
	skip := (page - 1) * limit
	if int64(skip+limit) < total {
		p.Next = &PageRef{Page: page + 1, Limit: limit}
	}
	if skip > 0 {
		p.Prev = &PageRef{Page: page - 1, Limit: limit}
	}
	return p
}

// ListMeta accompanies a page of results in the response envelope.
type ListMeta struct {
	Count      int
	Pagination Pagination
}
