// Package pagination holds the page parameters of the upstream-paged coin list.
package pagination

// MaxPerPage is the largest page the market API serves.
const MaxPerPage = 250

// PageRequest holds pagination parameters parsed from query strings.
type PageRequest struct {
	Page    int `form:"page" binding:"omitempty,min=1"`
	PerPage int `form:"per_page" binding:"omitempty,min=1,max=250"`
}

// Defaults fills in default values when page or per_page are not provided.
func (p *PageRequest) Defaults(perPage int) {
	if p.Page == 0 {
		p.Page = 1
	}
	if p.PerPage == 0 {
		p.PerPage = perPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// PageResponse wraps one page of items with metadata. The upstream API does
// not report totals, so HasMore is a guess: a full page may have a successor.
type PageResponse[T any] struct {
	Data    []T  `json:"data"`
	Page    int  `json:"page"`
	PerPage int  `json:"per_page"`
	Count   int  `json:"count"`
	HasMore bool `json:"has_more"`
}

// NewPageResponse creates a PageResponse for data. fetched is the number of
// items the upstream page held before any local filtering.
func NewPageResponse[T any](data []T, page, perPage, fetched int) PageResponse[T] {
	if data == nil {
		data = []T{}
	}
	return PageResponse[T]{
		Data:    data,
		Page:    page,
		PerPage: perPage,
		Count:   len(data),
		HasMore: fetched >= perPage,
	}
}
