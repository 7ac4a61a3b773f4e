package types

type PaginationParams struct {
	Page     int `form:"page,default=1" binding:"gte=1"`
	PageSize int `form:"page_size,default=5" binding:"gte=5,lte=100"`
}

func (p PaginationParams) Skip() int {
	return (p.Page - 1) * p.PageSize
}

func (p PaginationParams) Limit() int {
	return p.PageSize
}

type PaginationMeta struct {
	Page        int   `json:"page"`
	PageSize    int   `json:"page_size"`
	TotalItems  int64 `json:"total_items"`
	TotalPages  int64 `json:"total_pages"`
	HasNext     bool  `json:"has_next"`
	HasPrevious bool  `json:"has_previous"`
}

type PaginatedResponse[T any] struct {
	Items []T            `json:"items"`
	Meta  PaginationMeta `json:"meta"`
}

// NewPaginatedResponse assembles the list envelope. total_pages is
// ceil(total/page_size), zero when the collection is empty.
func NewPaginatedResponse[T any](items []T, total int64, p PaginationParams) PaginatedResponse[T] {
	var totalPages int64
	if total > 0 {
		totalPages = (total + int64(p.PageSize) - 1) / int64(p.PageSize)
	}
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Items: items,
		Meta: PaginationMeta{
			Page:        p.Page,
			PageSize:    p.PageSize,
			TotalItems:  total,
			TotalPages:  totalPages,
			HasNext:     int64(p.Page) < totalPages,
			HasPrevious: p.Page > 1,
		},
	}
}
