package dto

import "strconv"

const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// PageRequest carries the caller's pagination choice after normalization.
type PageRequest struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ParsePageRequest normalizes raw query values: absent, non-numeric or
// sub-1 values fall back to page 1 / limit 10.
func ParsePageRequest(page, limit string) PageRequest {
	req := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	if p, err := strconv.Atoi(page); err == nil && p >= 1 {
		req.Page = p
	}
	if l, err := strconv.Atoi(limit); err == nil && l >= 1 {
		req.Limit = l
	}
	return req
}

// Offset is the number of records the paginate stage skips.
func (r PageRequest) Offset() int { return (r.Page - 1) * r.Limit }

// Page is the paginated response envelope. TotalItems counts the filtered
// set before truncation.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int64 `json:"totalPages"`
}

// NewPage builds the envelope; TotalPages is ceil(totalItems/limit).
func NewPage[T any](items []T, req PageRequest, totalItems int64) Page[T] {
	if items == nil {
		items = []T{}
	}
	totalPages := totalItems / int64(req.Limit)
	if totalItems%int64(req.Limit) != 0 {
		totalPages++
	}
	return Page[T]{
		Items:      items,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}
