// Package pagination implements page/limit windowing over in-memory
// collections and the metadata block exposed in list responses.
package pagination

import (
	"net/url"
	"strconv"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20
	MaxLimit     = 100
	DefaultSort  = "id"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// Params carries the query parameters of a list request.
type Params struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

// Normalize clamps the parameters into their valid ranges and fills in
// defaults. Page is never below 1, limit is clamped to [1, MaxLimit].
func (p Params) Normalize() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	if p.Sort == "" {
		p.Sort = DefaultSort
	}
	if p.Order != OrderDesc {
		p.Order = OrderAsc
	}
	return p
}

// Values serializes the parameters as URL query values, used when
// rebuilding navigation links.
func (p Params) Values() url.Values {
	v := url.Values{}
	v.Set("page", strconv.Itoa(p.Page))
	v.Set("limit", strconv.Itoa(p.Limit))
	v.Set("sort", p.Sort)
	v.Set("order", p.Order)
	return v
}

// Meta is the pagination metadata block of a list response.
type Meta struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// NewMeta computes the metadata for a page over total records.
// An empty collection yields totalPages=0 with both flags false.
// A page beyond the last one keeps hasPrev=true as long as records exist.
func NewMeta(page, limit, total int) Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = (total + limit - 1) / limit
	}
	return Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1 && total > 0,
	}
}

// Slice returns the window of items for the given page. Out-of-range
// pages yield an empty slice, never an error.
func Slice[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
