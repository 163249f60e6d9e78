// Package envelope defines the response wrapper shared by every API
// endpoint: a success flag, the payload, response metadata and, for
// lists, pagination metadata plus navigation links.
package envelope

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"itemstore/internal/pagination"

	"github.com/go-chi/chi/v5/middleware"
)

// Version is the API version stamped into response metadata.
const Version = "1.0.0"

// Meta is attached to every response, success or error.
type Meta struct {
	Timestamp time.Time `json:"timestamp" doc:"Response generation time"`
	Version   string    `json:"version" doc:"API version"`
	RequestID string    `json:"requestId,omitempty" doc:"Correlation identifier"`
}

// Single wraps a single-record payload.
type Single[T any] struct {
	Success bool `json:"success"`
	Data    T    `json:"data"`
	Meta    Meta `json:"meta"`
}

// ListMeta extends the common metadata with the pagination block.
type ListMeta struct {
	Meta
	Pagination pagination.Meta `json:"pagination"`
}

// List wraps a list payload with pagination metadata and links.
type List[T any] struct {
	Success bool     `json:"success"`
	Data    []T      `json:"data"`
	Meta    ListMeta `json:"meta"`
	Links   Links    `json:"links"`
}

// Links holds the navigation URLs of a list response. Next and Prev are
// null when the corresponding page does not exist.
type Links struct {
	Self  string  `json:"self"`
	First string  `json:"first"`
	Last  string  `json:"last"`
	Next  *string `json:"next"`
	Prev  *string `json:"prev"`
}

// NewMeta stamps the metadata for a response generated now, picking up
// the correlation id planted by the RequestID middleware, if any.
func NewMeta(ctx context.Context) Meta {
	return Meta{
		Timestamp: time.Now().UTC(),
		Version:   Version,
		RequestID: middleware.GetReqID(ctx),
	}
}

func NewSingle[T any](ctx context.Context, data T) Single[T] {
	return Single[T]{
		Success: true,
		Data:    data,
		Meta:    NewMeta(ctx),
	}
}

func NewList[T any](ctx context.Context, data []T, meta pagination.Meta, links Links) List[T] {
	return List[T]{
		Success: true,
		Data:    data,
		Meta: ListMeta{
			Meta:       NewMeta(ctx),
			Pagination: meta,
		},
		Links: links,
	}
}

// NewLinks rebuilds the current query with only the page number varied.
// On an empty collection first and last both point at page 1.
func NewLinks(path string, params pagination.Params, meta pagination.Meta) Links {
	lastPage := meta.TotalPages
	if lastPage < 1 {
		lastPage = 1
	}

	links := Links{
		Self:  pageURL(path, params, meta.Page),
		First: pageURL(path, params, 1),
		Last:  pageURL(path, params, lastPage),
	}
	if meta.HasNext {
		next := pageURL(path, params, meta.Page+1)
		links.Next = &next
	}
	if meta.HasPrev {
		prev := pageURL(path, params, meta.Page-1)
		links.Prev = &prev
	}
	return links
}

func pageURL(path string, params pagination.Params, page int) string {
	values := params.Values()
	values.Set("page", strconv.Itoa(page))
	u := url.URL{Path: path, RawQuery: values.Encode()}
	return u.String()
}
