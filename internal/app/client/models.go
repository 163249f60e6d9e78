package client

import (
	"fmt"
	"time"

	"itemstore/internal/domain/item"
)

// ListParams are the query parameters of a list request.
type ListParams struct {
	Page  int
	Limit int
	Sort  string
	Order string
}

// Pagination mirrors the pagination block of a list response.
type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

// HealthStatus is the payload of the health endpoint.
type HealthStatus struct {
	Status string `json:"status"`
	Uptime int64  `json:"uptime"`
}

// APIError is a structured error returned by the server.
type APIError struct {
	Code    string           `json:"code"`
	Message string           `json:"message"`
	Details []FieldViolation `json:"details,omitempty"`
}

type FieldViolation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s (%d field violations)", e.Code, e.Message, len(e.Details))
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Wire shapes of the server's response envelope.

type responseMeta struct {
	Timestamp  time.Time   `json:"timestamp"`
	Version    string      `json:"version"`
	RequestID  string      `json:"requestId"`
	Pagination *Pagination `json:"pagination"`
}

type singleEnvelope struct {
	Success bool         `json:"success"`
	Data    item.Item    `json:"data"`
	Meta    responseMeta `json:"meta"`
	Error   *APIError    `json:"error"`
}

type listEnvelope struct {
	Success bool         `json:"success"`
	Data    []item.Item  `json:"data"`
	Meta    responseMeta `json:"meta"`
	Error   *APIError    `json:"error"`
}

type healthEnvelope struct {
	Success bool         `json:"success"`
	Data    HealthStatus `json:"data"`
	Meta    responseMeta `json:"meta"`
	Error   *APIError    `json:"error"`
}

// Request bodies.

type resourceBody[T any] struct {
	Data resource[T] `json:"data"`
}

type resource[T any] struct {
	Type       string `json:"type"`
	Attributes T      `json:"attributes"`
}

type createAttributes struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type updateAttributes struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}
