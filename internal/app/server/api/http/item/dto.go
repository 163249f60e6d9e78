package item

import (
	"itemstore/internal/app/server/api/envelope"
	"itemstore/internal/domain/item"
)

type listInput struct {
	Page  int    `query:"page" default:"1" example:"1" doc:"Page number, clamped to >= 1"`
	Limit int    `query:"limit" default:"20" example:"20" doc:"Page size, clamped to [1,100]"`
	Sort  string `query:"sort" default:"id" example:"name" doc:"Sort field: id, name, description, createdAt, updatedAt"`
	Order string `query:"order" default:"asc" example:"asc" doc:"Sort order: asc or desc"`
}

type listOutput struct {
	Body envelope.List[item.Item]
}

type findInput struct {
	ID string `path:"id" example:"1" doc:"Item identifier"`
}

type itemOutput struct {
	Body envelope.Single[item.Item]
}

type createInput struct {
	Body createRequest
}

type createRequest struct {
	Data createResource `json:"data"`
}

type createResource struct {
	Type       string           `json:"type" enum:"item" doc:"Resource type, always \"item\""`
	Attributes createAttributes `json:"attributes"`
}

type createAttributes struct {
	Name        string `json:"name" doc:"Item name, required"`
	Description string `json:"description,omitempty" doc:"Item description, defaults to empty"`
}

type updateInput struct {
	ID   string `path:"id" example:"1" doc:"Item identifier"`
	Body updateRequest
}

type updateRequest struct {
	Data updateResource `json:"data"`
}

type updateResource struct {
	Type       string           `json:"type" enum:"item" doc:"Resource type, always \"item\""`
	Attributes updateAttributes `json:"attributes"`
}

// updateAttributes uses pointers so an omitted field and an explicit
// empty string stay distinguishable all the way into the store.
type updateAttributes struct {
	Name        *string `json:"name,omitempty" doc:"New name; omit to leave unchanged"`
	Description *string `json:"description,omitempty" doc:"New description; empty string is a valid value"`
}

type deleteInput struct {
	ID string `path:"id" example:"1" doc:"Item identifier"`
}

type deleteOutput struct{}
