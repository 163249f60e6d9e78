package health

import (
	"itemstore/internal/app/server/api/envelope"
)

// Status is the health payload inside the response envelope.
type Status struct {
	Status string `json:"status" example:"ok" doc:"Health status of the service"`
	Uptime int64  `json:"uptime" example:"42" doc:"Process uptime in seconds"`
}

type Input struct{}

type Output struct {
	Body envelope.Single[Status]
}
