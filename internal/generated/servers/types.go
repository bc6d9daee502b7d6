// Package servers holds the wire types and echo bindings of the delivery API
// described by api/openapi.yaml.
package servers

import (
	"time"
)

// Defines values for DeliveryStatus.
const (
	DELIVERED  DeliveryStatus = "DELIVERED"
	DISPATCHED DeliveryStatus = "DISPATCHED"
	INTRANSIT  DeliveryStatus = "IN_TRANSIT"
	PENDING    DeliveryStatus = "PENDING"
	RETURNED   DeliveryStatus = "RETURNED"
)

// Delivery defines model for Delivery.
type Delivery struct {
	Address     string         `json:"address"`
	Courier     *string        `json:"courier,omitempty"`
	DeliveredAt *time.Time     `json:"deliveredAt,omitempty"`
	Id          *string        `json:"id,omitempty"`
	OrderNumber string         `json:"orderNumber"`
	Recipient   string         `json:"recipient"`
	ScheduledAt *time.Time     `json:"scheduledAt,omitempty"`
	Status      DeliveryStatus `json:"status"`
}

// DeliveryStatus defines model for DeliveryStatus.
type DeliveryStatus string

// Problem defines model for Problem.
type Problem struct {
	Detail     string `json:"detail,omitempty"`
	EntityName string `json:"entityName,omitempty"`
	ErrorKey   string `json:"errorKey,omitempty"`
	Message    string `json:"message,omitempty"`
	Params     string `json:"params,omitempty"`
	Status     int    `json:"status"`
	Title      string `json:"title"`
	Type       string `json:"type,omitempty"`
}

// GetAllDeliveriesParams defines parameters for GetAllDeliveries.
type GetAllDeliveriesParams struct {
	Page *int      `form:"page,omitempty" json:"page,omitempty"`
	Size *int      `form:"size,omitempty" json:"size,omitempty"`
	Sort *[]string `form:"sort,omitempty" json:"sort,omitempty"`
}

// CreateDeliveryJSONRequestBody defines body for CreateDelivery for application/json ContentType.
type CreateDeliveryJSONRequestBody = Delivery

// UpdateDeliveryJSONRequestBody defines body for UpdateDelivery for application/json ContentType.
type UpdateDeliveryJSONRequestBody = Delivery
