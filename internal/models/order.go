package models

import (
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// ValidOrderStatuses returns the accepted status values in sorted order,
// suitable for error messages.
func ValidOrderStatuses() []string {
	return []string{
		string(OrderStatusCancelled),
		string(OrderStatusDelivered),
		string(OrderStatusPending),
		string(OrderStatusProcessing),
		string(OrderStatusShipped),
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}

	return false
}

func ValidOrderStatusList() string {
	return strings.Join(ValidOrderStatuses(), ", ")
}

// OrderItem is a permanent snapshot of the product at order time. Product
// name and price are denormalized on purpose: the order must stay a
// historically accurate record even if the product is renamed, repriced or
// deleted later.
type OrderItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type Order struct {
	ID        int64       `json:"id"`
	SessionID string      `json:"session_id"`
	Status    OrderStatus `json:"status"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"created_at"`
	Items     []OrderItem `json:"items"`
}

type CreateOrderRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
