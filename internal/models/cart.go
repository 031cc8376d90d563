package models

import "time"

// CartItem is the client-facing view of one cart line. Name, price and
// subtotal come from the live product row, not a snapshot.
type CartItem struct {
	ID          int64   `json:"id"`
	ProductID   int64   `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type Cart struct {
	ID        int64      `json:"id"`
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
	Total     float64    `json:"total"`
	CreatedAt time.Time  `json:"created_at"`
}

type AddItemRequest struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity"   validate:"required,gt=0"`
}

// Quantity is a pointer so that an explicit zero survives decoding; zero or
// negative removes the line.
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
