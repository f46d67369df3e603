package models

import (
	"time"

	"github.com/google/uuid"
)

type OrderType string

const (
	OrderTypeDineIn   OrderType = "Dine In"
	OrderTypeTakeAway OrderType = "Take Away"
)

func (t OrderType) IsValid() bool {
	return t == OrderTypeDineIn || t == OrderTypeTakeAway
}

type OrderStatus string

const (
	StatusOpen      OrderStatus = "Open"
	StatusPending   OrderStatus = "Pending"
	StatusCompleted OrderStatus = "Completed"
	StatusClosed    OrderStatus = "Closed"
	StatusCancelled OrderStatus = "Cancelled"
)

// OrderItem is a line entry within an order. It has no identity outside
// its parent order; the price is resolved from the catalog at computation
// time, never cached here.
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
	Notes     string `json:"notes,omitempty"`
}

type Order struct {
	ID            uuid.UUID   `json:"id"`
	CustomerName  string      `json:"customer_name"`
	OrderNumber   string      `json:"order_number"`
	TableNumber   string      `json:"table_number,omitempty"`
	OrderType     OrderType   `json:"order_type"`
	Items         []OrderItem `json:"items"`
	Status        OrderStatus `json:"status"`
	Subtotal      float64     `json:"subtotal"`
	Tax           float64     `json:"tax"`
	Total         float64     `json:"total"`
	Discount      float64     `json:"discount,omitempty"`
	PaymentMethod string      `json:"payment_method,omitempty"`
	CreatedAt     time.Time   `json:"created_at"`
	OrderedAt     *time.Time  `json:"ordered_at,omitempty"`
	IsPaid        bool        `json:"is_paid"`
}

// Item returns the line entry for productID, or nil when absent.
func (o *Order) Item(productID string) *OrderItem {
	for i := range o.Items {
		if o.Items[i].ProductID == productID {
			return &o.Items[i]
		}
	}
	return nil
}

// Clone returns a copy of the order with its own items slice, so callers
// holding the copy cannot reach back into the original.
func (o Order) Clone() Order {
	items := make([]OrderItem, len(o.Items))
	copy(items, o.Items)
	o.Items = items
	return o
}
