package entity

import "time"

// Order is a single counter order. Everything except Status is fixed at
// creation time; live remaining cook time is always derived, never stored.
type Order struct {
	ID                string        `json:"id"`
	OrderNumber       int           `json:"order_number"` // rolling 1-99 display number, repeats
	Items             []OrderItem   `json:"items"`
	TotalPrice        float64       `json:"total_price"`
	PaymentMethod     PaymentMethod `json:"payment_method"`
	CustomerName      string        `json:"customer_name"`
	Status            OrderStatus   `json:"status"`
	CreatedAt         string        `json:"created_at"`
	EstimatedWaitTime int           `json:"estimated_wait_time"` // minutes, quoted at creation
}

// CreatedTime parses CreatedAt. New orders carry RFC 3339; rows written by
// the old system are naive local time without an offset.
func (o Order) CreatedTime() (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, o.CreatedAt); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", o.CreatedAt, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}
