package entity

// OrderStatus is the kitchen-facing lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"   // waiting for the kitchen
	StatusPreparing OrderStatus = "PREPARING" // cooking
	StatusReady     OrderStatus = "READY"     // ready to collect
	StatusCompleted OrderStatus = "COMPLETED" // picked up
	StatusCancelled OrderStatus = "CANCELLED"
)

// AllOrderStatuses in lifecycle order; analytics zero-fills counts from it.
var AllOrderStatuses = []OrderStatus{
	StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled,
}

// ParseOrderStatus validates a status string from the outside world.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch st := OrderStatus(s); st {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return st, true
	}
	return "", false
}

// OrderStatusFromStore maps a persisted status string to a status.
// Unknown legacy values recover to PENDING so the order stays visible on
// the staff board instead of silently dropping out of the queue.
func OrderStatusFromStore(s string) OrderStatus {
	if st, ok := ParseOrderStatus(s); ok {
		return st
	}
	return StatusPending
}

// IsTerminal reports whether the order accepts no further transitions.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
