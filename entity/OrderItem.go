package entity

// OrderItem is one line of an order. Name is free text off the menu board
// ("Combo 4", "Familiar 16"); the wait-time estimator pattern-matches it.
type OrderItem struct {
	Name            string  `json:"name"`
	Quantity        int     `json:"quantity"`
	Price           float64 `json:"price"`
	PrepTimeMinutes *int    `json:"prepTimeMinutes,omitempty"` // per-item override from the menu, when set
}
