package services

import "chickenpos/entity"

// NextOrderNumber picks the display number for a new order: one past the
// number of the last stored order, rolling over from 99 back to 1. It
// repeats across history and must never be used as a lookup key.
func NextOrderNumber(orders []entity.Order) int {
	if len(orders) == 0 {
		return 1
	}
	next := orders[len(orders)-1].OrderNumber + 1
	if next > 99 {
		return 1
	}
	return next
}
