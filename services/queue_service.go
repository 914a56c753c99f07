package services

import (
	"time"

	"chickenpos/entity"
)

// QueueStats is the live load figure shown on the customer display: how
// long a newly placed order should expect to wait, not a per-order promise.
type QueueStats struct {
	ActiveOrdersCount      int `json:"active_orders_count"`
	TotalEstimatedWaitTime int `json:"total_estimated_wait_time"`
}

type QueueService struct {
	store OrderStore
	now   func() time.Time
}

func NewQueueService(store OrderStore) *QueueService {
	return &QueueService{store: store, now: time.Now}
}

func (s *QueueService) Stats() (*QueueStats, error) {
	orders, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	stats := ComputeQueueStats(orders, s.now())
	return &stats, nil
}

// ComputeQueueStats derives the queue wait from the active set (PENDING and
// PREPARING). PREPARING orders get credit for elapsed cook time; the 0.7
// factor models the kitchen working several orders at once, plus a flat
// 5 minute buffer. Orders whose timestamp will not parse count at their
// full estimate rather than failing the computation.
func ComputeQueueStats(orders []entity.Order, now time.Time) QueueStats {
	var stats QueueStats
	totalRemaining := 0

	for _, o := range orders {
		switch o.Status {
		case entity.StatusPending:
			stats.ActiveOrdersCount++
			totalRemaining += o.EstimatedWaitTime
		case entity.StatusPreparing:
			stats.ActiveOrdersCount++
			remaining := o.EstimatedWaitTime
			if created, ok := o.CreatedTime(); ok {
				elapsed := int(now.Sub(created).Minutes())
				remaining = o.EstimatedWaitTime - elapsed
				if remaining < 0 {
					remaining = 0
				}
			}
			totalRemaining += remaining
		}
	}

	if stats.ActiveOrdersCount == 0 {
		return stats
	}

	wait := int(float64(totalRemaining)*0.7) + 5
	if wait < 0 {
		wait = 0
	}
	stats.TotalEstimatedWaitTime = wait
	return stats
}
