package services

import (
	"fmt"
	"testing"

	"chickenpos/entity"
)

func soldOrder(status entity.OrderStatus, pm entity.PaymentMethod, total float64, createdAt string, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		ID:            "x",
		Items:         items,
		TotalPrice:    total,
		PaymentMethod: pm,
		Status:        status,
		CreatedAt:     createdAt,
	}
}

func TestAnalyticsNoOrders(t *testing.T) {
	sum := ComputeAnalytics(nil)

	if sum.TotalOrders != 0 || sum.TotalRevenue != 0 {
		t.Errorf("totals = %d orders, %.2f revenue, want zeros", sum.TotalOrders, sum.TotalRevenue)
	}
	if sum.AverageOrderValue != 0 || sum.AverageItemsPerOrder != 0 || sum.CancelRate != 0 {
		t.Errorf("averages should be 0 with no orders: %+v", sum)
	}
	if len(sum.StatusCounts) != 5 {
		t.Errorf("status counts should be zero-filled for all 5 statuses, got %v", sum.StatusCounts)
	}
	for st, n := range sum.StatusCounts {
		if n != 0 {
			t.Errorf("status %s count = %d, want 0", st, n)
		}
	}
	if len(sum.PaymentMix) != 3 {
		t.Errorf("payment mix should be zero-filled for all 3 methods, got %v", sum.PaymentMix)
	}
}

func TestAnalyticsExcludesCancelledFromRevenue(t *testing.T) {
	orders := []entity.Order{
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 10, "2025-06-01T12:00:00Z", item("Combo 4", 1)),
		soldOrder(entity.StatusCancelled, entity.PaymentCard, 99, "2025-06-01T13:00:00Z", item("Combo 16", 2)),
	}
	sum := ComputeAnalytics(orders)

	if sum.TotalRevenue != 10 {
		t.Errorf("revenue = %.2f, want 10 (cancelled excluded)", sum.TotalRevenue)
	}
	if sum.StatusCounts[entity.StatusCancelled] != 1 {
		t.Errorf("cancelled count = %d, want 1", sum.StatusCounts[entity.StatusCancelled])
	}
	if sum.PaymentMix[entity.PaymentCard] != 1 {
		t.Errorf("card count = %d, want 1 (payment mix counts cancelled too)", sum.PaymentMix[entity.PaymentCard])
	}
	// Cancelled items must not reach the item totals.
	if sum.AverageItemsPerOrder != 0.5 {
		t.Errorf("avg items per order = %.2f, want 0.50", sum.AverageItemsPerOrder)
	}
	if sum.CancelRate != 50 {
		t.Errorf("cancel rate = %.2f, want 50", sum.CancelRate)
	}
}

func TestAnalyticsAveragesRounding(t *testing.T) {
	orders := []entity.Order{
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 10, "2025-06-01T12:00:00Z", item("Combo 4", 1)),
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 10, "2025-06-01T12:30:00Z", item("Combo 4", 1)),
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 11, "2025-06-01T13:00:00Z", item("Combo 4", 2)),
	}
	sum := ComputeAnalytics(orders)

	if sum.AverageOrderValue != 10.33 {
		t.Errorf("avg order value = %v, want 10.33", sum.AverageOrderValue)
	}
	if sum.AverageItemsPerOrder != 1.33 {
		t.Errorf("avg items per order = %v, want 1.33", sum.AverageItemsPerOrder)
	}
}

func TestAnalyticsHourlyBuckets(t *testing.T) {
	orders := []entity.Order{
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 5, "2025-06-01T18:10:00Z", item("Combo 4", 1)),
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 7, "2025-06-01T12:05:00Z", item("Combo 4", 1)),
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 3, "2025-06-01T18:45:00Z", item("Combo 4", 1)),
	}
	sum := ComputeAnalytics(orders)

	want := []HourlySale{{Hour: 12, Revenue: 7}, {Hour: 18, Revenue: 8}}
	if len(sum.HourlySales) != len(want) {
		t.Fatalf("hourly buckets = %v, want %v", sum.HourlySales, want)
	}
	for i, w := range want {
		if sum.HourlySales[i] != w {
			t.Errorf("hourly[%d] = %+v, want %+v", i, sum.HourlySales[i], w)
		}
	}
}

func TestAnalyticsDailyKeepsLastSevenBuckets(t *testing.T) {
	var orders []entity.Order
	for day := 1; day <= 9; day++ {
		createdAt := fmt.Sprintf("2025-06-%02dT12:00:00Z", day)
		orders = append(orders, soldOrder(entity.StatusCompleted, entity.PaymentCash, float64(day), createdAt, item("Combo 4", 1)))
	}
	sum := ComputeAnalytics(orders)

	if len(sum.DailySales) != 7 {
		t.Fatalf("daily buckets = %d, want 7", len(sum.DailySales))
	}
	if sum.DailySales[0].Date != "2025-06-03" {
		t.Errorf("oldest kept bucket = %s, want 2025-06-03", sum.DailySales[0].Date)
	}
	if sum.DailySales[6].Date != "2025-06-09" {
		t.Errorf("newest bucket = %s, want 2025-06-09", sum.DailySales[6].Date)
	}
}

func TestAnalyticsBadTimestampCountsInTotalsOnly(t *testing.T) {
	orders := []entity.Order{
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 25, "garbage", item("Combo 4", 1)),
	}
	sum := ComputeAnalytics(orders)

	if sum.TotalRevenue != 25 {
		t.Errorf("revenue = %.2f, want 25 (bad timestamp still counts)", sum.TotalRevenue)
	}
	if len(sum.HourlySales) != 0 || len(sum.DailySales) != 0 {
		t.Errorf("bad timestamp should be excluded from buckets: %v %v", sum.HourlySales, sum.DailySales)
	}
}

func TestAnalyticsTopItems(t *testing.T) {
	orders := []entity.Order{
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 10, "2025-06-01T12:00:00Z",
			item("Combo 4", 2), item("Soda", 2), item("Fries", 1)),
		soldOrder(entity.StatusCompleted, entity.PaymentCash, 10, "2025-06-01T13:00:00Z",
			item("Combo 16", 5), item("Combo 8", 1), item("Salad", 1)),
	}
	sum := ComputeAnalytics(orders)

	if len(sum.TopItems) != 5 {
		t.Fatalf("top items = %d entries, want 5", len(sum.TopItems))
	}
	if sum.TopItems[0] != (ItemSale{Name: "Combo 16", Quantity: 5}) {
		t.Errorf("top item = %+v, want Combo 16 x5", sum.TopItems[0])
	}
	// Combo 4 and Soda tie at 2; Combo 4 was seen first.
	if sum.TopItems[1].Name != "Combo 4" || sum.TopItems[2].Name != "Soda" {
		t.Errorf("tie should keep encounter order, got %+v then %+v", sum.TopItems[1], sum.TopItems[2])
	}
}

func TestAnalyticsRecentOrdersLastTenInStoreOrder(t *testing.T) {
	var orders []entity.Order
	for i := 0; i < 12; i++ {
		o := soldOrder(entity.StatusCompleted, entity.PaymentCash, 1, "2025-06-01T12:00:00Z", item("Combo 4", 1))
		o.ID = fmt.Sprintf("order-%02d", i)
		orders = append(orders, o)
	}
	sum := ComputeAnalytics(orders)

	if len(sum.RecentOrders) != 10 {
		t.Fatalf("recent orders = %d, want 10", len(sum.RecentOrders))
	}
	if sum.RecentOrders[0].ID != "order-02" || sum.RecentOrders[9].ID != "order-11" {
		t.Errorf("recent window = %s..%s, want order-02..order-11",
			sum.RecentOrders[0].ID, sum.RecentOrders[9].ID)
	}
}
