package services

import (
	"math"
	"sort"

	"chickenpos/entity"
)

type HourlySale struct {
	Hour    int     `json:"hour"`
	Revenue float64 `json:"revenue"`
}

type DailySale struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

type ItemSale struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// AnalyticsSummary is the full sales report for the analytics dashboard.
// The bucketed views are ordered arrays: hours ascending, dates ascending
// (last 7 buckets with sales), items by quantity descending.
type AnalyticsSummary struct {
	TotalRevenue         float64                      `json:"total_revenue"`
	TotalOrders          int                          `json:"total_orders"`
	AverageOrderValue    float64                      `json:"average_order_value"`
	AverageItemsPerOrder float64                      `json:"average_items_per_order"`
	CancelRate           float64                      `json:"cancel_rate"`
	StatusCounts         map[entity.OrderStatus]int   `json:"status_counts"`
	PaymentMix           map[entity.PaymentMethod]int `json:"payment_mix"`
	HourlySales          []HourlySale                 `json:"hourly_sales"`
	DailySales           []DailySale                  `json:"daily_sales"`
	TopItems             []ItemSale                   `json:"top_items"`
	RecentOrders         []entity.Order               `json:"recent_orders"`
}

type AnalyticsService struct {
	store OrderStore
}

func NewAnalyticsService(store OrderStore) *AnalyticsService {
	return &AnalyticsService{store: store}
}

func (s *AnalyticsService) Summary() (*AnalyticsSummary, error) {
	orders, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}
	sum := ComputeAnalytics(orders)
	return &sum, nil
}

// ComputeAnalytics reduces the full order history in a single pass.
// CANCELLED orders count toward status counts and payment mix but are
// excluded from revenue and item totals. Orders whose timestamp will not
// parse are skipped by the hourly/daily buckets only.
func ComputeAnalytics(orders []entity.Order) AnalyticsSummary {
	sum := AnalyticsSummary{
		TotalOrders:  len(orders),
		StatusCounts: make(map[entity.OrderStatus]int, len(entity.AllOrderStatuses)),
		PaymentMix:   make(map[entity.PaymentMethod]int, len(entity.AllPaymentMethods)),
		HourlySales:  []HourlySale{},
		DailySales:   []DailySale{},
		TopItems:     []ItemSale{},
		RecentOrders: []entity.Order{},
	}
	for _, st := range entity.AllOrderStatuses {
		sum.StatusCounts[st] = 0
	}
	for _, pm := range entity.AllPaymentMethods {
		sum.PaymentMix[pm] = 0
	}

	hourly := map[int]float64{}
	daily := map[string]float64{}
	itemQty := map[string]int{}
	itemOrder := []string{} // first-seen order, breaks top-item ties
	totalItems := 0

	for _, o := range orders {
		sum.StatusCounts[o.Status]++
		sum.PaymentMix[o.PaymentMethod]++
		if o.Status == entity.StatusCancelled {
			continue
		}

		sum.TotalRevenue += o.TotalPrice
		if created, ok := o.CreatedTime(); ok {
			hourly[created.Hour()] += o.TotalPrice
			daily[created.Format("2006-01-02")] += o.TotalPrice
		}
		for _, it := range o.Items {
			if _, seen := itemQty[it.Name]; !seen {
				itemOrder = append(itemOrder, it.Name)
			}
			itemQty[it.Name] += it.Quantity
			totalItems += it.Quantity
		}
	}

	for hour := 0; hour < 24; hour++ {
		if rev, ok := hourly[hour]; ok {
			sum.HourlySales = append(sum.HourlySales, HourlySale{Hour: hour, Revenue: rev})
		}
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > 7 {
		dates = dates[len(dates)-7:]
	}
	for _, d := range dates {
		sum.DailySales = append(sum.DailySales, DailySale{Date: d, Revenue: daily[d]})
	}

	top := make([]ItemSale, 0, len(itemOrder))
	for _, name := range itemOrder {
		top = append(top, ItemSale{Name: name, Quantity: itemQty[name]})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].Quantity > top[j].Quantity })
	if len(top) > 5 {
		top = top[:5]
	}
	sum.TopItems = top

	recent := orders
	if len(recent) > 10 {
		recent = recent[len(recent)-10:]
	}
	sum.RecentOrders = append(sum.RecentOrders, recent...)

	if sum.TotalOrders > 0 {
		sum.AverageOrderValue = round2(sum.TotalRevenue / float64(sum.TotalOrders))
		sum.AverageItemsPerOrder = round2(float64(totalItems) / float64(sum.TotalOrders))
		cancelled := sum.StatusCounts[entity.StatusCancelled]
		sum.CancelRate = round2(float64(cancelled) / float64(sum.TotalOrders) * 100)
	}
	return sum
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
