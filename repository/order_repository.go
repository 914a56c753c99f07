package repository

import (
	"encoding/json"

	"chickenpos/entity"

	"gorm.io/gorm"
)

// OrderRow is the persisted shape of an order. Items travel as a JSON text
// column so the row stays flat; enums are stored as their string values.
type OrderRow struct {
	ID                string `gorm:"primaryKey"`
	OrderNumber       int
	Items             string
	TotalPrice        float64
	PaymentMethod     string
	CustomerName      string
	Status            string
	CreatedAt         string
	EstimatedWaitTime int
}

func (OrderRow) TableName() string { return "orders" }

// OrderRepository is the record store: full read, full replace. It is the
// single durable home of all orders; callers own serialization of the
// read-modify-write pair.
type OrderRepository struct{ DB *gorm.DB }

func NewOrderRepository(db *gorm.DB) *OrderRepository { return &OrderRepository{DB: db} }

// ReadAll returns every order in store (insertion) order. Malformed rows
// are recovered with safe defaults — empty item list, CASH, PENDING — so
// one bad legacy row never fails the whole read.
func (r *OrderRepository) ReadAll() ([]entity.Order, error) {
	var rows []OrderRow
	if err := r.DB.Order("rowid").Find(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]entity.Order, 0, len(rows))
	for _, row := range rows {
		items := []entity.OrderItem{}
		if err := json.Unmarshal([]byte(row.Items), &items); err != nil {
			items = []entity.OrderItem{}
		}
		orders = append(orders, entity.Order{
			ID:                row.ID,
			OrderNumber:       row.OrderNumber,
			Items:             items,
			TotalPrice:        row.TotalPrice,
			PaymentMethod:     entity.PaymentMethodFromStore(row.PaymentMethod),
			CustomerName:      row.CustomerName,
			Status:            entity.OrderStatusFromStore(row.Status),
			CreatedAt:         row.CreatedAt,
			EstimatedWaitTime: row.EstimatedWaitTime,
		})
	}
	return orders, nil
}

// WriteAll replaces the whole store with orders, in one transaction.
func (r *OrderRepository) WriteAll(orders []entity.Order) error {
	rows := make([]OrderRow, 0, len(orders))
	for _, o := range orders {
		items, err := json.Marshal(o.Items)
		if err != nil {
			return err
		}
		rows = append(rows, OrderRow{
			ID:                o.ID,
			OrderNumber:       o.OrderNumber,
			Items:             string(items),
			TotalPrice:        o.TotalPrice,
			PaymentMethod:     string(o.PaymentMethod),
			CustomerName:      o.CustomerName,
			Status:            string(o.Status),
			CreatedAt:         o.CreatedAt,
			EstimatedWaitTime: o.EstimatedWaitTime,
		})
	}

	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&OrderRow{}).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.Create(&rows).Error
	})
}
