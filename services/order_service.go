package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"chickenpos/entity"

	"github.com/google/uuid"
)

var (
	ErrNotFound   = errors.New("order not found")
	ErrConflict   = errors.New("order already in a terminal status")
	ErrValidation = errors.New("invalid order")
)

// OrderStore is the record store contract: full read, full replace.
type OrderStore interface {
	ReadAll() ([]entity.Order, error)
	WriteAll([]entity.Order) error
}

// EventPublisher receives order events for the display screens.
type EventPublisher interface {
	PublishOrder(event string, order *entity.Order)
}

// OrderService owns the order lifecycle: intake and status progression.
type OrderService struct {
	store  OrderStore
	events EventPublisher
	now    func() time.Time

	mu sync.Mutex // serializes every read-modify-write pair on the store
}

func NewOrderService(store OrderStore) *OrderService {
	return &OrderService{store: store, now: time.Now}
}

// SetEvents attaches the display hub. Without one, mutations still work,
// the screens just fall back to polling.
func (s *OrderService) SetEvents(p EventPublisher) { s.events = p }

type CreateOrderReq struct {
	Items             []entity.OrderItem   `json:"items" binding:"required,min=1"`
	TotalPrice        float64              `json:"total_price"`
	PaymentMethod     entity.PaymentMethod `json:"payment_method" binding:"required"`
	CustomerName      string               `json:"customer_name"`
	EstimatedWaitTime int                  `json:"estimated_wait_time"` // manual override when > 0
}

func validateCreate(req *CreateOrderReq) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: at least one item is required", ErrValidation)
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return fmt.Errorf("%w: invalid quantity for item %q", ErrValidation, it.Name)
		}
		if it.Price < 0 {
			return fmt.Errorf("%w: negative price for item %q", ErrValidation, it.Name)
		}
	}
	if req.TotalPrice < 0 {
		return fmt.Errorf("%w: negative total price", ErrValidation)
	}
	if _, ok := entity.ParsePaymentMethod(string(req.PaymentMethod)); !ok {
		return fmt.Errorf("%w: unknown payment method %q", ErrValidation, req.PaymentMethod)
	}
	return nil
}

// Create validates the request, quotes a wait time, assigns identity and a
// display number, and appends the order to the store.
func (s *OrderService) Create(req *CreateOrderReq) (*entity.Order, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	wait := req.EstimatedWaitTime
	if wait <= 0 {
		wait = EstimateWaitTime(req.Items)
	}

	order := entity.Order{
		ID:                uuid.NewString()[:8],
		OrderNumber:       NextOrderNumber(orders),
		Items:             req.Items,
		TotalPrice:        req.TotalPrice,
		PaymentMethod:     req.PaymentMethod,
		CustomerName:      req.CustomerName,
		Status:            entity.StatusPending,
		CreatedAt:         s.now().Format(time.RFC3339),
		EstimatedWaitTime: wait,
	}

	orders = append(orders, order)
	if err := s.store.WriteAll(orders); err != nil {
		return nil, err
	}

	s.publish("order.created", &order)
	return &order, nil
}

// UpdateStatus moves an order to newStatus. Unknown ids return ErrNotFound;
// orders already COMPLETED or CANCELLED return ErrConflict. Neither case
// touches the store.
func (s *OrderService) UpdateStatus(orderID string, newStatus entity.OrderStatus) (*entity.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders, err := s.store.ReadAll()
	if err != nil {
		return nil, err
	}

	for i := range orders {
		if orders[i].ID != orderID {
			continue
		}
		if orders[i].Status.IsTerminal() {
			return nil, fmt.Errorf("%w: %s", ErrConflict, orders[i].Status)
		}
		orders[i].Status = newStatus
		if err := s.store.WriteAll(orders); err != nil {
			return nil, err
		}
		s.publish("order.status_changed", &orders[i])
		return &orders[i], nil
	}
	return nil, ErrNotFound
}

// List returns every order in store order.
func (s *OrderService) List() ([]entity.Order, error) {
	return s.store.ReadAll()
}

func (s *OrderService) publish(event string, order *entity.Order) {
	if s.events != nil {
		s.events.PublishOrder(event, order)
	}
}
