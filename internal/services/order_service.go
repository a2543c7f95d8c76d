package services

import (
	"context"
	"fmt"
	"time"

	"cylaba/internal/identity"
	"cylaba/internal/models"
	"cylaba/internal/repositories"
	"cylaba/pkg/logger"
)

// DefaultDateLayout formats order dates as month/day/year.
const DefaultDateLayout = "1/2/2006"

// OrderOptions tunes how orders are stamped.
type OrderOptions struct {
	DateLayout string
	Now        func() time.Time
}

// OrderService handles business logic related to orders.
type OrderService struct {
	repo       repositories.OrderRepository
	ids        identity.Assigner
	events     EventPublisher
	log        *logger.Logger
	dateLayout string
	now        func() time.Time
}

// NewOrderService creates a new OrderService. events may be nil.
func NewOrderService(repo repositories.OrderRepository, ids identity.Assigner, events EventPublisher, log *logger.Logger, opts OrderOptions) *OrderService {
	if opts.DateLayout == "" {
		opts.DateLayout = DefaultDateLayout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &OrderService{
		repo:       repo,
		ids:        ids,
		events:     events,
		log:        log.WithComponent("orders"),
		dateLayout: opts.DateLayout,
		now:        opts.Now,
	}
}

// GetAllOrders retrieves all orders.
func (s *OrderService) GetAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.repo.GetAll(ctx)
}

// CreateOrder stores a new order built from the caller's fields. The id,
// the date and the status are always set by the server.
func (s *OrderService) CreateOrder(ctx context.Context, payload models.Order) (*models.Order, error) {
	order := &models.Order{
		ID:     s.ids.Next(),
		Date:   s.now().Format(s.dateLayout),
		Status: models.OrderStatusNew,
		Fields: payload.Fields,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	s.log.Infow("Order created", "order_id", order.ID)
	publish(s.events, s.log, EventOrderCreated, order)
	return order, nil
}

// DeleteOrder removes the order with the id. An unknown id succeeds without
// removing anything.
func (s *OrderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order %d: %w", id, err)
	}
	s.log.Infow("Order deleted", "order_id", id)
	publish(s.events, s.log, EventOrderDeleted, map[string]any{"id": id})
	return nil
}
