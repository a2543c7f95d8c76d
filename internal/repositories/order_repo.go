package repositories

import (
	"context"

	"cylaba/internal/models"
	"cylaba/internal/store"
)

// OrderRepository defines the interface for order data access.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	Create(ctx context.Context, order *models.Order) error
	// Delete removes every order with the id. Deleting an absent id is not
	// an error.
	Delete(ctx context.Context, id int64) error
}

// StoreOrderRepository keeps orders in a store collection.
type StoreOrderRepository struct {
	orders *store.Collection[models.Order]
}

// NewOrderRepository creates a repository over the orders collection.
func NewOrderRepository(orders *store.Collection[models.Order]) *StoreOrderRepository {
	return &StoreOrderRepository{orders: orders}
}

// GetAll returns all orders in insertion order.
func (r *StoreOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	return r.orders.Load(ctx)
}

// Create appends an order.
func (r *StoreOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.orders.Update(ctx, func(orders []models.Order) ([]models.Order, error) {
		return append(orders, *order), nil
	})
}

// Delete filters out orders with the id and saves the rest.
func (r *StoreOrderRepository) Delete(ctx context.Context, id int64) error {
	return r.orders.Update(ctx, func(orders []models.Order) ([]models.Order, error) {
		kept := orders[:0]
		for _, o := range orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		return kept, nil
	})
}
