package repositories

import (
	"context"
	"fmt"

	"cylaba/internal/models"
	"cylaba/internal/store"
)

// ProductRepository defines the interface for product data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	// Update merges patch into the product with the id and returns the
	// result, or ErrNotFound.
	Update(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error)
	Delete(ctx context.Context, id int64) error
}

// StoreProductRepository keeps products in a store collection.
type StoreProductRepository struct {
	products *store.Collection[models.Product]
}

// NewProductRepository creates a repository over the products collection.
func NewProductRepository(products *store.Collection[models.Product]) *StoreProductRepository {
	return &StoreProductRepository{products: products}
}

// GetAll returns all products.
func (r *StoreProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	return r.products.Load(ctx)
}

// Create appends a product.
func (r *StoreProductRepository) Create(ctx context.Context, product *models.Product) error {
	return r.products.Update(ctx, func(products []models.Product) ([]models.Product, error) {
		return append(products, *product), nil
	})
}

// Update modifies the first product with the id. The collection is not
// written when the id is absent.
func (r *StoreProductRepository) Update(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	var updated models.Product
	err := r.products.Update(ctx, func(products []models.Product) ([]models.Product, error) {
		for i := range products {
			if products[i].ID == id {
				patch.Apply(&products[i])
				updated = products[i]
				return products, nil
			}
		}
		return nil, fmt.Errorf("product with ID %d: %w", id, ErrNotFound)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete filters out products with the id and saves the rest.
func (r *StoreProductRepository) Delete(ctx context.Context, id int64) error {
	return r.products.Update(ctx, func(products []models.Product) ([]models.Product, error) {
		kept := products[:0]
		for _, p := range products {
			if p.ID != id {
				kept = append(kept, p)
			}
		}
		return kept, nil
	})
}
