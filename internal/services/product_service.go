package services

import (
	"context"
	"fmt"

	"cylaba/internal/identity"
	"cylaba/internal/models"
	"cylaba/internal/repositories"
	"cylaba/pkg/logger"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo   repositories.ProductRepository
	ids    identity.Assigner
	events EventPublisher
	log    *logger.Logger
}

// NewProductService creates a new ProductService. events may be nil.
func NewProductService(repo repositories.ProductRepository, ids identity.Assigner, events EventPublisher, log *logger.Logger) *ProductService {
	return &ProductService{
		repo:   repo,
		ids:    ids,
		events: events,
		log:    log.WithComponent("products"),
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// CreateProduct assigns an id, fills in the default image and stores the
// product.
func (s *ProductService) CreateProduct(ctx context.Context, product *models.Product) error {
	product.ID = s.ids.Next()
	delete(product.Fields, "id")
	if product.Image == "" {
		product.Image = models.DefaultProductImage
		delete(product.Fields, "image")
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	s.log.Infow("Product created", "product_id", product.ID)
	publish(s.events, s.log, EventProductCreated, product)
	return nil
}

// UpdateProduct merges patch into an existing product.
func (s *ProductService) UpdateProduct(ctx context.Context, id int64, patch models.ProductPatch) (*models.Product, error) {
	product, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}
	s.log.Infow("Product updated", "product_id", id)
	publish(s.events, s.log, EventProductUpdated, product)
	return product, nil
}

// DeleteProduct deletes a product by its ID. An unknown id succeeds.
func (s *ProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	s.log.Infow("Product deleted", "product_id", id)
	publish(s.events, s.log, EventProductDeleted, map[string]any{"id": id})
	return nil
}
