package repositories

import (
	"context"
	"fmt"
	"slices"

	"cylaba/internal/store"
)

// SchoolRepository defines the interface for school data access. Schools
// are plain names addressed by position.
type SchoolRepository interface {
	GetAll(ctx context.Context) ([]string, error)
	// Add appends name unless an identical name exists (ErrDuplicate).
	Add(ctx context.Context, name string) error
	// DeleteAt removes the name at index, or returns ErrNotFound.
	DeleteAt(ctx context.Context, index int) error
}

// StoreSchoolRepository keeps school names in a store collection.
type StoreSchoolRepository struct {
	schools *store.Collection[string]
}

// NewSchoolRepository creates a repository over the schools collection.
func NewSchoolRepository(schools *store.Collection[string]) *StoreSchoolRepository {
	return &StoreSchoolRepository{schools: schools}
}

// GetAll returns school names in stored order.
func (r *StoreSchoolRepository) GetAll(ctx context.Context) ([]string, error) {
	return r.schools.Load(ctx)
}

// Add appends a school name. The membership check and the write happen in
// one cycle.
func (r *StoreSchoolRepository) Add(ctx context.Context, name string) error {
	return r.schools.Update(ctx, func(schools []string) ([]string, error) {
		if slices.Contains(schools, name) {
			return nil, fmt.Errorf("school %q: %w", name, ErrDuplicate)
		}
		return append(schools, name), nil
	})
}

// DeleteAt removes the school at the zero-based index.
func (r *StoreSchoolRepository) DeleteAt(ctx context.Context, index int) error {
	return r.schools.Update(ctx, func(schools []string) ([]string, error) {
		if index < 0 || index >= len(schools) {
			return nil, fmt.Errorf("school at index %d: %w", index, ErrNotFound)
		}
		return slices.Delete(schools, index, index+1), nil
	})
}
