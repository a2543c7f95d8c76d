package services

import (
	"context"
	"fmt"

	"cylaba/internal/repositories"
	"cylaba/pkg/logger"
)

// SchoolService handles business logic related to schools.
type SchoolService struct {
	repo   repositories.SchoolRepository
	events EventPublisher
	log    *logger.Logger
}

// NewSchoolService creates a new SchoolService. events may be nil.
func NewSchoolService(repo repositories.SchoolRepository, events EventPublisher, log *logger.Logger) *SchoolService {
	return &SchoolService{
		repo:   repo,
		events: events,
		log:    log.WithComponent("schools"),
	}
}

// GetAllSchools returns school names in stored order.
func (s *SchoolService) GetAllSchools(ctx context.Context) ([]string, error) {
	return s.repo.GetAll(ctx)
}

// CreateSchool adds a school name. Empty names are rejected with
// ErrInvalidInput, existing ones with repositories.ErrDuplicate.
func (s *SchoolService) CreateSchool(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("%w: school name is required", ErrInvalidInput)
	}
	if err := s.repo.Add(ctx, name); err != nil {
		return fmt.Errorf("failed to add school: %w", err)
	}
	s.log.Infow("School added", "school", name)
	publish(s.events, s.log, EventSchoolCreated, map[string]any{"name": name})
	return nil
}

// DeleteSchool removes the school at the zero-based index. Positions shift
// after every delete, so callers must address the list they last read.
func (s *SchoolService) DeleteSchool(ctx context.Context, index int) error {
	if err := s.repo.DeleteAt(ctx, index); err != nil {
		return fmt.Errorf("failed to delete school: %w", err)
	}
	s.log.Infow("School deleted", "index", index)
	publish(s.events, s.log, EventSchoolDeleted, map[string]any{"index": index})
	return nil
}
