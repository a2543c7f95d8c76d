package services_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cylaba/internal/repositories"
	"cylaba/internal/services"
	"cylaba/pkg/logger"
)

func TestSchoolService_CreateSchool(t *testing.T) {
	mockRepo := new(MockSchoolRepository)
	mockMQ := new(MockPublisher)
	service := services.NewSchoolService(mockRepo, mockMQ, logger.Nop())
	ctx := context.Background()

	mockRepo.On("Add", ctx, "Escuela X").Return(nil).Once()
	mockMQ.On("Publish", services.EventSchoolCreated, mock.Anything).Return(nil).Once()
	assert.NoError(t, service.CreateSchool(ctx, "Escuela X"))

	mockRepo.On("Add", ctx, "Escuela X").Return(fmt.Errorf("school %q: %w", "Escuela X", repositories.ErrDuplicate)).Once()
	err := service.CreateSchool(ctx, "Escuela X")
	assert.ErrorIs(t, err, repositories.ErrDuplicate)

	mockRepo.AssertExpectations(t)
	mockMQ.AssertExpectations(t)
}

func TestSchoolService_CreateSchoolEmptyName(t *testing.T) {
	mockRepo := new(MockSchoolRepository)
	service := services.NewSchoolService(mockRepo, nil, logger.Nop())

	err := service.CreateSchool(context.Background(), "")
	assert.ErrorIs(t, err, services.ErrInvalidInput)
	mockRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSchoolService_DeleteSchool(t *testing.T) {
	mockRepo := new(MockSchoolRepository)
	service := services.NewSchoolService(mockRepo, nil, logger.Nop())
	ctx := context.Background()

	mockRepo.On("DeleteAt", ctx, 1).Return(nil).Once()
	assert.NoError(t, service.DeleteSchool(ctx, 1))

	mockRepo.On("DeleteAt", ctx, 5).Return(fmt.Errorf("school at index 5: %w", repositories.ErrNotFound)).Once()
	assert.ErrorIs(t, service.DeleteSchool(ctx, 5), repositories.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
