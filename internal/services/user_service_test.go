package services_test

import (
	"testing"

	"kasuwa/internal/apperrors"
	"kasuwa/internal/models"
	"kasuwa/internal/services"

	"github.com/stretchr/testify/assert"
)

func TestUserService_GetUserByID(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	expected := &models.User{ID: "user-1", FirstName: "Ada", LastName: "Obi"}
	mockRepo.On("GetByID", "user-1").Return(expected, nil).Once()

	user, err := service.GetUserByID("user-1")
	assert.NoError(t, err)
	assert.Equal(t, expected, user)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUserByID_NotFound(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	mockRepo.On("GetByID", "missing").Return(nil, nil).Once()

	user, err := service.GetUserByID("missing")
	assert.Nil(t, user)
	appErr, ok := apperrors.As(err)
	assert.True(t, ok)
	assert.Equal(t, 404, appErr.Status)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetAllUsers(t *testing.T) {
	mockRepo := new(MockUserRepository)
	service := services.NewUserService(mockRepo)

	expected := []models.User{{ID: "user-1"}, {ID: "user-2"}}
	mockRepo.On("GetAll").Return(expected, nil).Once()

	users, err := service.GetAllUsers()
	assert.NoError(t, err)
	assert.Len(t, users, 2)
	mockRepo.AssertExpectations(t)
}
