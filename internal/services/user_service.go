package services

import (
	"kasuwa/internal/apperrors"
	"kasuwa/internal/models"
	"kasuwa/internal/repositories"
)

// UserService handles user reads. Password hashes never leave the
// repository layer serialized; the model excludes them from JSON.
type UserService struct {
	repo repositories.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repositories.UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// GetAllUsers retrieves all users.
func (s *UserService) GetAllUsers() ([]models.User, error) {
	return s.repo.GetAll()
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (*models.User, error) {
	if id == "" {
		return nil, apperrors.NewNotFound("User ID not provided")
	}
	user, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NewNotFound("User not found")
	}
	return user, nil
}
