package repositories

import "kasuwa/internal/models"

// UserRepository defines the interface for user data access.
// Lookup methods return (nil, nil) when no record matches.
type UserRepository interface {
	Create(user *models.User) error
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	GetAll() ([]models.User, error)
}
