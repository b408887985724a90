package repository

import "pracsphere-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user
	Create(user *domain.User) error

	// FindByEmail finds a user by email, returning nil when absent
	FindByEmail(email string) (*domain.User, error)

	// FindByID finds a user by id, returning nil when absent
	FindByID(id string) (*domain.User, error)

	// UpdateName updates only the user's display name
	UpdateName(id, name string) (bool, error)
}
