package usecase

import (
	"pracsphere-backend/internal/auth/dto"
)

// AuthUsecase defines the credential and session operations
type AuthUsecase interface {
	// Signup registers a new user; the password is hashed before persisting
	Signup(req *dto.SignupRequest) (*dto.Identity, error)

	// Login verifies credentials and issues a signed session token
	Login(req *dto.LoginRequest) (*dto.Identity, string, error)

	// ValidateSession verifies a session token and resolves its user
	ValidateSession(token string) (*dto.Identity, error)

	// UpdateProfile changes the user's display name; email is immutable
	UpdateProfile(userID, name string) error
}
