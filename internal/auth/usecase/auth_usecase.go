package usecase

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"pracsphere-backend/internal/auth/domain"
	"pracsphere-backend/internal/auth/dto"
	"pracsphere-backend/internal/auth/repository"
	"pracsphere-backend/pkg/config"
)

var (
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials covers unknown email, missing hash and password
	// mismatch alike, so callers cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidSession     = errors.New("invalid or expired session")
	ErrUserNotFound       = errors.New("user not found")
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	config   *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		config:   cfg,
	}
}

func (u *authUsecase) Signup(req *dto.SignupRequest) (*dto.Identity, error) {
	email := normalizeEmail(req.Email)

	existing, err := u.userRepo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashed, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hashed,
		Name:         req.Name,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return identityOf(user), nil
}

func (u *authUsecase) Login(req *dto.LoginRequest) (*dto.Identity, string, error) {
	user, err := u.userRepo.FindByEmail(normalizeEmail(req.Email))
	if err != nil {
		return nil, "", err
	}
	if user == nil || user.PasswordHash == "" {
		return nil, "", ErrInvalidCredentials
	}
	if !repository.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := u.generateSessionToken(user)
	if err != nil {
		return nil, "", err
	}

	return identityOf(user), token, nil
}

func (u *authUsecase) ValidateSession(tokenString string) (*dto.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidSession
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidSession
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return nil, ErrInvalidSession
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidSession
	}

	return identityOf(user), nil
}

func (u *authUsecase) UpdateProfile(userID, name string) error {
	matched, err := u.userRepo.UpdateName(userID, name)
	if err != nil {
		return err
	}
	if !matched {
		return ErrUserNotFound
	}
	return nil
}

func (u *authUsecase) generateSessionToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(u.config.SessionExpiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(u.config.JWTSecret))
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func identityOf(user *domain.User) *dto.Identity {
	return &dto.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
	}
}
