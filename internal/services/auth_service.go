package services

import (
	"errors"
	"strings"

	apperrors "github.com/emarifer/go-gin-htmx-todoapp/internal/errors"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/models"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/repository"
	"github.com/emarifer/go-gin-htmx-todoapp/internal/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuthService handles user registration and credential checks.
type AuthService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Email    string
	Password string
	Username string
}

// CreateUser registers a new user. The email is lowercased before the
// uniqueness check and before storage, so uniqueness is case-insensitive.
func (s *AuthService) CreateUser(input RegisterInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	exists, err := s.userRepo.ExistsByEmail(email)
	if err != nil {
		return nil, apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}
	if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, apperrors.E(apperrors.KindStorage, "failed to hash password: %v", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: hash,
		Username:     input.Username,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}

	return user, nil
}

// CheckEmailPassword verifies credentials and returns the matching user.
// Unknown email and wrong password yield the identical error value.
func (s *AuthService) CheckEmailPassword(email, password string) (*models.User, error) {
	user, err := s.userRepo.FindByEmail(strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.E(apperrors.KindStorage, "database error: %v", err)
	}

	if !utils.VerifyPassword(user.PasswordHash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// GetUserByID retrieves a user by ID. A missing user is (nil, nil),
// not an error; only genuine storage failures are reported.
func (s *AuthService) GetUserByID(id string) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperrors.E(apperrors.KindStorage, "error fetching user from database: %v", err)
	}

	return user, nil
}
