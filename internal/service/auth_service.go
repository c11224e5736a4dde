package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"tasklist-backend/internal/auth"
	"tasklist-backend/internal/domain"
	"tasklist-backend/internal/repository"

	"gorm.io/gorm"
)

// Sentinel errors the HTTP layer maps to status codes.
var (
	// ErrInvalidCredentials covers both "no such account" and "wrong
	// password" so login responses cannot be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("user with this email already exists")
	ErrUserNotFound       = errors.New("user not found")
)

// ValidationError marks user-correctable input problems; the message names
// the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// RegisterRequest holds the data needed to create a new account.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest holds login credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResponse is the public representation of an account. It never carries
// the password hash.
type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// AuthService handles registration, login and identity resolution.
type AuthService interface {
	// Register creates an account, hashing the password at rest.
	Register(ctx context.Context, req RegisterRequest) (*UserResponse, error)

	// Login verifies credentials and returns the account on success.
	Login(ctx context.Context, req LoginRequest) (*UserResponse, error)

	// GetUserByID resolves an identity claim to an account. Used by the
	// auth gate and by /auth/me.
	GetUserByID(ctx context.Context, id uint) (*UserResponse, error)
}

type authService struct {
	users repository.UserRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

func (s *authService) Register(ctx context.Context, req RegisterRequest) (*UserResponse, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))

	if name == "" {
		return nil, &ValidationError{Field: "name", Message: "Please provide a name"}
	}
	if len(name) > 50 {
		return nil, &ValidationError{Field: "name", Message: "Name cannot be more than 50 characters"}
	}
	if !emailPattern.MatchString(email) {
		return nil, &ValidationError{Field: "email", Message: "Please provide a valid email"}
	}
	if len(req.Password) < 6 {
		return nil, &ValidationError{Field: "password", Message: "Password must be at least 6 characters"}
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		// A failing hashing primitive is a configuration problem, not a
		// user error.
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	// The unique index on email arbitrates concurrent registrations; a
	// query-then-insert check alone would race.
	err = s.users.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		log.Printf("Error creating user in repository: %v", err)
		return nil, errors.New("failed to create user")
	}

	return &UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *authService) Login(ctx context.Context, req LoginRequest) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email: %v", err)
		return nil, errors.New("failed to look up user")
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return &UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}

func (s *authService) GetUserByID(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		log.Printf("Error fetching user %d from repository: %v", id, err)
		return nil, errors.New("failed to retrieve user")
	}

	return &UserResponse{ID: user.ID, Name: user.Name, Email: user.Email}, nil
}
