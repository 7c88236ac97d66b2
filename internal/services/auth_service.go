package services

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tasktracker/internal/auth"
	"tasktracker/internal/models"
	"tasktracker/internal/password"
	"tasktracker/internal/repository"
)

var (
	ErrMissingFields        = errors.New("required fields are missing")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrPasswordIncorrect    = errors.New("password incorrect")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration and login.
type AuthService struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, jwtSecret []byte) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// RegisterInput represents the required information to create a new user.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user after validating the password against the
// complexity policy. Policy violations are returned as the password
// package's sentinel errors.
//
// The username lookup is only an early exit: under concurrent registration
// the unique index on username is the authority, so a duplicate-key error
// on insert is reported as ErrUsernameTaken as well.
func (s *AuthService) Register(input RegisterInput) error {
	if input.Username == "" || input.Password == "" {
		return ErrMissingFields
	}

	if err := password.Validate(input.Password); err != nil {
		return err
	}

	if _, err := s.userRepo.FindByUsername(input.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ErrFailedToHashPassword
	}

	user := &models.User{
		Username:     input.Username,
		PasswordHash: string(hashedPassword),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns a signed session token.
func (s *AuthService) Login(input LoginInput) (string, error) {
	if input.Username == "" || input.Password == "" {
		return "", ErrMissingFields
	}

	user, err := s.userRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return "", ErrPasswordIncorrect
	}

	token, err := auth.GenerateToken(user.ID, user.Username, s.jwtSecret, auth.TokenLifetime)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	return token, nil
}
