// Package auth registers and authenticates users and issues the session
// tokens the cart endpoints require.
package auth

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Gr10greesh/E-commerce/models"
	"github.com/Gr10greesh/E-commerce/store"
)

var (
	ErrEmailTaken    = errors.New("existing user found with same email address")
	ErrPhoneTaken    = errors.New("existing user found with same phone number")
	ErrWrongPassword = errors.New("incorrect password")
)

// UserStore is the slice of the credential store the service needs.
type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByPhone(ctx context.Context, phone string) (*models.User, error)
}

type Service struct {
	users    UserStore
	secret   []byte
	tokenTTL time.Duration
}

func NewService(users UserStore, secret []byte, tokenTTL time.Duration) *Service {
	return &Service{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register creates a user and returns a session token bound to it. Email
// uniqueness is checked before phone uniqueness.
func (s *Service) Register(ctx context.Context, phone, email, password string) (string, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}
	if _, err := s.users.FindByPhone(ctx, phone); err == nil {
		return "", ErrPhoneTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user := &models.User{
		PhoneNumber: phone,
		Email:       email,
		Password:    string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}
	return GenerateToken(user.ID, s.secret, s.tokenTTL)
}

// Authenticate verifies email and password and returns a session token for
// the existing user. An unknown email surfaces as store.ErrNotFound.
func (s *Service) Authenticate(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", ErrWrongPassword
	}
	return GenerateToken(user.ID, s.secret, s.tokenTTL)
}
