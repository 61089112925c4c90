package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/darshanbachhav0/Entrepreneur/internal/domain/entity"
	repo "github.com/darshanbachhav0/Entrepreneur/internal/domain/repository"
	"github.com/darshanbachhav0/Entrepreneur/pkg/helpers"
)

// AuthService creates accounts and verifies credentials. Session
// establishment is the handler's job; registering never logs the caller in.
type AuthService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Logger: logger}
}

// Register stores a new user with a bcrypt-hashed password. Email uniqueness
// is not checked here or in the store; a repeated registration wins the next
// login race. Known gap, kept deliberately.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		s.Logger.WithError(err).Error("hash password failed")
		return nil, err
	}
	u := &entity.User{Username: username, Email: email, PasswordHash: hash}
	if err := s.Users.Create(ctx, u); err != nil {
		s.Logger.WithError(err).WithField("email", email).Error("create user failed")
		return nil, err
	}
	s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "username": username}).Info("user registered")
	return u, nil
}

// Authenticate looks the user up by email and verifies the password. Both
// failure modes collapse into ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) {
			s.Logger.WithError(err).Warn("user lookup failed during login")
		}
		return nil, ErrInvalidCredentials
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
