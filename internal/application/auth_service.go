package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
)

// AuthService handles signup and credential verification. Token issuance
// stays in the handler, which owns cookie delivery.
type AuthService struct {
	Users  repository.UserRepository
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Logger: logger}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Role     entity.Role
}

// Signup registers a new user. The role defaults to "user" when omitted.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if _, err := s.Users.GetByEmail(ctx, in.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = entity.RoleUser
	}

	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Password: hash,
		Role:     role,
	}
	if err := s.Users.Create(ctx, u); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "role": u.Role}).Info("user registered")
	}
	return u, nil
}

// Authenticate validates email/password. Unknown email and wrong password
// are indistinguishable to the caller.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
