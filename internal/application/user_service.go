package application

import (
	"context"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
)

// UserService exposes the admin-only user directory. Passwords never leave
// the repository (List does not select them; the entity hides the field).
type UserService struct {
	Users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List(ctx context.Context, caller Identity) ([]entity.User, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.Users.List(ctx)
}
