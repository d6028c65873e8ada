package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
)

// ProjectService enforces the project authorization rules: every operation
// requires the admin role, and reads/mutations are scoped to the owner via
// the repository filter. A project owned by another admin surfaces as
// ErrNotFound, never as a distinct "forbidden" — existence stays hidden.
type ProjectService struct {
	Projects repository.ProjectRepository
	Logger   *logrus.Logger
}

func NewProjectService(projects repository.ProjectRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Projects: projects, Logger: logger}
}

type ProjectInput struct {
	Name        string
	Description string
}

func (s *ProjectService) Create(ctx context.Context, caller Identity, in ProjectInput) (*entity.Project, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	p := &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		CreatedBy:   caller.UserID,
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": p.ID, "owner": p.CreatedBy}).Info("project created")
	}
	return p, nil
}

func (s *ProjectService) List(ctx context.Context, caller Identity) ([]entity.Project, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	return s.Projects.ListByOwner(ctx, caller.UserID)
}

func (s *ProjectService) Get(ctx context.Context, caller Identity, id string) (*entity.Project, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	p, err := s.Projects.GetByIDAndOwner(ctx, id, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProjectService) Update(ctx context.Context, caller Identity, id string, patch repository.ProjectPatch) (*entity.Project, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	p, err := s.Projects.UpdateByIDAndOwner(ctx, id, caller.UserID, patch)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *ProjectService) Delete(ctx context.Context, caller Identity, id string) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	err := s.Projects.DeleteByIDAndOwner(ctx, id, caller.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
