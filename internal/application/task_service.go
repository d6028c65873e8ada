package application

import (
	"context"
	"errors"

	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/sirupsen/logrus"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
	"github.com/vijayshankarmb/PMS-Backend/pkg/helpers"
	"github.com/vijayshankarmb/PMS-Backend/pkg/mailer"
)

// TaskService enforces the task authorization rules:
//
//   - create: admin who owns the referenced project
//   - list/search: creator-scoped for admins, assignee-scoped otherwise
//   - get: any admin or the assignee
//   - field update / delete: creating admin only (creator filter in SQL,
//     zero rows == ErrNotFound)
//   - status update: any admin or the assignee; only status mutates
//
// Rabbit, ES and GCS are optional; when nil the matching side effects and
// features are disabled.
type TaskService struct {
	Tasks    repository.TaskRepository
	Projects repository.ProjectRepository
	Users    repository.UserRepository
	Logger   *logrus.Logger

	Rabbit    *helpers.RabbitPublisher
	ES        *elasticsearch.Client
	ESIndex   string
	GCS       *storage.Client
	GCSBucket string
}

func NewTaskService(tasks repository.TaskRepository, projects repository.ProjectRepository, users repository.UserRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Projects: projects, Users: users, Logger: logger}
}

type CreateTaskInput struct {
	Name        string
	Description string
	ProjectID   string
	AssignedTo  string
}

func (s *TaskService) Create(ctx context.Context, caller Identity, in CreateTaskInput) (*entity.Task, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	// Creating a task on someone else's project is forbidden, not hidden:
	// the caller named the project id themselves.
	if _, err := s.Projects.GetByIDAndOwner(ctx, in.ProjectID, caller.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrForbidden
		}
		return nil, err
	}
	assignee, err := s.Users.GetByID(ctx, in.AssignedTo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAssigneeNotFound
		}
		return nil, err
	}

	t := &entity.Task{
		Name:        in.Name,
		Description: in.Description,
		ProjectID:   in.ProjectID,
		AssignedTo:  in.AssignedTo,
		CreatedBy:   caller.UserID,
		Status:      entity.StatusPending,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	t.AssigneeName = assignee.Name
	t.AssigneeEmail = assignee.Email

	s.indexTask(ctx, t)
	s.notifyAssignment(ctx, t, assignee)
	return t, nil
}

func (s *TaskService) List(ctx context.Context, caller Identity) ([]entity.Task, error) {
	if caller.IsAdmin() {
		return s.Tasks.ListByCreator(ctx, caller.UserID)
	}
	return s.Tasks.ListByAssignee(ctx, caller.UserID)
}

func (s *TaskService) Get(ctx context.Context, caller Identity, id string) (*entity.Task, error) {
	t, err := s.visibleTask(ctx, caller, id)
	if err != nil {
		return nil, err
	}
	atts, err := s.Tasks.ListAttachments(ctx, t.ID)
	if err != nil {
		return nil, err
	}
	t.Attachments = atts
	return t, nil
}

type UpdateTaskInput struct {
	Name        *string
	Description *string
	AssignedTo  *string
}

// Update patches every field except status; only the creating admin may do
// this, enforced atomically by the creator filter.
func (s *TaskService) Update(ctx context.Context, caller Identity, id string, in UpdateTaskInput) (*entity.Task, error) {
	if !caller.IsAdmin() {
		return nil, ErrForbidden
	}
	var assignee *entity.User
	if in.AssignedTo != nil {
		u, err := s.Users.GetByID(ctx, *in.AssignedTo)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrAssigneeNotFound
			}
			return nil, err
		}
		assignee = u
	}

	t, err := s.Tasks.UpdateByIDAndCreator(ctx, id, caller.UserID, repository.TaskPatch{
		Name:        in.Name,
		Description: in.Description,
		AssignedTo:  in.AssignedTo,
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	s.indexTask(ctx, t)
	if assignee != nil {
		s.notifyAssignment(ctx, t, assignee)
	}
	return t, nil
}

// UpdateStatus mutates only the status field. The assignee or any admin may
// call it; anyone else gets ErrForbidden once the record is known to exist.
func (s *TaskService) UpdateStatus(ctx context.Context, caller Identity, id string, status entity.Status) (*entity.Task, error) {
	if _, err := s.visibleTask(ctx, caller, id); err != nil {
		return nil, err
	}
	t, err := s.Tasks.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.indexTask(ctx, t)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, caller Identity, id string) error {
	if !caller.IsAdmin() {
		return ErrForbidden
	}
	if err := s.Tasks.DeleteByIDAndCreator(ctx, id, caller.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.deleteTaskIndex(ctx, id)
	return nil
}

// visibleTask fetches the task and applies the visibility predicate:
// admins and the assignee see it, everyone else gets ErrForbidden.
func (s *TaskService) visibleTask(ctx context.Context, caller Identity, id string) (*entity.Task, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !caller.IsAdmin() && t.AssignedTo != caller.UserID {
		return nil, ErrForbidden
	}
	return t, nil
}

func (s *TaskService) notifyAssignment(ctx context.Context, t *entity.Task, assignee *entity.User) {
	if s.Rabbit == nil {
		return
	}
	creatorName := ""
	if creator, err := s.Users.GetByID(ctx, t.CreatedBy); err == nil {
		creatorName = creator.Name
	}
	job := mailer.Job{
		To:       assignee.Email,
		Template: mailer.TemplateTaskAssigned,
		Data: map[string]any{
			"AssigneeName":    assignee.Name,
			"CreatorName":     creatorName,
			"ProjectName":     t.ProjectName,
			"TaskName":        t.Name,
			"TaskDescription": t.Description,
		},
	}
	if err := s.Rabbit.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("task_id", t.ID).Warn("publish assignment notification failed")
	}
}
