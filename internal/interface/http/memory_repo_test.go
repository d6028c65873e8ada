package handlers_test

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
)

// In-memory repositories backing the router tests. Scoped lookups that
// match nothing report repository.ErrNotFound, like the postgres ones.

type memUserRepo struct {
	users map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[string]*entity.User{}}
}

func (r *memUserRepo) Create(_ context.Context, u *entity.User) error {
	u.ID = uuid.NewString()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *memUserRepo) List(_ context.Context) ([]entity.User, error) {
	out := make([]entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		cp.Password = ""
		out = append(out, cp)
	}
	return out, nil
}

type memProjectRepo struct {
	projects map[string]*entity.Project
}

func newMemProjectRepo() *memProjectRepo {
	return &memProjectRepo{projects: map[string]*entity.Project{}}
}

func (r *memProjectRepo) Create(_ context.Context, p *entity.Project) error {
	p.ID = uuid.NewString()
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	r.projects[p.ID] = &cp
	return nil
}

func (r *memProjectRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Project, error) {
	out := []entity.Project{}
	for _, p := range r.projects {
		if p.CreatedBy == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *memProjectRepo) GetByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.CreatedBy != ownerID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) UpdateByIDAndOwner(_ context.Context, id, ownerID string, patch repository.ProjectPatch) (*entity.Project, error) {
	p, ok := r.projects[id]
	if !ok || p.CreatedBy != ownerID {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	p.UpdatedAt = time.Now()
	cp := *p
	return &cp, nil
}

func (r *memProjectRepo) DeleteByIDAndOwner(_ context.Context, id, ownerID string) error {
	p, ok := r.projects[id]
	if !ok || p.CreatedBy != ownerID {
		return repository.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

type memTaskRepo struct {
	tasks       map[string]*entity.Task
	attachments map[string][]entity.Attachment
}

func newMemTaskRepo() *memTaskRepo {
	return &memTaskRepo{
		tasks:       map[string]*entity.Task{},
		attachments: map[string][]entity.Attachment{},
	}
}

func (r *memTaskRepo) Create(_ context.Context, t *entity.Task) error {
	t.ID = uuid.NewString()
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *memTaskRepo) GetByID(_ context.Context, id string) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) ListByCreator(_ context.Context, creatorID string) ([]entity.Task, error) {
	out := []entity.Task{}
	for _, t := range r.tasks {
		if t.CreatedBy == creatorID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) ListByAssignee(_ context.Context, assigneeID string) ([]entity.Task, error) {
	out := []entity.Task{}
	for _, t := range r.tasks {
		if t.AssignedTo == assigneeID {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *memTaskRepo) UpdateByIDAndCreator(_ context.Context, id, creatorID string, patch repository.TaskPatch) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok || t.CreatedBy != creatorID {
		return nil, repository.ErrNotFound
	}
	if patch.Name != nil {
		t.Name = *patch.Name
	}
	if patch.Description != nil {
		t.Description = *patch.Description
	}
	if patch.AssignedTo != nil {
		t.AssignedTo = *patch.AssignedTo
	}
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) UpdateStatus(_ context.Context, id string, status entity.Status) (*entity.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	t.Status = status
	t.UpdatedAt = time.Now()
	cp := *t
	return &cp, nil
}

func (r *memTaskRepo) DeleteByIDAndCreator(_ context.Context, id, creatorID string) error {
	t, ok := r.tasks[id]
	if !ok || t.CreatedBy != creatorID {
		return repository.ErrNotFound
	}
	delete(r.tasks, id)
	return nil
}

func (r *memTaskRepo) AddAttachment(_ context.Context, a *entity.Attachment) error {
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()
	r.attachments[a.TaskID] = append(r.attachments[a.TaskID], *a)
	return nil
}

func (r *memTaskRepo) ListAttachments(_ context.Context, taskID string) ([]entity.Attachment, error) {
	return append([]entity.Attachment{}, r.attachments[taskID]...), nil
}

var (
	_ repository.UserRepository    = (*memUserRepo)(nil)
	_ repository.ProjectRepository = (*memProjectRepo)(nil)
	_ repository.TaskRepository    = (*memTaskRepo)(nil)
)
