package repository

import (
	"context"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
)

// TaskPatch carries optional field updates; nil means "leave unchanged".
// Status is deliberately absent: status changes go through UpdateStatus.
type TaskPatch struct {
	Name        *string
	Description *string
	AssignedTo  *string
}

// TaskRepository defines task persistence operations. Creator-scoped
// mutations compile ownership into the filter (zero rows == ErrNotFound);
// GetByID is unscoped because assignee visibility is decided by the caller.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	ListByCreator(ctx context.Context, creatorID string) ([]entity.Task, error)
	ListByAssignee(ctx context.Context, assigneeID string) ([]entity.Task, error)
	UpdateByIDAndCreator(ctx context.Context, id, creatorID string, patch TaskPatch) (*entity.Task, error)
	UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Task, error)
	DeleteByIDAndCreator(ctx context.Context, id, creatorID string) error
	AddAttachment(ctx context.Context, a *entity.Attachment) error
	ListAttachments(ctx context.Context, taskID string) ([]entity.Attachment, error)
}
