package repository

import (
	"context"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
)

// ProjectPatch carries optional field updates; nil means "leave unchanged".
type ProjectPatch struct {
	Name        *string
	Description *string
}

// ProjectRepository defines project persistence operations. Every read and
// mutation is scoped to the owning admin; there is no unscoped access path.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Project, error)
	GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Project, error)
	UpdateByIDAndOwner(ctx context.Context, id, ownerID string, patch ProjectPatch) (*entity.Project, error)
	DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error
}
