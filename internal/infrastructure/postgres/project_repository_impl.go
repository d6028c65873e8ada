package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
)

type ProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{pool: pool}
}

func (r *ProjectRepository) Create(ctx context.Context, p *entity.Project) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO projects (project_name, project_description, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Description, p.CreatedBy)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProjectRepository) ListByOwner(ctx context.Context, ownerID string) ([]entity.Project, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.project_name, p.project_description, p.created_by,
		       u.name, u.email, p.created_at, p.updated_at
		FROM projects p
		JOIN users u ON u.id = p.created_by
		WHERE p.created_by = $1
		ORDER BY p.created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]entity.Project, 0)
	for rows.Next() {
		var p entity.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy,
			&p.OwnerName, &p.OwnerEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *ProjectRepository) GetByIDAndOwner(ctx context.Context, id, ownerID string) (*entity.Project, error) {
	p := &entity.Project{}
	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.project_name, p.project_description, p.created_by,
		       u.name, u.email, p.created_at, p.updated_at
		FROM projects p
		JOIN users u ON u.id = p.created_by
		WHERE p.id = $1 AND p.created_by = $2
	`, id, ownerID)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy,
		&p.OwnerName, &p.OwnerEmail, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// UpdateByIDAndOwner applies the patch in a single statement filtered by
// owner, so the update and the ownership check are atomic.
func (r *ProjectRepository) UpdateByIDAndOwner(ctx context.Context, id, ownerID string, patch repository.ProjectPatch) (*entity.Project, error) {
	p := &entity.Project{}
	row := r.pool.QueryRow(ctx, `
		UPDATE projects
		SET project_name        = COALESCE($3, project_name),
		    project_description = COALESCE($4, project_description),
		    updated_at          = now()
		WHERE id = $1 AND created_by = $2
		RETURNING id, project_name, project_description, created_by, created_at, updated_at
	`, id, ownerID, patch.Name, patch.Description)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedBy,
		&p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *ProjectRepository) DeleteByIDAndOwner(ctx context.Context, id, ownerID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM projects
		WHERE id = $1 AND created_by = $2
	`, id, ownerID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.ProjectRepository = (*ProjectRepository)(nil)
