package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vijayshankarmb/PMS-Backend/internal/domain/entity"
	"github.com/vijayshankarmb/PMS-Backend/internal/domain/repository"
)

const taskSelect = `
	SELECT t.id, t.task_name, t.task_description,
	       t.project_id, p.project_name,
	       t.assigned_to, a.name, a.email,
	       t.created_by, t.status, t.created_at, t.updated_at
	FROM tasks t
	JOIN projects p ON p.id = t.project_id
	JOIN users a    ON a.id = t.assigned_to
`

type TaskRepository struct {
	pool *pgxpool.Pool
}

func NewTaskRepository(pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, t *entity.Task) error {
	if t.Status == "" {
		t.Status = entity.StatusPending
	}
	row := r.pool.QueryRow(ctx, `
		INSERT INTO tasks (task_name, task_description, project_id, assigned_to, created_by, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, t.Name, t.Description, t.ProjectID, t.AssignedTo, t.CreatedBy, t.Status)

	return row.Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
}

func (r *TaskRepository) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	t := &entity.Task{}
	row := r.pool.QueryRow(ctx, taskSelect+` WHERE t.id = $1`, id)
	if err := scanTask(row, t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *TaskRepository) ListByCreator(ctx context.Context, creatorID string) ([]entity.Task, error) {
	return r.list(ctx, taskSelect+` WHERE t.created_by = $1 ORDER BY t.created_at DESC`, creatorID)
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, assigneeID string) ([]entity.Task, error) {
	return r.list(ctx, taskSelect+` WHERE t.assigned_to = $1 ORDER BY t.created_at DESC`, assigneeID)
}

func (r *TaskRepository) list(ctx context.Context, query string, arg any) ([]entity.Task, error) {
	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]entity.Task, 0)
	for rows.Next() {
		var t entity.Task
		if err := scanTask(rows, &t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

// UpdateByIDAndCreator patches name/description/assignee in one statement
// filtered by creator; status is untouchable through this path.
func (r *TaskRepository) UpdateByIDAndCreator(ctx context.Context, id, creatorID string, patch repository.TaskPatch) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET task_name        = COALESCE($3, task_name),
		    task_description = COALESCE($4, task_description),
		    assigned_to      = COALESCE($5, assigned_to),
		    updated_at       = now()
		WHERE id = $1 AND created_by = $2
		RETURNING id
	`, id, creatorID, patch.Name, patch.Description, patch.AssignedTo)

	var updatedID string
	if err := row.Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}

func (r *TaskRepository) UpdateStatus(ctx context.Context, id string, status entity.Status) (*entity.Task, error) {
	row := r.pool.QueryRow(ctx, `
		UPDATE tasks
		SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING id
	`, id, status)

	var updatedID string
	if err := row.Scan(&updatedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return r.GetByID(ctx, updatedID)
}

func (r *TaskRepository) DeleteByIDAndCreator(ctx context.Context, id, creatorID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM tasks
		WHERE id = $1 AND created_by = $2
	`, id, creatorID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) AddAttachment(ctx context.Context, a *entity.Attachment) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO task_attachments (task_id, file_name, content_type, url, uploaded_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`, a.TaskID, a.FileName, a.ContentType, a.URL, a.UploadedBy)

	return row.Scan(&a.ID, &a.CreatedAt)
}

func (r *TaskRepository) ListAttachments(ctx context.Context, taskID string) ([]entity.Attachment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, task_id, file_name, content_type, url, uploaded_by, created_at
		FROM task_attachments
		WHERE task_id = $1
		ORDER BY created_at
	`, taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	atts := make([]entity.Attachment, 0)
	for rows.Next() {
		var a entity.Attachment
		if err := rows.Scan(&a.ID, &a.TaskID, &a.FileName, &a.ContentType, &a.URL, &a.UploadedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		atts = append(atts, a)
	}
	return atts, rows.Err()
}

func scanTask(row pgx.Row, t *entity.Task) error {
	return row.Scan(&t.ID, &t.Name, &t.Description,
		&t.ProjectID, &t.ProjectName,
		&t.AssignedTo, &t.AssigneeName, &t.AssigneeEmail,
		&t.CreatedBy, &t.Status, &t.CreatedAt, &t.UpdatedAt)
}

var _ repository.TaskRepository = (*TaskRepository)(nil)
