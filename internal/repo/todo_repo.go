package repo

import (
	"context"
	"errors"

	dom "taskbill/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const todoColumns = `id, title, description, completed, created_at, updated_at`

type PGTodoRepo struct {
	db DB
}

var _ dom.TodoRepository = (*PGTodoRepo)(nil)

func NewPGTodoRepo(db DB) *PGTodoRepo {
	return &PGTodoRepo{db: db}
}

func scanTodo(row pgx.Row) (dom.Todo, error) {
	var t dom.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Description, &t.Completed, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *PGTodoRepo) FindAll(ctx context.Context) ([]dom.Todo, error) {
	rows, err := r.db.Query(ctx, `SELECT `+todoColumns+` FROM todos`)
	if err != nil {
		return nil, translate("todo find all", err)
	}
	defer rows.Close()
	list := []dom.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, translate("todo scan", err)
		}
		list = append(list, t)
	}
	return list, translate("todo rows", rows.Err())
}

func (r *PGTodoRepo) FindByID(ctx context.Context, id uuid.UUID) (dom.Todo, bool, error) {
	t, err := scanTodo(r.db.QueryRow(ctx,
		`SELECT `+todoColumns+` FROM todos WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return dom.Todo{}, false, nil
	}
	if err != nil {
		return dom.Todo{}, false, translate("todo find by id", err)
	}
	return t, true, nil
}

func (r *PGTodoRepo) Create(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		INSERT INTO todos (id, title, description, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + todoColumns
	out, err := scanTodo(r.db.QueryRow(ctx, query,
		t.ID, t.Title, t.Description, t.Completed, t.CreatedAt, t.UpdatedAt))
	if err != nil {
		return dom.Todo{}, translate("todo create", err)
	}
	return out, nil
}

// Update ignores t.UpdatedAt; the store stamps it.
func (r *PGTodoRepo) Update(ctx context.Context, t dom.Todo) (dom.Todo, error) {
	query := `
		UPDATE todos SET title = $2, description = $3, completed = $4, ` + stampUpdated + `
		WHERE id = $1
		RETURNING ` + todoColumns
	out, err := scanTodo(r.db.QueryRow(ctx, query, t.ID, t.Title, t.Description, t.Completed))
	if err != nil {
		return dom.Todo{}, translate("todo update", err)
	}
	return out, nil
}

func (r *PGTodoRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM todos WHERE id = $1`, id)
	if err != nil {
		return translate("todo delete", err)
	}
	if tag.RowsAffected() == 0 {
		return translate("todo delete", pgx.ErrNoRows)
	}
	return nil
}
