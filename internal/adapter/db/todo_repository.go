package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

const (
	selectTodoColumns = `id, title, description, completed, priority, sort_order, created_at, updated_at`

	listTodosQuery = `SELECT ` + selectTodoColumns + ` FROM todos ORDER BY sort_order, created_at`
	getTodoQuery   = `SELECT ` + selectTodoColumns + ` FROM todos WHERE id = ?`

	insertTodoQuery = `
INSERT INTO todos (id, title, description, completed, priority, sort_order, created_at, updated_at)
VALUES (:id, :title, :description, :completed, :priority, :sort_order, :created_at, :updated_at)`

	updateTodoQuery = `
UPDATE todos
SET title = :title, description = :description, completed = :completed,
    priority = :priority, sort_order = :sort_order, updated_at = :updated_at
WHERE id = :id`

	deleteTodoQuery = `DELETE FROM todos WHERE id = ?`
)

type TodoRepository struct {
	db *sqlx.DB
}

type todoRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Completed   bool      `db:"completed"`
	Priority    string    `db:"priority"`
	SortOrder   int       `db:"sort_order"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

var _ ports.TodoRepository = (*TodoRepository)(nil)

func NewTodoRepository(db *sqlx.DB) *TodoRepository {
	return &TodoRepository{db: db}
}

func (r *TodoRepository) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	var rows []todoRow
	if err := r.db.SelectContext(ctx, &rows, listTodosQuery); err != nil {
		return nil, fmt.Errorf("select todos: %w", err)
	}

	todos := make([]domain.Todo, 0, len(rows))
	for _, row := range rows {
		todos = append(todos, mapTodoRowToDomainTodo(row))
	}

	return todos, nil
}

func (r *TodoRepository) GetTodo(ctx context.Context, id string) (domain.Todo, error) {
	var row todoRow
	if err := r.db.GetContext(ctx, &row, getTodoQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Todo{}, domain.ErrTodoNotFound
		}
		return domain.Todo{}, fmt.Errorf("select todo %s: %w", id, err)
	}
	return mapTodoRowToDomainTodo(row), nil
}

func (r *TodoRepository) InsertTodo(ctx context.Context, todo domain.Todo) error {
	if _, err := r.db.NamedExecContext(ctx, insertTodoQuery, mapDomainTodoToRow(todo)); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

func (r *TodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	result, err := r.db.NamedExecContext(ctx, updateTodoQuery, mapDomainTodoToRow(todo))
	if err != nil {
		return fmt.Errorf("update todo %s: %w", todo.ID, err)
	}
	return requireAffected(result)
}

func (r *TodoRepository) DeleteTodo(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, deleteTodoQuery, id)
	if err != nil {
		return fmt.Errorf("delete todo %s: %w", id, err)
	}
	return requireAffected(result)
}

// Relies on clientFoundRows=true so an UPDATE that matches but changes
// nothing still counts as affected.
func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func mapTodoRowToDomainTodo(row todoRow) domain.Todo {
	return domain.Todo{
		ID:          row.ID,
		Title:       row.Title,
		Description: row.Description,
		Completed:   row.Completed,
		Priority:    domain.Priority(row.Priority),
		Order:       row.SortOrder,
		CreatedAt:   row.CreatedAt.UTC(),
		UpdatedAt:   row.UpdatedAt.UTC(),
	}
}

func mapDomainTodoToRow(todo domain.Todo) todoRow {
	return todoRow{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		Priority:    string(todo.Priority),
		SortOrder:   todo.Order,
		CreatedAt:   todo.CreatedAt,
		UpdatedAt:   todo.UpdatedAt,
	}
}
