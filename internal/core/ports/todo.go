package ports

import (
	"context"
	"errors"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

// ErrRemote is the single failure kind reported by a TodoAPI.
var ErrRemote = errors.New("remote operation failed")

type TodoRepository interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	GetTodo(ctx context.Context, id string) (domain.Todo, error)
	InsertTodo(ctx context.Context, todo domain.Todo) error
	UpdateTodo(ctx context.Context, todo domain.Todo) error
	DeleteTodo(ctx context.Context, id string) error
}

type TodoService interface {
	ListTodos(ctx context.Context) ([]domain.Todo, error)
	CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
	UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error)
	ToggleTodo(ctx context.Context, id string) (domain.Todo, error)
	DeleteTodo(ctx context.Context, id string) error
}

// TodoAPI is the client view of the remote persistence service.
type TodoAPI interface {
	List(ctx context.Context) ([]domain.Todo, error)
	Create(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error)
	Update(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error)
	Toggle(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
