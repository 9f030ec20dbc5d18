package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

type TodoService struct {
	todoRepository ports.TodoRepository
	now            func() time.Time
	newID          func() string
}

type Option func(*TodoService)

func WithClock(now func() time.Time) Option {
	return func(s *TodoService) { s.now = now }
}

func WithIDGenerator(newID func() string) Option {
	return func(s *TodoService) { s.newID = newID }
}

func NewTodoService(todoRepository ports.TodoRepository, opts ...Option) *TodoService {
	s := &TodoService{
		todoRepository: todoRepository,
		now:            time.Now,
		newID:          uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *TodoService) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	return s.todoRepository.ListTodos(ctx)
}

func (s *TodoService) CreateTodo(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	if !input.Priority.Valid() {
		return domain.Todo{}, domain.ErrInvalidPriority
	}

	now := s.timestamp()
	todo := domain.Todo{
		ID:          s.newID(),
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Order:       input.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.todoRepository.InsertTodo(ctx, todo); err != nil {
		return domain.Todo{}, err
	}
	return todo, nil
}

func (s *TodoService) UpdateTodo(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	if !input.Priority.Valid() {
		return domain.Todo{}, domain.ErrInvalidPriority
	}

	todo, err := s.todoRepository.GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.Priority = input.Priority
	todo.UpdatedAt = s.timestamp()

	if err := s.todoRepository.UpdateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("update todo %s: %w", id, err)
	}
	return todo, nil
}

func (s *TodoService) ToggleTodo(ctx context.Context, id string) (domain.Todo, error) {
	todo, err := s.todoRepository.GetTodo(ctx, id)
	if err != nil {
		return domain.Todo{}, err
	}

	todo.Completed = !todo.Completed
	todo.UpdatedAt = s.timestamp()

	if err := s.todoRepository.UpdateTodo(ctx, todo); err != nil {
		return domain.Todo{}, fmt.Errorf("toggle todo %s: %w", id, err)
	}
	return todo, nil
}

func (s *TodoService) DeleteTodo(ctx context.Context, id string) error {
	return s.todoRepository.DeleteTodo(ctx, id)
}

// MySQL DATETIME(3) keeps milliseconds.
func (s *TodoService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Millisecond)
}

var _ ports.TodoService = (*TodoService)(nil)
