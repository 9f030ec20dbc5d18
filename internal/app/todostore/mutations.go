package todostore

import (
	"context"

	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

// CreateTodo asks the remote service to create a todo ordered after every
// existing one and appends the canonical record on success.
func (s *Store) CreateTodo(ctx context.Context, title, description string, priority domain.Priority) {
	s.mu.Lock()
	order := nextOrder(s.todos)
	s.mu.Unlock()

	created, err := s.api.Create(ctx, domain.CreateTodoInput{
		Title:       title,
		Description: description,
		Priority:    priority,
		Order:       order,
	})
	if err != nil {
		s.logger.Warn("create todo failed", zap.Int("order", order), zap.Error(err))
		s.notify(msgCreateFailed, domain.SeverityError)
		return
	}

	s.mu.Lock()
	s.todos = append(s.todos, created)
	s.mu.Unlock()

	s.persist(ctx)
	s.notify(msgTodoCreated, domain.SeveritySuccess)
}

// UpdateTodo replaces the local todo with the server's canonical version.
func (s *Store) UpdateTodo(ctx context.Context, id, title, description string, priority domain.Priority) {
	updated, err := s.api.Update(ctx, id, domain.UpdateTodoInput{
		Title:       title,
		Description: description,
		Priority:    priority,
	})
	if err != nil {
		s.logger.Warn("update todo failed", zap.String("todo_id", id), zap.Error(err))
		s.notify(msgUpdateFailed, domain.SeverityError)
		return
	}

	s.mu.Lock()
	if i := s.indexLocked(id); i >= 0 {
		s.todos[i] = updated
	}
	s.mu.Unlock()

	s.persist(ctx)
	s.notify(msgTodoUpdated, domain.SeveritySuccess)
}

// ToggleTodo flips the completion flag locally before the request is sent.
func (s *Store) ToggleTodo(ctx context.Context, id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	found := i >= 0
	var previous bool
	if found {
		previous = s.todos[i].Completed
		s.todos[i].Completed = !previous
	}
	s.mu.Unlock()

	if found {
		s.persist(ctx)
	}

	if err := s.api.Toggle(ctx, id); err != nil {
		s.logger.Warn("toggle todo failed", zap.String("todo_id", id), zap.Error(err))
		if found {
			s.mu.Lock()
			if j := s.indexLocked(id); j >= 0 {
				s.todos[j].Completed = previous
			}
			s.mu.Unlock()
			s.persist(ctx)
		}
		s.notify(msgToggleFailed, domain.SeverityError)
	}
}

// DeleteTodo removes the todo locally before the request is sent.
func (s *Store) DeleteTodo(ctx context.Context, id string) {
	s.mu.Lock()
	index := s.indexLocked(id)
	found := index >= 0
	var removed domain.Todo
	var nextID string
	if found {
		removed = s.todos[index]
		if index+1 < len(s.todos) {
			nextID = s.todos[index+1].ID
		}
		s.todos = append(s.todos[:index:index], s.todos[index+1:]...)
	}
	s.mu.Unlock()

	if found {
		s.persist(ctx)
	}

	if err := s.api.Delete(ctx, id); err != nil {
		s.logger.Warn("delete todo failed", zap.String("todo_id", id), zap.Error(err))
		if found {
			s.mu.Lock()
			if s.indexLocked(id) < 0 {
				s.todos = insertAt(s.todos, s.reinsertIndexLocked(index, nextID), removed)
			}
			s.mu.Unlock()
			s.persist(ctx)
		}
		s.notify(msgDeleteFailed, domain.SeverityError)
		return
	}

	s.notify(msgTodoDeleted, domain.SeveritySuccess)
}

// FetchTodos replaces the local list with the remote one.
func (s *Store) FetchTodos(ctx context.Context) {
	todos, err := s.api.List(ctx)
	if err != nil {
		s.logger.Warn("fetch todos failed", zap.Error(err))
		s.notify(msgLoadFailed, domain.SeverityError)
		return
	}

	s.mu.Lock()
	s.todos = cloneTodos(todos)
	s.mu.Unlock()

	s.persist(ctx)
}

// MoveTodoUp swaps the order value with the previous todo in array order.
func (s *Store) MoveTodoUp(id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	moved := i > 0
	if moved {
		s.swapOrderLocked(i, i-1)
	}
	s.mu.Unlock()

	if moved {
		s.persist(context.Background())
	}
}

// MoveTodoDown swaps the order value with the next todo in array order.
func (s *Store) MoveTodoDown(id string) {
	s.mu.Lock()
	i := s.indexLocked(id)
	moved := i >= 0 && i < len(s.todos)-1
	if moved {
		s.swapOrderLocked(i, i+1)
	}
	s.mu.Unlock()

	if moved {
		s.persist(context.Background())
	}
}

func (s *Store) swapOrderLocked(i, j int) {
	s.todos[i].Order, s.todos[j].Order = s.todos[j].Order, s.todos[i].Order
}

// nextOrder is one past the largest order, or 1 for an empty list.
func nextOrder(todos []domain.Todo) int {
	maxOrder := 0
	for i, todo := range todos {
		if i == 0 || todo.Order > maxOrder {
			maxOrder = todo.Order
		}
	}
	return maxOrder + 1
}

// reinsertIndexLocked puts a rolled back todo in front of the todo that used
// to follow it, or back at its old index when that neighbour is gone.
func (s *Store) reinsertIndexLocked(index int, nextID string) int {
	if nextID != "" {
		if i := s.indexLocked(nextID); i >= 0 {
			return i
		}
	}
	return min(index, len(s.todos))
}

func insertAt(todos []domain.Todo, index int, todo domain.Todo) []domain.Todo {
	out := make([]domain.Todo, 0, len(todos)+1)
	out = append(out, todos[:index]...)
	out = append(out, todo)
	return append(out, todos[index:]...)
}
