package mapper

import (
	"fmt"
	"time"

	"github.com/KaushVerse/nginx-docker/internal/adapter/http/dto"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

func ToTodoItems(todos []domain.Todo) []dto.TodoItem {
	items := make([]dto.TodoItem, 0, len(todos))
	for _, todo := range todos {
		items = append(items, ToTodoItem(todo))
	}
	return items
}

func ToTodoItem(todo domain.Todo) dto.TodoItem {
	return dto.TodoItem{
		ID:          todo.ID,
		Title:       todo.Title,
		Description: todo.Description,
		Completed:   todo.Completed,
		CreatedAt:   formatTime(todo.CreatedAt),
		UpdatedAt:   formatTime(todo.UpdatedAt),
		Priority:    string(todo.Priority),
		Order:       todo.Order,
	}
}

func FromTodoItems(items []dto.TodoItem) ([]domain.Todo, error) {
	todos := make([]domain.Todo, 0, len(items))
	for _, item := range items {
		todo, err := FromTodoItem(item)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}
	return todos, nil
}

func FromTodoItem(item dto.TodoItem) (domain.Todo, error) {
	createdAt, err := parseTime(item.CreatedAt)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("todo %s createdAt: %w", item.ID, err)
	}
	updatedAt, err := parseTime(item.UpdatedAt)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("todo %s updatedAt: %w", item.ID, err)
	}

	return domain.Todo{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		Completed:   item.Completed,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Priority:    domain.Priority(item.Priority),
		Order:       item.Order,
	}, nil
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339Nano, value)
}
