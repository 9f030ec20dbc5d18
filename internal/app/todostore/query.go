package todostore

import (
	"cmp"
	"slices"
	"strings"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

// FilteredTodos applies the filter, then the search query, then the sort mode
// to a copy of the list.
func (s *Store) FilteredTodos() []domain.Todo {
	s.mu.Lock()
	list := cloneTodos(s.todos)
	view := s.view
	s.mu.Unlock()

	return applyView(list, view)
}

func (s *Store) Stats() domain.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := domain.Stats{Total: len(s.todos)}
	for _, todo := range s.todos {
		if todo.Completed {
			stats.Completed++
		} else {
			stats.Pending++
		}
		if todo.Priority == domain.PriorityHigh {
			stats.HighPriority++
		}
	}
	return stats
}

func applyView(list []domain.Todo, view domain.ViewState) []domain.Todo {
	list = slices.DeleteFunc(list, func(todo domain.Todo) bool {
		return !matchesFilter(todo, view.Filter)
	})

	if view.SearchQuery != "" {
		q := strings.ToLower(view.SearchQuery)
		list = slices.DeleteFunc(list, func(todo domain.Todo) bool {
			return !strings.Contains(strings.ToLower(todo.Title), q) &&
				!strings.Contains(strings.ToLower(todo.Description), q)
		})
	}

	switch view.SortBy {
	case domain.SortNewest:
		slices.SortStableFunc(list, func(a, b domain.Todo) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	case domain.SortOldest:
		slices.SortStableFunc(list, func(a, b domain.Todo) int {
			return a.CreatedAt.Compare(b.CreatedAt)
		})
	case domain.SortPriority:
		slices.SortStableFunc(list, func(a, b domain.Todo) int {
			return cmp.Compare(b.Priority.Rank(), a.Priority.Rank())
		})
	default:
		slices.SortStableFunc(list, func(a, b domain.Todo) int {
			return cmp.Compare(a.Order, b.Order)
		})
	}

	if list == nil {
		return []domain.Todo{}
	}
	return list
}

// matchesFilter applies the completion filter. Only completed and active
// narrow the list; pending and the priority values keep every todo.
func matchesFilter(todo domain.Todo, filter domain.Filter) bool {
	switch filter {
	case domain.FilterCompleted:
		return todo.Completed
	case domain.FilterActive:
		return !todo.Completed
	default:
		return true
	}
}
