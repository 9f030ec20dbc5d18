package todostore

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

type Store struct {
	mu    sync.Mutex
	todos []domain.Todo
	view  domain.ViewState

	// saveMu serializes snapshot+save so the last write is the newest state.
	saveMu sync.Mutex

	api      ports.TodoAPI
	notifier ports.Notifier
	storage  ports.StateStorage
	logger   *zap.Logger
	lang     string
}

type Option func(*Store)

func WithStorage(storage ports.StateStorage) Option {
	return func(s *Store) { s.storage = storage }
}

func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

// WithLanguage selects the language of toast messages.
func WithLanguage(lang string) Option {
	return func(s *Store) { s.lang = lang }
}

// WithTodos seeds the local list without contacting the remote service.
func WithTodos(todos []domain.Todo) Option {
	return func(s *Store) { s.todos = cloneTodos(todos) }
}

func New(api ports.TodoAPI, notifier ports.Notifier, opts ...Option) *Store {
	s := &Store{
		view:     defaultView(),
		api:      api,
		notifier: notifier,
		logger:   zap.NewNop(),
		lang:     "en",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func defaultView() domain.ViewState {
	return domain.ViewState{
		Filter: domain.FilterAll,
		SortBy: domain.SortManual,
	}
}

// Todos returns a copy of the local list in array order.
func (s *Store) Todos() []domain.Todo {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneTodos(s.todos)
}

func (s *Store) View() domain.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

func (s *Store) SetFilter(filter domain.Filter) {
	s.mu.Lock()
	s.view.Filter = filter
	s.mu.Unlock()
	s.persist(context.Background())
}

func (s *Store) SetSearchQuery(query string) {
	s.mu.Lock()
	s.view.SearchQuery = query
	s.mu.Unlock()
	s.persist(context.Background())
}

func (s *Store) SetSortBy(sortBy domain.SortBy) {
	s.mu.Lock()
	s.view.SortBy = sortBy
	s.mu.Unlock()
	s.persist(context.Background())
}

func (s *Store) indexLocked(id string) int {
	for i, todo := range s.todos {
		if todo.ID == id {
			return i
		}
	}
	return -1
}

func cloneTodos(todos []domain.Todo) []domain.Todo {
	if todos == nil {
		return nil
	}
	out := make([]domain.Todo, len(todos))
	copy(out, todos)
	return out
}
