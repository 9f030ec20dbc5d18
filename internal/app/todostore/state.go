package todostore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

// StorageKey names the slot holding the serialized store.
const StorageKey = "todo-storage"

const stateVersion = 0

type persistedEnvelope struct {
	State   persistedState `json:"state"`
	Version int            `json:"version"`
}

type persistedState struct {
	Todos       []persistedTodo `json:"todos"`
	Filter      string          `json:"filter"`
	SearchQuery string          `json:"searchQuery"`
	SortBy      string          `json:"sortBy"`
}

type persistedTodo struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Priority    string    `json:"priority"`
	Order       int       `json:"order"`
}

// Rehydrate replaces the store state with the saved slot. A missing slot
// leaves the store untouched.
func (s *Store) Rehydrate(ctx context.Context) error {
	if s.storage == nil {
		return nil
	}

	blob, err := s.storage.Load(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, ports.ErrStateNotFound) {
			return nil
		}
		return fmt.Errorf("load %s: %w", StorageKey, err)
	}

	todos, view, err := decodeState(blob)
	if err != nil {
		return fmt.Errorf("decode %s: %w", StorageKey, err)
	}

	s.mu.Lock()
	s.todos = todos
	s.view = view
	s.mu.Unlock()

	s.logger.Debug("store rehydrated", zap.Int("todos", len(todos)))
	return nil
}

func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	s.mu.Lock()
	blob, err := encodeState(s.todos, s.view)
	s.mu.Unlock()
	if err != nil {
		s.logger.Warn("encode store state failed", zap.Error(err))
		return
	}

	// A cancelled request context must not prevent the local save.
	if err := s.storage.Save(context.WithoutCancel(ctx), StorageKey, blob); err != nil {
		s.logger.Warn("save store state failed", zap.String("key", StorageKey), zap.Error(err))
	}
}

func encodeState(todos []domain.Todo, view domain.ViewState) ([]byte, error) {
	state := persistedState{
		Todos:       make([]persistedTodo, 0, len(todos)),
		Filter:      string(view.Filter),
		SearchQuery: view.SearchQuery,
		SortBy:      string(view.SortBy),
	}
	for _, todo := range todos {
		state.Todos = append(state.Todos, persistedTodo{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			Completed:   todo.Completed,
			CreatedAt:   todo.CreatedAt,
			UpdatedAt:   todo.UpdatedAt,
			Priority:    string(todo.Priority),
			Order:       todo.Order,
		})
	}
	return json.Marshal(persistedEnvelope{State: state, Version: stateVersion})
}

func decodeState(blob []byte) ([]domain.Todo, domain.ViewState, error) {
	var envelope persistedEnvelope
	if err := json.Unmarshal(blob, &envelope); err != nil {
		return nil, domain.ViewState{}, err
	}
	if envelope.Version != stateVersion {
		return nil, domain.ViewState{}, fmt.Errorf("unsupported state version %d", envelope.Version)
	}

	todos := make([]domain.Todo, 0, len(envelope.State.Todos))
	for _, todo := range envelope.State.Todos {
		todos = append(todos, domain.Todo{
			ID:          todo.ID,
			Title:       todo.Title,
			Description: todo.Description,
			Completed:   todo.Completed,
			CreatedAt:   todo.CreatedAt,
			UpdatedAt:   todo.UpdatedAt,
			Priority:    domain.Priority(todo.Priority),
			Order:       todo.Order,
		})
	}

	view := defaultView()
	if filter := domain.Filter(envelope.State.Filter); filter.Valid() {
		view.Filter = filter
	}
	if sortBy := domain.SortBy(envelope.State.SortBy); sortBy.Valid() {
		view.SortBy = sortBy
	}
	view.SearchQuery = envelope.State.SearchQuery

	return todos, view, nil
}
