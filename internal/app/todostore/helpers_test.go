package todostore

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/KaushVerse/nginx-docker/internal/app/notification"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

var errNetwork = errors.New("dial tcp: connection refused")

type todoAPIMock struct {
	mock.Mock
}

func (m *todoAPIMock) List(ctx context.Context) ([]domain.Todo, error) {
	args := m.Called(ctx)

	var todos []domain.Todo
	if value := args.Get(0); value != nil {
		todos = value.([]domain.Todo)
	}
	return todos, args.Error(1)
}

func (m *todoAPIMock) Create(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoAPIMock) Update(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(domain.Todo), args.Error(1)
}

func (m *todoAPIMock) Toggle(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *todoAPIMock) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// hookAPI lets a test decide per call how the remote service answers,
// including blocking until the test releases it.
type hookAPI struct {
	toggle func(id string) error
	delete func(id string) error
}

func (h *hookAPI) List(context.Context) ([]domain.Todo, error) { return nil, nil }

func (h *hookAPI) Create(context.Context, domain.CreateTodoInput) (domain.Todo, error) {
	return domain.Todo{}, errNetwork
}

func (h *hookAPI) Update(context.Context, string, domain.UpdateTodoInput) (domain.Todo, error) {
	return domain.Todo{}, errNetwork
}

func (h *hookAPI) Toggle(_ context.Context, id string) error { return h.toggle(id) }

func (h *hookAPI) Delete(_ context.Context, id string) error { return h.delete(id) }

type memoryStorage struct {
	mu      sync.Mutex
	slots   map[string][]byte
	saveErr error
	saves   int
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{slots: make(map[string][]byte)}
}

func (m *memoryStorage) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.slots[key]
	if !ok {
		return nil, ports.ErrStateNotFound
	}
	return blob, nil
}

func (m *memoryStorage) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.slots[key] = append([]byte(nil), value...)
	return nil
}

func newNotifier() *notification.Center {
	return notification.New(notification.WithDuration(0))
}

func toastMessages(n *notification.Center) []string {
	var out []string
	for _, toast := range n.Toasts() {
		out = append(out, string(toast.Severity)+": "+toast.Message)
	}
	return out
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func todo(id string, order int, opts ...func(*domain.Todo)) domain.Todo {
	t := domain.Todo{
		ID:        id,
		Title:     "todo " + id,
		Priority:  domain.PriorityMedium,
		Order:     order,
		CreatedAt: baseTime.Add(time.Duration(order) * time.Minute),
		UpdatedAt: baseTime.Add(time.Duration(order) * time.Minute),
	}
	for _, opt := range opts {
		opt(&t)
	}
	return t
}

func completed(t *domain.Todo) { t.Completed = true }

func withPriority(p domain.Priority) func(*domain.Todo) {
	return func(t *domain.Todo) { t.Priority = p }
}

func withText(title, description string) func(*domain.Todo) {
	return func(t *domain.Todo) {
		t.Title = title
		t.Description = description
	}
}

func createdAt(at time.Time) func(*domain.Todo) {
	return func(t *domain.Todo) { t.CreatedAt = at }
}
