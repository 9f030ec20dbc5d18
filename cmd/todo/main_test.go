package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/KaushVerse/nginx-docker/internal/adapter/http"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/handlers"
	"github.com/KaushVerse/nginx-docker/internal/app/service"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

const missingID = "9b2f6c1e-0000-4000-8000-000000000000"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// memoryRepository is an in-process ports.TodoRepository for the API under test.
type memoryRepository struct {
	mu    sync.Mutex
	todos []domain.Todo
}

func (r *memoryRepository) ListTodos(context.Context) ([]domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.todos), nil
}

func (r *memoryRepository) GetTodo(_ context.Context, id string) (domain.Todo, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, todo := range r.todos {
		if todo.ID == id {
			return todo, nil
		}
	}
	return domain.Todo{}, domain.ErrTodoNotFound
}

func (r *memoryRepository) InsertTodo(_ context.Context, todo domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.todos = append(r.todos, todo)
	return nil
}

func (r *memoryRepository) UpdateTodo(_ context.Context, todo domain.Todo) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.todos {
		if r.todos[i].ID == todo.ID {
			r.todos[i] = todo
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

func (r *memoryRepository) DeleteTodo(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.todos {
		if r.todos[i].ID == id {
			r.todos = slices.Delete(r.todos, i, i+1)
			return nil
		}
	}
	return domain.ErrTodoNotFound
}

type okPinger struct{}

func (okPinger) PingContext(context.Context) error { return nil }

type cliEnv struct {
	repo      *memoryRepository
	server    *httptest.Server
	statePath string
}

func newCLIEnv(t *testing.T) *cliEnv {
	t.Helper()
	t.Setenv("TRANSLATION_FOLDER", "../../pkg/translator/translation")

	var seq int
	var seqMu sync.Mutex
	repo := &memoryRepository{}
	todoService := service.NewTodoService(repo, service.WithIDGenerator(func() string {
		seqMu.Lock()
		defer seqMu.Unlock()
		seq++
		return fmt.Sprintf("00000000-0000-4000-8000-%012d", seq)
	}))

	router := gin.New()
	httpadapter.RegisterRoutes(router,
		handlers.NewHealthHandler(okPinger{}, "backend"),
		handlers.NewSystemHandler(),
		handlers.NewTodoHandler(todoService),
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &cliEnv{
		repo:      repo,
		server:    server,
		statePath: filepath.Join(t.TempDir(), "state.db"),
	}
}

func (e *cliEnv) run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(append([]string{"--api", e.server.URL, "--state", e.statePath}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func idOf(n int) string {
	return fmt.Sprintf("00000000-0000-4000-8000-%012d", n)
}

func TestCLI_AddListToggleDelete(t *testing.T) {
	env := newCLIEnv(t)

	out, err := env.run("add", "Buy", "milk", "--priority", "high", "-d", "2 litres")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo created")

	out, err = env.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, idOf(1))
	assert.Contains(t, out, "Buy milk")
	assert.Contains(t, out, "[ ]")

	out, err = env.run("toggle", idOf(1))
	require.NoError(t, err)
	assert.Empty(t, out)

	out, err = env.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "[x]")

	stored, err := env.repo.GetTodo(context.Background(), idOf(1))
	require.NoError(t, err)
	assert.True(t, stored.Completed)
	assert.Equal(t, domain.PriorityHigh, stored.Priority)
	assert.Equal(t, 1, stored.Order)

	out, err = env.run("delete", idOf(1))
	require.NoError(t, err)
	assert.Contains(t, out, "Todo deleted")

	out, err = env.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "no todos")
}

func TestCLI_UpdateKeepsUnsetFields(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("add", "Write report", "-p", "low", "-d", "quarterly")
	require.NoError(t, err)

	out, err := env.run("update", idOf(1), "--title", "Write summary")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo updated")

	stored, err := env.repo.GetTodo(context.Background(), idOf(1))
	require.NoError(t, err)
	assert.Equal(t, "Write summary", stored.Title)
	assert.Equal(t, "quarterly", stored.Description)
	assert.Equal(t, domain.PriorityLow, stored.Priority)
}

func TestCLI_FailedDeleteRestoresAndExitsNonZero(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("add", "Keep me")
	require.NoError(t, err)

	// The server forgets the todo; the local copy must survive the failed delete.
	env.repo.mu.Lock()
	env.repo.todos = nil
	env.repo.mu.Unlock()

	out, err := env.run("--lang", "fr", "delete", idOf(1))
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, out, "Échec de la suppression")

	out, err = env.run("list")
	require.NoError(t, err)
	assert.Contains(t, out, "Keep me")
}

func TestCLI_ToggleAgainstUnreachableAPIRollsBack(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("add", "Call mum")
	require.NoError(t, err)
	env.server.Close()

	out, err := env.run("toggle", idOf(1))
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, out, "Toggle failed")

	out, err = env.run("list", "--filter", "completed")
	require.NoError(t, err)
	assert.Contains(t, out, "no todos")
}

func TestCLI_SyncReplacesLocalList(t *testing.T) {
	env := newCLIEnv(t)
	ctx := context.Background()
	require.NoError(t, env.repo.InsertTodo(ctx, domain.Todo{ID: idOf(7), Title: "From server", Priority: domain.PriorityHigh, Order: 1}))
	require.NoError(t, env.repo.InsertTodo(ctx, domain.Todo{ID: idOf(8), Title: "Also from server", Priority: domain.PriorityLow, Order: 2, Completed: true}))

	out, err := env.run("sync")
	require.NoError(t, err)
	assert.Contains(t, out, "2 todos synced")

	out, err = env.run("stats")
	require.NoError(t, err)
	assert.Equal(t, "total: 2  completed: 1  pending: 1  high priority: 1\n", out)
}

func TestCLI_ListViewFlagsArePersisted(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("add", "Buy milk", "-p", "high")
	require.NoError(t, err)
	_, err = env.run("add", "Write report", "-p", "low")
	require.NoError(t, err)

	out, err := env.run("list", "--search", "MILK")
	require.NoError(t, err)
	assert.Contains(t, out, "Buy milk")
	assert.NotContains(t, out, "Write report")

	// The search is remembered by the next invocation.
	out, err = env.run("list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Write report")

	// Priority filter values do not narrow the list.
	out, err = env.run("list", "--search", "", "--filter", "low")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
	assert.Contains(t, out, "Buy milk")

	_, err = env.run("toggle", idOf(1))
	require.NoError(t, err)

	out, err = env.run("list", "--filter", "active")
	require.NoError(t, err)
	assert.Contains(t, out, "Write report")
	assert.NotContains(t, out, "Buy milk")
}

func TestCLI_MoveSwapsOrder(t *testing.T) {
	env := newCLIEnv(t)
	_, err := env.run("add", "First")
	require.NoError(t, err)
	_, err = env.run("add", "Second")
	require.NoError(t, err)

	_, err = env.run("down", idOf(1))
	require.NoError(t, err)

	out, err := env.run("list", "--sort", "manual")
	require.NoError(t, err)
	assert.Less(t, bytes.Index([]byte(out), []byte("Second")), bytes.Index([]byte(out), []byte("First")))

	_, err = env.run("up", missingID)
	require.Error(t, err)
}

func TestCLI_RejectsInvalidInput(t *testing.T) {
	env := newCLIEnv(t)

	_, err := env.run("add", "x", "--priority", "urgent")
	require.ErrorContains(t, err, `unknown priority "urgent"`)

	_, err = env.run("list", "--filter", "done")
	require.ErrorContains(t, err, `unknown filter "done"`)

	_, err = env.run("list", "--sort", "alphabetical")
	require.ErrorContains(t, err, `unknown sort "alphabetical"`)

	_, err = env.run("update", missingID, "--title", "", "--description", "", "--priority", "low")
	require.ErrorContains(t, err, "title is required")
}

func TestCLI_UpdateUnknownLocallyNeedsEveryField(t *testing.T) {
	env := newCLIEnv(t)
	ctx := context.Background()
	require.NoError(t, env.repo.InsertTodo(ctx, domain.Todo{
		ID:          idOf(5),
		Title:       "Server only",
		Description: "keep me",
		Priority:    domain.PriorityHigh,
		Order:       1,
	}))

	_, err := env.run("update", idOf(5), "--title", "Renamed")
	require.ErrorContains(t, err, "not found locally")

	stored, err := env.repo.GetTodo(ctx, idOf(5))
	require.NoError(t, err)
	assert.Equal(t, "Server only", stored.Title)
	assert.Equal(t, "keep me", stored.Description)
	assert.Equal(t, domain.PriorityHigh, stored.Priority)

	out, err := env.run("update", idOf(5), "--title", "Renamed", "--description", "new", "--priority", "low")
	require.NoError(t, err)
	assert.Contains(t, out, "Todo updated")

	stored, err = env.repo.GetTodo(ctx, idOf(5))
	require.NoError(t, err)
	assert.Equal(t, "Renamed", stored.Title)
	assert.Equal(t, "new", stored.Description)
	assert.Equal(t, domain.PriorityLow, stored.Priority)
}
