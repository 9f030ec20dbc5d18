// Package remote implements ports.TodoAPI over the backend's HTTP API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/adapter/http/dto"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/mapper"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
	"github.com/KaushVerse/nginx-docker/pkg/apierrors"
)

const todosPath = "/api/todos"

// maxErrorBody caps how much of a failed response is read for diagnostics.
const maxErrorBody = 4 << 10

type TodoClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	lang       string
}

type Option func(*TodoClient)

func WithHTTPClient(client *http.Client) Option {
	return func(c *TodoClient) { c.httpClient = client }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *TodoClient) { c.logger = logger }
}

// WithLanguage sets the Accept-Language sent with every request.
func WithLanguage(lang string) Option {
	return func(c *TodoClient) { c.lang = lang }
}

func NewTodoClient(baseURL string, opts ...Option) *TodoClient {
	c := &TodoClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.TodoAPI = (*TodoClient)(nil)

func (c *TodoClient) List(ctx context.Context) ([]domain.Todo, error) {
	var items []dto.TodoItem
	if err := c.do(ctx, http.MethodGet, todosPath, nil, &items); err != nil {
		return nil, err
	}

	todos, err := mapper.FromTodoItems(items)
	if err != nil {
		return nil, fmt.Errorf("%w: decode todos: %v", ports.ErrRemote, err)
	}
	return todos, nil
}

func (c *TodoClient) Create(ctx context.Context, input domain.CreateTodoInput) (domain.Todo, error) {
	priority := string(input.Priority)
	order := input.Order
	req := dto.CreateTodoRequest{
		Title:       input.Title,
		Description: input.Description,
		Priority:    &priority,
		Order:       &order,
	}

	var item dto.TodoItem
	if err := c.do(ctx, http.MethodPost, todosPath, req, &item); err != nil {
		return domain.Todo{}, err
	}
	return decodeTodo(item)
}

func (c *TodoClient) Update(ctx context.Context, id string, input domain.UpdateTodoInput) (domain.Todo, error) {
	priority := string(input.Priority)
	req := dto.UpdateTodoRequest{
		Title:       input.Title,
		Description: input.Description,
		Priority:    &priority,
	}

	var item dto.TodoItem
	if err := c.do(ctx, http.MethodPut, todoPath(id), req, &item); err != nil {
		return domain.Todo{}, err
	}
	return decodeTodo(item)
}

func (c *TodoClient) Toggle(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPatch, todoPath(id)+"/toggle", nil, nil)
}

func (c *TodoClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, todoPath(id), nil, nil)
}

// do sends one request. Transport errors, non-2xx statuses and undecodable
// bodies all come back wrapped in ports.ErrRemote. A nil out ignores the body.
func (c *TodoClient) do(ctx context.Context, method, path string, in any, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%w: encode %s %s: %v", ports.ErrRemote, method, path, err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%w: build %s %s: %v", ports.ErrRemote, method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.lang != "" {
		req.Header.Set("Accept-Language", c.lang)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", ports.ErrRemote, method, path, err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			c.logger.Debug("failed to close response body", zap.Error(err))
		}
	}()

	c.logger.Debug("todo api call",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: %s", ports.ErrRemote, method, path, describeFailure(resp))
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s %s: %v", ports.ErrRemote, method, path, err)
	}
	return nil
}

func describeFailure(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))

	var apiErr apierrors.JsonErr
	if err := json.Unmarshal(raw, &apiErr); err == nil && apiErr.ErrDetails.Message != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, apiErr.ErrDetails.Message)
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}

func decodeTodo(item dto.TodoItem) (domain.Todo, error) {
	todo, err := mapper.FromTodoItem(item)
	if err != nil {
		return domain.Todo{}, fmt.Errorf("%w: decode todo: %v", ports.ErrRemote, err)
	}
	return todo, nil
}

func todoPath(id string) string {
	return todosPath + "/" + url.PathEscape(id)
}
