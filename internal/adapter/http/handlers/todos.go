package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/adapter/http/dto"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/mapper"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/middleware"
	"github.com/KaushVerse/nginx-docker/internal/adapter/http/validation"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
	"github.com/KaushVerse/nginx-docker/pkg/apierrors"
)

type TodoHandler struct {
	todoService ports.TodoService
}

func NewTodoHandler(todoService ports.TodoService) *TodoHandler {
	return &TodoHandler{todoService: todoService}
}

func (h *TodoHandler) ListTodos(c *gin.Context) {
	lang := middleware.GetLang(c)
	todos, err := h.todoService.ListTodos(c.Request.Context())
	if err != nil {
		zap.L().Error("failed to list todos", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailListTodos, lang),
		)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItems(todos))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	var req dto.CreateTodoRequest
	raw, ok := bindTodoPayload(c, &req, lang)
	if !ok {
		return
	}

	input, err := validation.BuildCreateTodoInput(req, raw)
	if err != nil {
		abortInvalidPayload(c, lang)
		return
	}

	todo, err := h.todoService.CreateTodo(c.Request.Context(), input)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidPriority) {
			abortInvalidPayload(c, lang)
			return
		}

		zap.L().Error("failed to create todo", zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, apierrors.MsgFailCreateTodo, lang),
		)
		return
	}

	c.JSON(http.StatusCreated, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoIDParam(c, lang)
	if !ok {
		return
	}

	var req dto.UpdateTodoRequest
	raw, ok := bindTodoPayload(c, &req, lang)
	if !ok {
		return
	}

	input, err := validation.BuildUpdateTodoInput(req, raw)
	if err != nil {
		abortInvalidPayload(c, lang)
		return
	}

	todo, err := h.todoService.UpdateTodo(c.Request.Context(), id, input)
	if err != nil {
		h.writeMutationError(c, err, id, apierrors.MsgFailUpdateTodo, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) ToggleTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoIDParam(c, lang)
	if !ok {
		return
	}

	todo, err := h.todoService.ToggleTodo(c.Request.Context(), id)
	if err != nil {
		h.writeMutationError(c, err, id, apierrors.MsgFailToggleTodo, lang)
		return
	}

	c.JSON(http.StatusOK, mapper.ToTodoItem(todo))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	lang := middleware.GetLang(c)

	id, ok := todoIDParam(c, lang)
	if !ok {
		return
	}

	if err := h.todoService.DeleteTodo(c.Request.Context(), id); err != nil {
		h.writeMutationError(c, err, id, apierrors.MsgFailDeleteTodo, lang)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *TodoHandler) writeMutationError(c *gin.Context, err error, id string, msgKey string, lang string) {
	switch {
	case errors.Is(err, domain.ErrTodoNotFound):
		c.JSON(
			http.StatusNotFound,
			apierrors.CreateError(http.StatusNotFound, apierrors.MsgTodoNotFound, lang),
		)
	case errors.Is(err, domain.ErrInvalidPriority):
		abortInvalidPayload(c, lang)
	default:
		zap.L().Error("todo mutation failed", zap.String("todo_id", id), zap.String("operation", msgKey), zap.Error(err))
		c.JSON(
			http.StatusInternalServerError,
			apierrors.CreateError(http.StatusInternalServerError, msgKey, lang),
		)
	}
}

func todoIDParam(c *gin.Context, lang string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(
			http.StatusBadRequest,
			apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoID, lang),
		)
		return "", false
	}
	return id, true
}

// bindTodoPayload decodes the body twice: once through gin validation and once
// as raw fields so explicit nulls can be told apart from omitted fields.
func bindTodoPayload(c *gin.Context, req any, lang string) (map[string]json.RawMessage, bool) {
	body, err := c.GetRawData()
	if err != nil {
		abortInvalidPayload(c, lang)
		return nil, false
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		abortInvalidPayload(c, lang)
		return nil, false
	}

	if err := binding.JSON.BindBody(body, req); err != nil {
		abortInvalidPayload(c, lang)
		return nil, false
	}

	return raw, true
}

func abortInvalidPayload(c *gin.Context, lang string) {
	c.JSON(
		http.StatusBadRequest,
		apierrors.CreateError(http.StatusBadRequest, apierrors.MsgInvalidTodoPayload, lang),
	)
}
