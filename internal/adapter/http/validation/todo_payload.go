package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/KaushVerse/nginx-docker/internal/adapter/http/dto"
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

var ErrInvalidTodoPayload = errors.New("invalid todo payload")

func BuildCreateTodoInput(req dto.CreateTodoRequest, raw map[string]json.RawMessage) (domain.CreateTodoInput, error) {
	if isExplicitNull(raw, "priority") || isExplicitNull(raw, "order") {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.CreateTodoInput{}, ErrInvalidTodoPayload
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	return domain.CreateTodoInput{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
		Order:       order,
	}, nil
}

func BuildUpdateTodoInput(req dto.UpdateTodoRequest, raw map[string]json.RawMessage) (domain.UpdateTodoInput, error) {
	if isExplicitNull(raw, "priority") {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return domain.UpdateTodoInput{}, ErrInvalidTodoPayload
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.Priority(*req.Priority)
	}

	return domain.UpdateTodoInput{
		Title:       title,
		Description: req.Description,
		Priority:    priority,
	}, nil
}

func isExplicitNull(raw map[string]json.RawMessage, field string) bool {
	value, ok := raw[field]
	return ok && bytes.Equal(bytes.TrimSpace(value), []byte("null"))
}
