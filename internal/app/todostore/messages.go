package todostore

import (
	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/pkg/translator"
)

const (
	msgTodoCreated  = "toastTodoCreated"
	msgCreateFailed = "toastCreateFailed"
	msgTodoUpdated  = "toastTodoUpdated"
	msgUpdateFailed = "toastUpdateFailed"
	msgToggleFailed = "toastToggleFailed"
	msgTodoDeleted  = "toastTodoDeleted"
	msgDeleteFailed = "toastDeleteFailed"
	msgLoadFailed   = "toastLoadFailed"
)

// English text used when no translation bundle is loaded.
var fallbackMessages = map[string]string{
	msgTodoCreated:  "Todo created",
	msgCreateFailed: "Create failed",
	msgTodoUpdated:  "Todo updated",
	msgUpdateFailed: "Update failed",
	msgToggleFailed: "Toggle failed",
	msgTodoDeleted:  "Todo deleted",
	msgDeleteFailed: "Delete failed",
	msgLoadFailed:   "Load failed",
}

func (s *Store) notify(msgKey string, severity domain.Severity) {
	if s.notifier == nil {
		return
	}
	s.notifier.Show(s.message(msgKey), severity)
}

func (s *Store) message(msgKey string) string {
	msg := translator.Localize(msgKey, s.lang)
	if msg == msgKey {
		if fallback, ok := fallbackMessages[msgKey]; ok {
			return fallback
		}
	}
	return msg
}
