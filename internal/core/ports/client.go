package ports

import (
	"context"
	"errors"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
)

var ErrStateNotFound = errors.New("state not found")

// StateStorage is an opaque key/value blob store for client state.
type StateStorage interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

type Notifier interface {
	Show(message string, severity domain.Severity)
	Remove(id string)
	Toasts() []domain.Toast
}
