// Package notification holds the ephemeral toast messages shown to the user.
//
// Each toast is removed automatically after the display duration or earlier
// through Remove. Expiry timers run independently of the caller; a timer that
// fires after a manual removal does nothing.
package notification

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/KaushVerse/nginx-docker/internal/core/domain"
	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

const DefaultDuration = 3 * time.Second

// Listener is called for every toast shown, outside the center's lock.
type Listener func(domain.Toast)

type Center struct {
	mu       sync.Mutex
	toasts   []domain.Toast
	timers   map[string]*time.Timer
	duration time.Duration
	newID    func() string
	listener Listener
	logger   *zap.Logger
}

type Option func(*Center)

// WithDuration sets the display duration. A non-positive duration keeps toasts
// until they are removed explicitly.
func WithDuration(d time.Duration) Option {
	return func(c *Center) { c.duration = d }
}

func WithIDGenerator(newID func() string) Option {
	return func(c *Center) { c.newID = newID }
}

func WithListener(l Listener) Option {
	return func(c *Center) { c.listener = l }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Center) { c.logger = logger }
}

func New(opts ...Option) *Center {
	c := &Center{
		timers:   make(map[string]*time.Timer),
		duration: DefaultDuration,
		newID:    uuid.NewString,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.Notifier = (*Center)(nil)

// Show appends a toast and schedules its removal. An empty severity means info.
func (c *Center) Show(message string, severity domain.Severity) {
	if severity == "" {
		severity = domain.SeverityInfo
	}
	toast := domain.Toast{ID: c.newID(), Message: message, Severity: severity}

	c.mu.Lock()
	c.toasts = append(c.toasts, toast)
	if c.duration > 0 {
		id := toast.ID
		c.timers[id] = time.AfterFunc(c.duration, func() { c.expire(id) })
	}
	c.mu.Unlock()

	c.logger.Debug("toast shown",
		zap.String("toast_id", toast.ID),
		zap.String("severity", string(toast.Severity)),
		zap.String("message", toast.Message),
	)

	if c.listener != nil {
		c.listener(toast)
	}
}

// Remove drops the toast with the given id. Unknown ids are ignored.
func (c *Center) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	c.removeLocked(id)
}

func (c *Center) Toasts() []domain.Toast {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]domain.Toast, len(c.toasts))
	copy(out, c.toasts)
	return out
}

// Close stops every pending expiry timer. Active toasts are kept.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.timers, id)
	if c.removeLocked(id) {
		c.logger.Debug("toast expired", zap.String("toast_id", id))
	}
}

func (c *Center) removeLocked(id string) bool {
	for i, toast := range c.toasts {
		if toast.ID == id {
			c.toasts = append(c.toasts[:i:i], c.toasts[i+1:]...)
			return true
		}
	}
	return false
}
