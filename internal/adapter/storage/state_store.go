// Package storage keeps the client's persisted state slots in a local SQLite file.
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/KaushVerse/nginx-docker/internal/core/ports"
)

type stateSlot struct {
	Key       string `gorm:"column:slot_key;primaryKey"`
	Value     []byte `gorm:"not null"`
	UpdatedAt time.Time
}

func (stateSlot) TableName() string {
	return "state_slots"
}

// StateStore implements ports.StateStorage on top of gorm.
type StateStore struct {
	db *gorm.DB
}

var _ ports.StateStorage = (*StateStore)(nil)

// Open opens (or creates) the SQLite database at path and migrates the slot table.
func Open(path string, log *zap.Logger) (*StateStore, error) {
	if path == "" {
		return nil, errors.New("state path is empty")
	}
	if log == nil {
		log = zap.NewNop()
	}

	if err := ensureDir(path); err != nil {
		return nil, err
	}

	dbLogger := logger.New(
		zapWriter{log.Sugar()},
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{Logger: dbLogger})
	if err != nil {
		return nil, fmt.Errorf("open state db: %w", err)
	}

	if err := db.AutoMigrate(&stateSlot{}); err != nil {
		return nil, fmt.Errorf("migrate state db: %w", err)
	}

	return &StateStore{db: db}, nil
}

func (s *StateStore) Load(ctx context.Context, key string) ([]byte, error) {
	var slot stateSlot
	err := s.db.WithContext(ctx).Where("slot_key = ?", key).First(&slot).Error
	switch {
	case err == nil:
		return slot.Value, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ports.ErrStateNotFound
	default:
		return nil, fmt.Errorf("load state %q: %w", key, err)
	}
}

func (s *StateStore) Save(ctx context.Context, key string, value []byte) error {
	slot := stateSlot{Key: key, Value: value}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&slot).Error
	if err != nil {
		return fmt.Errorf("save state %q: %w", key, err)
	}
	return nil
}

func (s *StateStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// ensureDir creates the parent directory of a file-backed SQLite path.
func ensureDir(path string) error {
	if strings.Contains(path, ":memory:") || strings.Contains(path, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(path, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir %q: %w", dir, err)
	}
	return nil
}

// zapWriter routes gorm's logger output through zap.
type zapWriter struct {
	log *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...interface{}) {
	w.log.Warnf(format, args...)
}
