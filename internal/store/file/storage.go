package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/koolabhinay07/Lollyzz/internal/domain"
)

// Storage keeps one JSON document per key under a data directory. It is the
// default driver and mirrors the browser's local storage: a flat string-keyed
// namespace with no guarantees beyond the local machine.
type Storage struct {
	dir string
}

type Config struct {
	Dir string
}

func New(cfg Config) (*Storage, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("data directory is required")
	}

	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Storage{dir: cfg.Dir}, nil
}

func (s *Storage) path(key string) string {
	// keys are internal constants, but keep them path-safe anyway
	safe := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, safe+".json")
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return data, nil
}

func (s *Storage) Put(_ context.Context, key string, value []byte) error {
	// write-then-rename so a crash mid-write never leaves a torn document
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (s *Storage) Ping(_ context.Context) error {
	if _, err := os.Stat(s.dir); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorageUnavailable, err)
	}

	return nil
}

func (s *Storage) Close(_ context.Context) error {
	return nil
}
