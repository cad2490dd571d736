// Package storage provides the persistence backends for per-recipient
// notification queues. All backends store one JSON-serialized list per user
// id; Load/Save round-trip the list exactly.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"baco/internal/domain/entities"
	"baco/internal/ports/output"
)

var _ output.NotificationStore = (*FileStore)(nil)

// FileStore keeps one JSON file per recipient under dir. This is the default
// backend, the desktop analogue of the web client's per-user local storage.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(userID uint) string {
	return filepath.Join(s.dir, fmt.Sprintf("notifications-%d.json", userID))
}

func (s *FileStore) Load(_ context.Context, userID uint) ([]entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.path(userID))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read notification queue: %w", err)
	}
	var list []entities.Notification
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("corrupt notification queue %s: %w", s.path(userID), err)
	}
	return list, nil
}

func (s *FileStore) Save(_ context.Context, userID uint, list []entities.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if list == nil {
		list = []entities.Notification{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode notification queue: %w", err)
	}
	tmp := s.path(userID) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write notification queue: %w", err)
	}
	if err := os.Rename(tmp, s.path(userID)); err != nil {
		return fmt.Errorf("write notification queue: %w", err)
	}
	return nil
}
