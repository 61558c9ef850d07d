// Package file persists the app state envelope as a single JSON document on
// disk, the server-side equivalent of the browser's localStorage record.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
)

type StateStore struct {
	path string
}

var _ ports.StateStore = (*StateStore)(nil)

func NewStateStore(dataDir string) (*StateStore, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}
	return &StateStore{path: filepath.Join(dataDir, domain.StorageKey+".json")}, nil
}

func (s *StateStore) Load(ctx context.Context) domain.AppData {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		// First run.
		return domain.EmptyAppData()
	}
	if err != nil {
		zap.L().Error("failed to read app state", zap.String("path", s.path), zap.Error(err))
		return domain.EmptyAppData()
	}

	var data domain.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		zap.L().Error("failed to parse stored app state", zap.String("path", s.path), zap.Error(err))
		return domain.EmptyAppData()
	}
	if data.Tasks == nil {
		data.Tasks = []domain.Task{}
	}
	return data
}

func (s *StateStore) Save(ctx context.Context, data domain.AppData) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	// Write-then-rename so a crash mid-save cannot truncate the only copy.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}

func (s *StateStore) Ping(ctx context.Context) error {
	_, err := os.Stat(filepath.Dir(s.path))
	return err
}
