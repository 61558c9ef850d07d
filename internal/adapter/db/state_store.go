package db

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/domain"
	"github.com/MANAV-MISHRA-BYTES/Chronos-Planner-Habit-Tracker/internal/core/ports"
)

// The durable store is a key-value record: one row holding the whole JSON
// envelope under the fixed storage key.
const createStateTableQuery = `
CREATE TABLE IF NOT EXISTS app_state (
  k VARCHAR(64) NOT NULL PRIMARY KEY,
  v JSON NOT NULL
);
`

const (
	loadStateQuery = `SELECT v FROM app_state WHERE k = ?;`
	saveStateQuery = `INSERT INTO app_state (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v = VALUES(v);`
)

type StateStore struct {
	db *sqlx.DB
}

var _ ports.StateStore = (*StateStore)(nil)

func NewStateStore(db *sqlx.DB) (*StateStore, error) {
	if _, err := db.Exec(createStateTableQuery); err != nil {
		return nil, err
	}
	return &StateStore{db: db}, nil
}

func (s *StateStore) Load(ctx context.Context) domain.AppData {
	var raw []byte
	err := s.db.GetContext(ctx, &raw, loadStateQuery, domain.StorageKey)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.EmptyAppData()
	}
	if err != nil {
		zap.L().Error("failed to read app state", zap.Error(err))
		return domain.EmptyAppData()
	}

	var data domain.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		zap.L().Error("failed to parse stored app state", zap.Error(err))
		return domain.EmptyAppData()
	}
	if data.Tasks == nil {
		data.Tasks = []domain.Task{}
	}
	return data
}

func (s *StateStore) Save(ctx context.Context, data domain.AppData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, saveStateQuery, domain.StorageKey, raw)
	return err
}

func (s *StateStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
