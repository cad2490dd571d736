package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"baco/internal/domain/entities"
	"baco/internal/ports/output"
)

var _ output.NotificationStore = (*PostgresStore)(nil)

// dbPool is the subset of pgxpool.Pool the store needs.
type dbPool interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

// PostgresStore persists each recipient's queue as a single jsonb row, so
// the key-value Load/Save contract holds unchanged over SQL.
type PostgresStore struct {
	pool dbPool
}

func NewPostgresStore(pool dbPool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Load(ctx context.Context, userID uint) ([]entities.Notification, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM notification_queues WHERE user_id = $1`,
		int64(userID),
	).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load notification queue: %w", err)
	}
	var list []entities.Notification
	if err := json.Unmarshal(payload, &list); err != nil {
		return nil, fmt.Errorf("corrupt notification queue for user %d: %w", userID, err)
	}
	return list, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID uint, list []entities.Notification) error {
	if list == nil {
		list = []entities.Notification{}
	}
	payload, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode notification queue: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`INSERT INTO notification_queues (user_id, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (user_id) DO UPDATE SET payload = $2, updated_at = now()`,
		int64(userID), payload,
	)
	if err != nil {
		return fmt.Errorf("save notification queue: %w", err)
	}
	return nil
}
