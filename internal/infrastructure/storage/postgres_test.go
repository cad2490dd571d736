package storage

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePool implements dbPool over a map, mimicking the one-jsonb-row-per-user
// table the real queries target.
type fakePool struct {
	rows map[int64][]byte
}

func newFakePool() *fakePool {
	return &fakePool{rows: make(map[int64][]byte)}
}

type fakeRow struct {
	payload []byte
	err     error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*[]byte)) = r.payload
	return nil
}

func (p *fakePool) QueryRow(_ context.Context, _ string, args ...any) pgx.Row {
	payload, ok := p.rows[args[0].(int64)]
	if !ok {
		return fakeRow{err: pgx.ErrNoRows}
	}
	return fakeRow{payload: payload}
}

func (p *fakePool) Exec(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
	p.rows[args[0].(int64)] = args[1].([]byte)
	return pgconn.CommandTag{}, nil
}

func TestPostgresStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStore(newFakePool())

	queue := sampleQueue()
	require.NoError(t, store.Save(ctx, 1, queue))

	loaded, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, queue, loaded)
}

func TestPostgresStoreMissingQueueIsEmpty(t *testing.T) {
	store := NewPostgresStore(newFakePool())

	loaded, err := store.Load(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestPostgresStoreCorruptPayloadReportsError(t *testing.T) {
	pool := newFakePool()
	pool.rows[1] = []byte("{not json")
	store := NewPostgresStore(pool)

	_, err := store.Load(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "corrupt")
}

func TestPostgresStoreUpsertReplaces(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStore(newFakePool())

	require.NoError(t, store.Save(ctx, 1, sampleQueue()))
	require.NoError(t, store.Save(ctx, 1, sampleQueue()[:1]))

	loaded, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, loaded, 1)
}

func TestPostgresStoreNilQueueSavesEmptyList(t *testing.T) {
	ctx := context.Background()
	store := NewPostgresStore(newFakePool())

	require.NoError(t, store.Save(ctx, 1, nil))
	loaded, err := store.Load(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
