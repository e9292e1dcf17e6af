package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIdempotencyStore(t *testing.T) IdempotencyStore {
	t.Helper()
	s, err := NewBoltIdempotencyStore(filepath.Join(t.TempDir(), "idempotency.bolt"), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestBoltIdempotencyStore_GetMissing(t *testing.T) {
	s := newTestIdempotencyStore(t)

	_, found, err := s.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestBoltIdempotencyStore_FirstSaveWins(t *testing.T) {
	s := newTestIdempotencyStore(t)
	ctx := context.Background()

	first := StoredResponse{StatusCode: 201, ContentType: "application/json", Body: []byte(`{"id":1}`)}
	second := StoredResponse{StatusCode: 400, ContentType: "application/json", Body: []byte(`{"code":"BAD_REQUEST"}`)}

	require.NoError(t, s.Save(ctx, "key-1", first))
	require.NoError(t, s.Save(ctx, "key-1", second))

	got, found, err := s.Get(ctx, "key-1")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 201, got.StatusCode)
	assert.Equal(t, "application/json", got.ContentType)
	assert.JSONEq(t, `{"id":1}`, string(got.Body))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestBoltIdempotencyStore_ReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "idempotency.bolt")
	ctx := context.Background()

	s, err := NewBoltIdempotencyStore(path, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, "k", StoredResponse{StatusCode: 201, Body: []byte("{}")}))
	require.NoError(t, s.Close())

	s, err = NewBoltIdempotencyStore(path, logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	_, found, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
}
