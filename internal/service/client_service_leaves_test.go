// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/mock"
	"github.com/MKhiriev/go-leave-tracker/internal/store"
	"github.com/MKhiriev/go-leave-tracker/internal/validators"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixedKeys struct{ key string }

func (f fixedKeys) Generate() string { return f.key }

// newTestLeaveListStore: helper that creates a LeaveListStore with a mocked adapter
func newTestLeaveListStore(t *testing.T) (*LeaveListStore, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	return NewLeaveListStore(mockAdapter, fixedKeys{key: "key-1"}, logger.Nop()), mockAdapter
}

// ── Refresh ─────────────────────────────────────────────────────────────────

func TestLeaveListStore_InitialSnapshot(t *testing.T) {
	s, _ := newTestLeaveListStore(t)

	snap := s.Snapshot()
	assert.Empty(t, snap.Leaves)
	assert.False(t, snap.Loaded)
	assert.False(t, snap.Loading)
	assert.NoError(t, snap.Err)
}

func TestLeaveListStore_Refresh_Success(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	leaves := []models.LeaveRequest{{ID: 1, Name: "Alice"}}

	mockAdapter.EXPECT().ListLeaves(gomock.Any()).DoAndReturn(func(context.Context) ([]models.LeaveRequest, error) {
		// the snapshot reports loading while the request is in flight
		assert.True(t, s.Snapshot().Loading)
		return leaves, nil
	})

	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, leaves, snap.Leaves)
	assert.True(t, snap.Loaded)
	assert.False(t, snap.Loading)
}

func TestLeaveListStore_Refresh_ErrorKeepsPreviousList(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	leaves := []models.LeaveRequest{{ID: 1, Name: "Alice"}}

	gomock.InOrder(
		mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return(leaves, nil),
		mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return(nil, fmt.Errorf("%w: db down", adapter.ErrInternalServerError)),
	)

	require.NoError(t, s.Refresh(context.Background()))
	err := s.Refresh(context.Background())
	require.ErrorIs(t, err, adapter.ErrInternalServerError)

	snap := s.Snapshot()
	assert.Equal(t, leaves, snap.Leaves)
	assert.ErrorIs(t, snap.Err, adapter.ErrInternalServerError)
}

func TestLeaveListStore_Snapshot_IsACopy(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return([]models.LeaveRequest{{ID: 1, Name: "Alice"}}, nil)
	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	snap.Leaves[0].Name = "Mallory"

	assert.Equal(t, "Alice", s.Snapshot().Leaves[0].Name)
}

// ── Create ──────────────────────────────────────────────────────────────────

func TestLeaveListStore_Create_PatchesThenRefetches(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	req := models.CreateLeaveRequest{Name: "Alice", StartDate: "2024-01-10", EndDate: "2024-01-12", Reason: "Travel"}
	created := models.LeaveRequest{ID: 5, Name: "Alice"}
	server := []models.LeaveRequest{{ID: 4, Name: "Bob"}, created}

	gomock.InOrder(
		mockAdapter.EXPECT().CreateLeave(gomock.Any(), req, "key-1").Return(created, nil),
		mockAdapter.EXPECT().ListLeaves(gomock.Any()).DoAndReturn(func(context.Context) ([]models.LeaveRequest, error) {
			// patched before the refetch is issued
			assert.Equal(t, []models.LeaveRequest{created}, s.Snapshot().Leaves)
			return server, nil
		}),
	)

	got, err := s.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, created, got)
	assert.Equal(t, server, s.Snapshot().Leaves)
}

func TestLeaveListStore_Create_FailureLeavesListUntouched(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	initial := []models.LeaveRequest{{ID: 1, Name: "Alice"}}

	mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return(initial, nil)
	require.NoError(t, s.Refresh(context.Background()))

	mockAdapter.EXPECT().CreateLeave(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.LeaveRequest{}, validators.NewFieldError(validators.FieldName, "Required"))

	_, err := s.Create(context.Background(), models.CreateLeaveRequest{})

	var vErr *validators.ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, initial, s.Snapshot().Leaves)
}

func TestLeaveListStore_Create_RefetchFailureKeepsPatch(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	created := models.LeaveRequest{ID: 5, Name: "Alice"}

	mockAdapter.EXPECT().CreateLeave(gomock.Any(), gomock.Any(), gomock.Any()).Return(created, nil)
	mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return(nil, errors.New("connection reset"))

	_, err := s.Create(context.Background(), models.CreateLeaveRequest{})
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, []models.LeaveRequest{created}, snap.Leaves)
	assert.Error(t, snap.Err)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestLeaveListStore_Delete_PatchesThenRefetches(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	alice := models.LeaveRequest{ID: 1, Name: "Alice"}
	bob := models.LeaveRequest{ID: 2, Name: "Bob"}

	mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return([]models.LeaveRequest{alice, bob}, nil)
	require.NoError(t, s.Refresh(context.Background()))

	gomock.InOrder(
		mockAdapter.EXPECT().DeleteLeave(gomock.Any(), int64(1)).Return(alice, nil),
		mockAdapter.EXPECT().ListLeaves(gomock.Any()).DoAndReturn(func(context.Context) ([]models.LeaveRequest, error) {
			assert.Equal(t, []models.LeaveRequest{bob}, s.Snapshot().Leaves)
			return []models.LeaveRequest{bob}, nil
		}),
	)

	got, err := s.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, alice, got)
	assert.Equal(t, []models.LeaveRequest{bob}, s.Snapshot().Leaves)
}

func TestLeaveListStore_Delete_NotFoundMapsToStoreError(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	mockAdapter.EXPECT().DeleteLeave(gomock.Any(), int64(42)).
		Return(models.LeaveRequest{}, fmt.Errorf("%w: leave not found", adapter.ErrNotFound))

	_, err := s.Delete(context.Background(), 42)

	require.ErrorIs(t, err, store.ErrLeaveNotFound)
	assert.Empty(t, s.Snapshot().Leaves)
}

// ── Ordering ────────────────────────────────────────────────────────────────

func TestLeaveListStore_StaleRefetchIsDropped(t *testing.T) {
	s, mockAdapter := newTestLeaveListStore(t)
	created := models.LeaveRequest{ID: 9, Name: "Carol"}
	stale := []models.LeaveRequest{{ID: 1, Name: "Alice"}}

	// A background refetch starts, and while it is in flight a create
	// completes. The background result predates the create and must not
	// overwrite the patched list.
	gomock.InOrder(
		mockAdapter.EXPECT().ListLeaves(gomock.Any()).DoAndReturn(func(ctx context.Context) ([]models.LeaveRequest, error) {
			_, err := s.Create(ctx, models.CreateLeaveRequest{Name: "Carol"})
			require.NoError(t, err)
			return stale, nil
		}),
		mockAdapter.EXPECT().CreateLeave(gomock.Any(), gomock.Any(), "key-1").Return(created, nil),
		mockAdapter.EXPECT().ListLeaves(gomock.Any()).Return(nil, errors.New("timeout")),
	)

	require.NoError(t, s.Refresh(context.Background()))

	snap := s.Snapshot()
	assert.Equal(t, []models.LeaveRequest{created}, snap.Leaves)
	assert.False(t, snap.Loading)
}
