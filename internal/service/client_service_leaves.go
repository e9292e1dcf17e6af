package service

import (
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-leave-tracker/internal/adapter"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/models"
)

// LeaveListSnapshot is a point-in-time copy of the client leave list.
type LeaveListSnapshot struct {
	Leaves []models.LeaveRequest

	// Loading is true while at least one refetch is in flight.
	Loading bool

	// Loaded is true once any refetch has succeeded.
	Loaded bool

	// Err is the error of the most recent failed refetch, cleared by the
	// next successful one.
	Err error
}

// LeaveListStore implements [LeaveListService].
type LeaveListStore struct {
	adapter adapter.ServerAdapter
	keys    KeyGenerator

	mu     sync.Mutex
	leaves []models.LeaveRequest
	// generation counts completed mutations. A refetch remembers the value it
	// started with and drops its result if the value moved.
	generation uint64
	inFlight   int
	loaded     bool
	lastErr    error

	logger *logger.Logger
}

func NewLeaveListStore(serverAdapter adapter.ServerAdapter, keys KeyGenerator, logger *logger.Logger) *LeaveListStore {
	return &LeaveListStore{
		adapter: serverAdapter,
		keys:    keys,
		leaves:  []models.LeaveRequest{},
		logger:  logger,
	}
}

func (s *LeaveListStore) Snapshot() LeaveListSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return LeaveListSnapshot{
		Leaves:  slices.Clone(s.leaves),
		Loading: s.inFlight > 0,
		Loaded:  s.loaded,
		Err:     s.lastErr,
	}
}

func (s *LeaveListStore) Refresh(ctx context.Context) error {
	s.mu.Lock()
	startedAt := s.generation
	s.inFlight++
	s.mu.Unlock()

	leaves, err := s.adapter.ListLeaves(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if err != nil {
		s.lastErr = mapAdapterError(err)
		s.logger.Err(err).Str("func", "*LeaveListStore.Refresh").Msg("error refreshing leaves")
		return s.lastErr
	}

	if s.generation != startedAt {
		s.logger.Debug().Str("func", "*LeaveListStore.Refresh").Msg("stale refetch dropped")
		return nil
	}

	s.leaves = leaves
	s.loaded = true
	s.lastErr = nil
	return nil
}

func (s *LeaveListStore) Create(ctx context.Context, req models.CreateLeaveRequest) (models.LeaveRequest, error) {
	created, err := s.adapter.CreateLeave(ctx, req, s.keys.Generate())
	if err != nil {
		s.logger.Err(err).Str("func", "*LeaveListStore.Create").Msg("error creating leave")
		return models.LeaveRequest{}, mapAdapterError(err)
	}

	s.mu.Lock()
	s.leaves = append(slices.Clone(s.leaves), created)
	s.generation++
	s.mu.Unlock()

	s.refetchAfterMutation(ctx)
	return created, nil
}

func (s *LeaveListStore) Delete(ctx context.Context, id int64) (models.LeaveRequest, error) {
	deleted, err := s.adapter.DeleteLeave(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "*LeaveListStore.Delete").Int64("id", id).Msg("error deleting leave")
		return models.LeaveRequest{}, mapAdapterError(err)
	}

	s.mu.Lock()
	s.leaves = slices.DeleteFunc(slices.Clone(s.leaves), func(l models.LeaveRequest) bool {
		return l.ID == id
	})
	s.generation++
	s.mu.Unlock()

	s.refetchAfterMutation(ctx)
	return deleted, nil
}

// refetchAfterMutation reports refetch errors through the snapshot only; the
// mutation itself already succeeded.
func (s *LeaveListStore) refetchAfterMutation(ctx context.Context) {
	_ = s.Refresh(ctx)
}
