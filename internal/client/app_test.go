package client

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-leave-tracker/internal/config"
	"github.com/MKhiriev/go-leave-tracker/internal/logger"
	"github.com/MKhiriev/go-leave-tracker/internal/mock"
	"github.com/MKhiriev/go-leave-tracker/internal/service"
	"github.com/MKhiriev/go-leave-tracker/internal/tui"
	"github.com/MKhiriev/go-leave-tracker/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	run func(ctx context.Context) error
}

func (f fakeUI) Run(ctx context.Context) error {
	return f.run(ctx)
}

func newTestServices(t *testing.T, lists *atomic.Int32) *service.ClientServices {
	t.Helper()
	ctrl := gomock.NewController(t)
	adapter := mock.NewMockServerAdapter(ctrl)
	adapter.EXPECT().ListLeaves(gomock.Any()).DoAndReturn(func(context.Context) ([]models.LeaveRequest, error) {
		lists.Add(1)
		return nil, nil
	}).AnyTimes()
	return service.NewClientServices(adapter, logger.Nop())
}

func TestNewApp_NilDependencies(t *testing.T) {
	_, err := NewApp(nil, fakeUI{}, config.ClientWorkers{}, logger.Nop())
	require.ErrorIs(t, err, errNilDependency)
}

func TestApp_Run_RefreshesWhileUIRuns(t *testing.T) {
	var lists atomic.Int32
	services := newTestServices(t, &lists)

	ui := fakeUI{run: func(ctx context.Context) error {
		require.Eventually(t, func() bool { return lists.Load() >= 2 }, time.Second, 5*time.Millisecond)
		return nil
	}}

	app, err := NewApp(services, ui, config.ClientWorkers{RefreshInterval: 10 * time.Millisecond}, logger.Nop())
	require.NoError(t, err)

	require.NoError(t, app.Run())

	stopped := lists.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, stopped, lists.Load(), "refresh must stop with the UI")
}

func TestApp_Run_UserQuitIsNotAnError(t *testing.T) {
	var lists atomic.Int32
	app, err := NewApp(newTestServices(t, &lists), fakeUI{run: func(context.Context) error {
		return tui.ErrUserQuit
	}}, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	assert.NoError(t, app.Run())
}

func TestApp_Run_UIError(t *testing.T) {
	var lists atomic.Int32
	boom := errors.New("boom")
	app, err := NewApp(newTestServices(t, &lists), fakeUI{run: func(context.Context) error {
		return boom
	}}, config.ClientWorkers{}, logger.Nop())
	require.NoError(t, err)

	assert.ErrorIs(t, app.Run(), boom)
}
