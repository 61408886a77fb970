package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/internal/mock"
	"github.com/MKhiriev/shelfsync/internal/service"
	"github.com/MKhiriev/shelfsync/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeUI struct {
	loginErr   error
	logouts    []bool
	loopErr    error
	loginCalls int
	loopCalls  int
}

func (f *fakeUI) LoginFlow(context.Context) error {
	f.loginCalls++
	return f.loginErr
}

func (f *fakeUI) MainLoop(context.Context) (bool, error) {
	f.loopCalls++
	if f.loopErr != nil {
		return false, f.loopErr
	}
	if len(f.logouts) == 0 {
		return false, nil
	}
	logout := f.logouts[0]
	f.logouts = f.logouts[1:]
	return logout, nil
}

type appFixture struct {
	auth *mock.MockClientAuthService
	sync *mock.MockClientSyncService
	ui   *fakeUI
}

func newApp(t *testing.T, online bool) (*App, *appFixture) {
	ctrl := gomock.NewController(t)
	f := &appFixture{
		auth: mock.NewMockClientAuthService(ctrl),
		sync: mock.NewMockClientSyncService(ctrl),
		ui:   &fakeUI{},
	}

	services := &service.ClientServices{AuthService: f.auth, SyncService: f.sync}
	app, err := NewApp(services, f.ui, online, logger.Nop())
	require.NoError(t, err)
	return app, f
}

func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(nil, &fakeUI{}, true, logger.Nop())
	assert.ErrorIs(t, err, ErrNoServices)

	_, err = NewApp(&service.ClientServices{}, nil, true, logger.Nop())
	assert.ErrorIs(t, err, ErrNoUI)
}

func TestApp_Run_RestoredSession(t *testing.T) {
	app, f := newApp(t, true)

	gomock.InOrder(
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(nil),
		f.sync.EXPECT().Initialize(gomock.Any()),
		f.sync.EXPECT().StopSync(),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 0, f.ui.loginCalls)
	assert.Equal(t, 1, f.ui.loopCalls)
}

func TestApp_Run_LoginRequired(t *testing.T) {
	tests := []struct {
		name       string
		restoreErr error
	}{
		{name: "no session", restoreErr: service.ErrNoSavedSession},
		{name: "expired", restoreErr: service.ErrTokenIsExpired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, f := newApp(t, true)

			f.auth.EXPECT().RestoreSession(gomock.Any()).Return(tt.restoreErr)
			f.sync.EXPECT().Initialize(gomock.Any())
			f.sync.EXPECT().StopSync()

			require.NoError(t, app.Run(context.Background()))
			assert.Equal(t, 1, f.ui.loginCalls)
		})
	}
}

func TestApp_Run_RestoreFails(t *testing.T) {
	app, f := newApp(t, true)
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(errors.New("disk I/O error"))

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "restore session")
	assert.Equal(t, 0, f.ui.loopCalls)
}

func TestApp_Run_UserQuitsAtLogin(t *testing.T) {
	app, f := newApp(t, true)
	f.ui.loginErr = tui.ErrUserQuit
	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(service.ErrNoSavedSession)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 0, f.ui.loopCalls)
}

func TestApp_Run_LogoutStartsOver(t *testing.T) {
	app, f := newApp(t, true)
	f.ui.logouts = []bool{true, false}

	gomock.InOrder(
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(nil),
		f.sync.EXPECT().Initialize(gomock.Any()),
		f.sync.EXPECT().StopSync(),
		f.auth.EXPECT().Logout(gomock.Any()).Return(nil),
		f.auth.EXPECT().RestoreSession(gomock.Any()).Return(service.ErrNoSavedSession),
		f.sync.EXPECT().Initialize(gomock.Any()),
		f.sync.EXPECT().StopSync(),
	)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 1, f.ui.loginCalls)
	assert.Equal(t, 2, f.ui.loopCalls)
}

func TestApp_Run_LogoutFails(t *testing.T) {
	app, f := newApp(t, true)
	f.ui.logouts = []bool{true}

	f.auth.EXPECT().RestoreSession(gomock.Any()).Return(nil)
	f.sync.EXPECT().Initialize(gomock.Any())
	f.sync.EXPECT().StopSync()
	f.auth.EXPECT().Logout(gomock.Any()).Return(errors.New("readonly database"))

	assert.Error(t, app.Run(context.Background()))
}

func TestApp_Run_Offline(t *testing.T) {
	app, f := newApp(t, false)
	f.ui.logouts = []bool{true}

	f.sync.EXPECT().Initialize(gomock.Any())
	f.sync.EXPECT().StopSync()
	f.auth.EXPECT().Logout(gomock.Any()).Return(nil)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 0, f.ui.loginCalls)
	assert.Equal(t, 1, f.ui.loopCalls)
}

func TestApp_Run_MainLoopErrorStopsSync(t *testing.T) {
	app, f := newApp(t, false)
	f.ui.loopErr = errors.New("no tty")

	f.sync.EXPECT().Initialize(gomock.Any())
	f.sync.EXPECT().StopSync()

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no tty")
}
