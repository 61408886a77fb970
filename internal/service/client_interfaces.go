package service

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSyncService is the snapshot sync engine of the client. One instance
// is built per process by NewClientServices and handed to whatever triggers
// sync (app bootstrap, status screen). No method returns an error: failures
// are logged and surface as a false result.
type ClientSyncService interface {
	// Initialize resolves the device id and, when sync is configured, starts
	// one pull in the background (not awaited) and the periodic jobs.
	// Calling it again restarts the jobs.
	Initialize(ctx context.Context)

	// StopSync cancels the periodic jobs. An in-flight push still completes.
	// Safe to call when not started.
	StopSync()

	// ForceSyncNow pushes immediately. It returns false at once, without
	// queueing, when a push is already running.
	ForceSyncNow(ctx context.Context) bool

	// GetSyncStatus reads the current status without any I/O.
	GetSyncStatus() models.SyncStatus

	// Pull adopts the remote snapshot iff its version is strictly greater
	// than the local one. It reports whether local state was replaced.
	Pull(ctx context.Context) bool

	// Push uploads the current local snapshot unconditionally. It reports
	// whether the upload succeeded.
	Push(ctx context.Context) bool

	// IsSyncing reports whether a push is running.
	IsSyncing() bool

	// DeviceID returns the resolved device id, or "" before Initialize.
	DeviceID() string
}

// ClientSyncJob runs the periodic push and the connectivity poll. Both are
// independently cancellable tickers stopped together by Stop.
type ClientSyncJob interface {
	// Start launches both tickers. Any previously running tickers are
	// stopped first.
	Start(ctx context.Context)

	// Stop cancels both tickers and waits for their goroutines to exit.
	Stop()
}

// DeviceIdentityService resolves the stable id of this installation.
type DeviceIdentityService interface {
	// Resolve returns the persisted device id, creating and persisting a new
	// one when absent. It never fails: on storage errors it returns a
	// timestamp-only id that is not persisted.
	Resolve(ctx context.Context) string
}

// IdentityProvider answers which user the client is signed in as.
type IdentityProvider interface {
	// CurrentUserID returns the user id and true, or "" and false when there
	// is no usable session.
	CurrentUserID(ctx context.Context) (string, bool)
}

// ConnectivityProbe answers whether the snapshot server is reachable.
type ConnectivityProbe interface {
	// IsOnline never panics and returns false on any probe failure.
	IsOnline(ctx context.Context) bool
}

// ClientAuthService signs the client in against the snapshot server and
// keeps the session token in local storage across restarts.
type ClientAuthService interface {
	// Register creates the account, then keeps the returned session.
	Register(ctx context.Context, user models.User) error

	// Login authenticates and keeps the returned session.
	Login(ctx context.Context, user models.User) error

	// RestoreSession loads a saved, unexpired session token into the adapter.
	// It returns ErrNoSavedSession when there is none.
	RestoreSession(ctx context.Context) error

	// Logout forgets the session both in memory and on disk.
	Logout(ctx context.Context) error
}
