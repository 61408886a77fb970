package store

import (
	"context"

	"github.com/MKhiriev/shelfsync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Keys stored in the client key-value table.
const (
	KeyDeviceID     = "sync_device_id"
	KeySessionToken = "session_token"
)

// KeyValueRepository is the client's small persistent key-value table.
// Get reports found=false without error for a missing key.
type KeyValueRepository interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LocalStateStore holds the whole application document of the client plus
// its mutation counter. Reads are served from memory and never touch disk.
// Every mutator persists first and bumps Version by exactly one.
type LocalStateStore interface {
	CurrentState() models.AppData
	// CurrentStateVersion returns the document and the version it belongs to,
	// read under one lock.
	CurrentStateVersion() (models.AppData, int64)
	Version() int64
	LastSyncTimestamp() int64
	Theme() string
	// Owner is the user id the local document belongs to, empty until claimed.
	Owner() string

	SaveBook(ctx context.Context, book models.Book) error
	DeleteBook(ctx context.Context, id string) error
	SaveFriend(ctx context.Context, friend models.Friend) error
	DeleteFriend(ctx context.Context, id string) error
	SaveActivity(ctx context.Context, activity models.Activity) error
	SaveGroup(ctx context.Context, group models.Group) error
	DeleteGroup(ctx context.Context, id string) error
	SaveFriendRequest(ctx context.Context, request models.FriendRequest) error
	DeleteFriendRequest(ctx context.Context, id string) error
	SetChallenge(ctx context.Context, challenge *models.Challenge) error
	SetStats(ctx context.Context, stats models.UserStats) error
	SetProfile(ctx context.Context, profile models.UserProfile) error
	SetTheme(ctx context.Context, theme string) error

	// ReplaceCollection clears the collection of the given kind and refills it
	// from data. Version is left untouched.
	ReplaceCollection(ctx context.Context, kind models.CollectionKind, data models.AppData) error
	// Restore replaces every collection, the version and the last sync time
	// in one transaction. Either all of it is applied or none.
	Restore(ctx context.Context, data models.AppData, version, lastSyncTimestamp int64) error
	// RestoreIfNewer is Restore guarded by version > Version(), checked under
	// the same lock as the write. applied=false means local state won.
	RestoreIfNewer(ctx context.Context, data models.AppData, version, lastSyncTimestamp int64) (applied bool, err error)
	SetLastSyncTimestamp(ctx context.Context, ms int64) error

	// ClaimOwner binds the local document to userID. An unowned document is
	// adopted as is. A document owned by another user is wiped, with version
	// and last sync time reset to zero, and reset=true is returned.
	ClaimOwner(ctx context.Context, userID string) (reset bool, err error)
}
