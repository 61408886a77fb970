// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/MKhiriev/shelfsync/internal/logger"
	"github.com/MKhiriev/shelfsync/models"
)

// localStateStore keeps the application document in memory and mirrors every
// change into the sqlite tables app_entities and app_meta. Collections are
// stored one row per entity with a contiguous position; singletons (challenge,
// stats, user) use an empty id.
type localStateStore struct {
	db     *DB
	logger *logger.Logger

	mu       sync.RWMutex
	data     models.AppData
	version  int64
	lastSync int64
	theme    string
	owner    string
}

type entityRow struct {
	id       string
	position int
	payload  string
}

type txWrite func(ctx context.Context, tx *sql.Tx) error

// NewLocalStateStore loads the persisted document from db.
// The schema must already be migrated.
func NewLocalStateStore(ctx context.Context, db *DB, logger *logger.Logger) (LocalStateStore, error) {
	s := &localStateStore{db: db, logger: logger}
	if err := s.load(ctx); err != nil {
		logger.Err(err).Str("func", "NewLocalStateStore").Msg("failed to load local state")
		return nil, err
	}

	logger.Debug().
		Int64("version", s.version).
		Int64("last_sync", s.lastSync).
		Int("books", len(s.data.Books)).
		Msg("local state loaded")
	return s, nil
}

// load reads entities and meta in two passes. The sqlite pool holds a single
// connection, so each result set is closed before the next query.
func (s *localStateStore) load(ctx context.Context) error {
	data, err := s.loadEntities(ctx)
	if err != nil {
		return err
	}
	if err = s.loadMeta(ctx); err != nil {
		return err
	}

	s.data = data
	return nil
}

func (s *localStateStore) loadEntities(ctx context.Context) (models.AppData, error) {
	var data models.AppData

	rows, err := s.db.QueryContext(ctx, selectEntities)
	if err != nil {
		return data, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var kind, payload string
		if err = rows.Scan(&kind, &payload); err != nil {
			return data, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err = decodeEntity(&data, models.CollectionKind(kind), []byte(payload)); err != nil {
			return data, err
		}
	}
	if err = rows.Err(); err != nil {
		return data, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return data, nil
}

func (s *localStateStore) loadMeta(ctx context.Context) error {
	rows, err := s.db.QueryContext(ctx, selectMeta)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		switch key {
		case metaVersion:
			s.version, err = strconv.ParseInt(value, 10, 64)
		case metaLastSync:
			s.lastSync, err = strconv.ParseInt(value, 10, 64)
		case metaTheme:
			s.theme = value
		case metaOwner:
			s.owner = value
		}
		if err != nil {
			return fmt.Errorf("%w: meta %s: %w", ErrEncodingPayload, key, err)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	return nil
}

// ── reads ─────────────────────────────────────────────────────────────────────

func (s *localStateStore) CurrentState() models.AppData {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone()
}

func (s *localStateStore) CurrentStateVersion() (models.AppData, int64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data.Clone(), s.version
}

func (s *localStateStore) Version() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *localStateStore) LastSyncTimestamp() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSync
}

func (s *localStateStore) Theme() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *localStateStore) Owner() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}

// ── mutators ──────────────────────────────────────────────────────────────────

func bookID(b models.Book) string                   { return b.ID }
func friendID(f models.Friend) string               { return f.ID }
func activityID(a models.Activity) string           { return a.ID }
func groupID(g models.Group) string                 { return g.ID }
func friendRequestID(r models.FriendRequest) string { return r.ID }

func (s *localStateStore) SaveBook(ctx context.Context, book models.Book) error {
	return saveEntity(ctx, s, "localStateStore.SaveBook", models.KindBooks, book, bookID,
		func(d *models.AppData) *[]models.Book { return &d.Books })
}

func (s *localStateStore) DeleteBook(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, "localStateStore.DeleteBook", models.KindBooks, id, bookID,
		func(d *models.AppData) *[]models.Book { return &d.Books })
}

func (s *localStateStore) SaveFriend(ctx context.Context, friend models.Friend) error {
	return saveEntity(ctx, s, "localStateStore.SaveFriend", models.KindFriends, friend, friendID,
		func(d *models.AppData) *[]models.Friend { return &d.Friends })
}

func (s *localStateStore) DeleteFriend(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, "localStateStore.DeleteFriend", models.KindFriends, id, friendID,
		func(d *models.AppData) *[]models.Friend { return &d.Friends })
}

func (s *localStateStore) SaveActivity(ctx context.Context, activity models.Activity) error {
	return saveEntity(ctx, s, "localStateStore.SaveActivity", models.KindActivities, activity, activityID,
		func(d *models.AppData) *[]models.Activity { return &d.Activities })
}

func (s *localStateStore) SaveGroup(ctx context.Context, group models.Group) error {
	group.MemberIDs = slices.Clone(group.MemberIDs)
	return saveEntity(ctx, s, "localStateStore.SaveGroup", models.KindGroups, group, groupID,
		func(d *models.AppData) *[]models.Group { return &d.Groups })
}

func (s *localStateStore) DeleteGroup(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, "localStateStore.DeleteGroup", models.KindGroups, id, groupID,
		func(d *models.AppData) *[]models.Group { return &d.Groups })
}

func (s *localStateStore) SaveFriendRequest(ctx context.Context, request models.FriendRequest) error {
	return saveEntity(ctx, s, "localStateStore.SaveFriendRequest", models.KindFriendRequests, request, friendRequestID,
		func(d *models.AppData) *[]models.FriendRequest { return &d.FriendRequests })
}

func (s *localStateStore) DeleteFriendRequest(ctx context.Context, id string) error {
	return deleteEntity(ctx, s, "localStateStore.DeleteFriendRequest", models.KindFriendRequests, id, friendRequestID,
		func(d *models.AppData) *[]models.FriendRequest { return &d.FriendRequests })
}

// SetChallenge replaces the reading challenge. nil removes it.
func (s *localStateStore) SetChallenge(ctx context.Context, challenge *models.Challenge) error {
	return s.mutate(ctx, "localStateStore.SetChallenge", func(next *models.AppData) (txWrite, error) {
		next.Challenge = nil
		if challenge != nil {
			c := *challenge
			next.Challenge = &c
		}
		return replaceKindWrite(models.KindChallenge, *next), nil
	})
}

func (s *localStateStore) SetStats(ctx context.Context, stats models.UserStats) error {
	return s.mutate(ctx, "localStateStore.SetStats", func(next *models.AppData) (txWrite, error) {
		next.Stats = stats
		next.Stats.Achievements = slices.Clone(stats.Achievements)
		return replaceKindWrite(models.KindStats, *next), nil
	})
}

func (s *localStateStore) SetProfile(ctx context.Context, profile models.UserProfile) error {
	return s.mutate(ctx, "localStateStore.SetProfile", func(next *models.AppData) (txWrite, error) {
		next.User = profile
		return replaceKindWrite(models.KindUser, *next), nil
	})
}

// SetTheme stores the local-only UI theme. It is not part of the snapshot
// but still counts as a mutation.
func (s *localStateStore) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.commitVersioned(ctx, "localStateStore.SetTheme", execWrite(upsertMeta, metaTheme, theme)); err != nil {
		return err
	}
	s.theme = theme
	return nil
}

// ── sync API ──────────────────────────────────────────────────────────────────

func (s *localStateStore) ReplaceCollection(ctx context.Context, kind models.CollectionKind, data models.AppData) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	if err := copyCollection(&next, kind, data.Clone()); err != nil {
		return err
	}

	if err := s.inTx(ctx, replaceKindWrite(kind, next)); err != nil {
		s.logger.Err(err).Str("func", "localStateStore.ReplaceCollection").Str("kind", string(kind)).Msg("failed to replace collection")
		return err
	}

	s.data = next
	return nil
}

func (s *localStateStore) Restore(ctx context.Context, data models.AppData, version, lastSyncTimestamp int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.restoreLocked(ctx, "localStateStore.Restore", data, version, lastSyncTimestamp)
}

func (s *localStateStore) RestoreIfNewer(ctx context.Context, data models.AppData, version, lastSyncTimestamp int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if version <= s.version {
		return false, nil
	}
	if err := s.restoreLocked(ctx, "localStateStore.RestoreIfNewer", data, version, lastSyncTimestamp); err != nil {
		return false, err
	}
	return true, nil
}

func (s *localStateStore) ClaimOwner(ctx context.Context, userID string) (bool, error) {
	if userID == "" {
		return false, ErrEmptyOwner
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.owner {
	case userID:
		return false, nil
	case "":
		if err := s.inTx(ctx, execWrite(upsertMeta, metaOwner, userID)); err != nil {
			s.logger.Err(err).Str("func", "localStateStore.ClaimOwner").Msg("failed to store owner")
			return false, err
		}
		s.owner = userID
		return false, nil
	}

	err := s.restoreLocked(ctx, "localStateStore.ClaimOwner", models.AppData{}, 0, 0,
		execWrite(upsertMeta, metaOwner, userID))
	if err != nil {
		return false, err
	}
	s.logger.Info().Str("previous_owner", s.owner).Str("owner", userID).Msg("local state reset for new owner")
	s.owner = userID
	return true, nil
}

func (s *localStateStore) SetLastSyncTimestamp(ctx context.Context, ms int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.inTx(ctx, execWrite(upsertMeta, metaLastSync, strconv.FormatInt(ms, 10))); err != nil {
		s.logger.Err(err).Str("func", "localStateStore.SetLastSyncTimestamp").Msg("failed to store last sync timestamp")
		return err
	}
	s.lastSync = ms
	return nil
}

// ── internals ─────────────────────────────────────────────────────────────────

// restoreLocked replaces every collection, the version and the last sync time
// in one transaction together with extra. s.mu must be held.
func (s *localStateStore) restoreLocked(ctx context.Context, fn string, data models.AppData, version, lastSyncTimestamp int64, extra ...txWrite) error {
	restored := data.Clone()

	writes := make([]txWrite, 0, len(models.AllCollectionKinds)+2+len(extra))
	for _, kind := range models.AllCollectionKinds {
		writes = append(writes, replaceKindWrite(kind, restored))
	}
	writes = append(writes,
		execWrite(upsertMeta, metaVersion, strconv.FormatInt(version, 10)),
		execWrite(upsertMeta, metaLastSync, strconv.FormatInt(lastSyncTimestamp, 10)),
	)
	writes = append(writes, extra...)

	if err := s.inTx(ctx, writes...); err != nil {
		s.logger.Err(err).Str("func", fn).Int64("version", version).Msg("failed to restore local state")
		return err
	}

	s.data = restored
	s.version = version
	s.lastSync = lastSyncTimestamp
	return nil
}

// mutate applies fn to a copy of the document, persists the returned write
// together with the bumped version, and only then swaps the copy in.
func (s *localStateStore) mutate(ctx context.Context, fn string, apply func(next *models.AppData) (txWrite, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.data.Clone()
	write, err := apply(&next)
	if err != nil {
		return err
	}

	if err = s.commitVersioned(ctx, fn, write); err != nil {
		return err
	}
	s.data = next
	return nil
}

// commitVersioned must be called with mu held.
func (s *localStateStore) commitVersioned(ctx context.Context, fn string, write txWrite) error {
	version := s.version + 1
	if err := s.inTx(ctx, write, execWrite(upsertMeta, metaVersion, strconv.FormatInt(version, 10))); err != nil {
		s.logger.Err(err).Str("func", fn).Msg("failed to persist local mutation")
		return err
	}
	s.version = version
	return nil
}

func (s *localStateStore) inTx(ctx context.Context, writes ...txWrite) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, write := range writes {
		if err = write(ctx, tx); err != nil {
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func saveEntity[T any](ctx context.Context, s *localStateStore, fn string, kind models.CollectionKind, item T,
	idOf func(T) string, field func(*models.AppData) *[]T) error {
	id := idOf(item)
	if id == "" {
		return ErrMissingEntityID
	}

	return s.mutate(ctx, fn, func(next *models.AppData) (txWrite, error) {
		items := field(next)
		position := slices.IndexFunc(*items, func(it T) bool { return idOf(it) == id })
		if position < 0 {
			*items = append(*items, item)
			position = len(*items) - 1
		} else {
			(*items)[position] = item
		}

		payload, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}
		return execWrite(upsertEntity, string(kind), id, position, string(payload)), nil
	})
}

// deleteEntity rewrites the whole collection so positions stay contiguous.
func deleteEntity[T any](ctx context.Context, s *localStateStore, fn string, kind models.CollectionKind, id string,
	idOf func(T) string, field func(*models.AppData) *[]T) error {
	return s.mutate(ctx, fn, func(next *models.AppData) (txWrite, error) {
		items := field(next)
		position := slices.IndexFunc(*items, func(it T) bool { return idOf(it) == id })
		if position < 0 {
			return nil, fmt.Errorf("%w: %s %s", ErrEntityNotFound, kind, id)
		}
		*items = slices.Delete(*items, position, position+1)
		return replaceKindWrite(kind, *next), nil
	})
}

func execWrite(query string, args ...any) txWrite {
	return func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return nil
	}
}

// replaceKindWrite clears every row of kind and inserts the collection from data.
func replaceKindWrite(kind models.CollectionKind, data models.AppData) txWrite {
	return func(ctx context.Context, tx *sql.Tx) error {
		rows, err := encodeCollection(kind, data)
		if err != nil {
			return err
		}

		if err = execWrite(deleteKind, string(kind))(ctx, tx); err != nil {
			return err
		}
		for _, row := range rows {
			if err = execWrite(upsertEntity, string(kind), row.id, row.position, row.payload)(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	}
}

func encodeCollection(kind models.CollectionKind, data models.AppData) ([]entityRow, error) {
	switch kind {
	case models.KindBooks:
		return encodeItems(data.Books, bookID)
	case models.KindFriends:
		return encodeItems(data.Friends, friendID)
	case models.KindActivities:
		return encodeItems(data.Activities, activityID)
	case models.KindGroups:
		return encodeItems(data.Groups, groupID)
	case models.KindFriendRequests:
		return encodeItems(data.FriendRequests, friendRequestID)
	case models.KindChallenge:
		if data.Challenge == nil {
			return nil, nil
		}
		return encodeSingle(*data.Challenge)
	case models.KindStats:
		return encodeSingle(data.Stats)
	case models.KindUser:
		return encodeSingle(data.User)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownCollection, kind)
	}
}

// encodeItems keeps rows with a duplicated or empty id apart by falling back
// to a position based id.
func encodeItems[T any](items []T, idOf func(T) string) ([]entityRow, error) {
	rows := make([]entityRow, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		payload, err := json.Marshal(item)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
		}

		id := idOf(item)
		if _, dup := seen[id]; dup || id == "" {
			id = "#" + strconv.Itoa(i)
		}
		seen[id] = struct{}{}

		rows = append(rows, entityRow{id: id, position: i, payload: string(payload)})
	}
	return rows, nil
}

func encodeSingle(v any) ([]entityRow, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}
	return []entityRow{{payload: string(payload)}}, nil
}

func decodeEntity(data *models.AppData, kind models.CollectionKind, payload []byte) error {
	var err error
	switch kind {
	case models.KindBooks:
		data.Books, err = appendDecoded(data.Books, payload)
	case models.KindFriends:
		data.Friends, err = appendDecoded(data.Friends, payload)
	case models.KindActivities:
		data.Activities, err = appendDecoded(data.Activities, payload)
	case models.KindGroups:
		data.Groups, err = appendDecoded(data.Groups, payload)
	case models.KindFriendRequests:
		data.FriendRequests, err = appendDecoded(data.FriendRequests, payload)
	case models.KindChallenge:
		var challenge models.Challenge
		err = json.Unmarshal(payload, &challenge)
		data.Challenge = &challenge
	case models.KindStats:
		err = json.Unmarshal(payload, &data.Stats)
	case models.KindUser:
		err = json.Unmarshal(payload, &data.User)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCollection, kind)
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrEncodingPayload, kind, err)
	}
	return nil
}

func appendDecoded[T any](items []T, payload []byte) ([]T, error) {
	var item T
	if err := json.Unmarshal(payload, &item); err != nil {
		return items, err
	}
	return append(items, item), nil
}

// copyCollection moves the collection of kind from src into dst.
func copyCollection(dst *models.AppData, kind models.CollectionKind, src models.AppData) error {
	switch kind {
	case models.KindBooks:
		dst.Books = src.Books
	case models.KindFriends:
		dst.Friends = src.Friends
	case models.KindActivities:
		dst.Activities = src.Activities
	case models.KindGroups:
		dst.Groups = src.Groups
	case models.KindFriendRequests:
		dst.FriendRequests = src.FriendRequests
	case models.KindChallenge:
		dst.Challenge = src.Challenge
	case models.KindStats:
		dst.Stats = src.Stats
	case models.KindUser:
		dst.User = src.User
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCollection, kind)
	}
	return nil
}
