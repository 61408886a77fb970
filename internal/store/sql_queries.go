package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (login, name, password_hash) 
    VALUES ($1, $2, $3) 
    RETURNING user_id, login, name, password_hash, created_at;`

	findUserByLogin = `SELECT user_id, login, name, password_hash, created_at 
    FROM users 
    WHERE login = $1;`
)

const snapshotsTable = "snapshots"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildGetSnapshotQuery(userID int64) (string, []any, error) {
	query, args, err := psql.
		Select("data", "version", "taken_at", "device_id").
		From(snapshotsTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildUpsertSnapshotQuery overwrites the user's row unconditionally.
func buildUpsertSnapshotQuery(userID int64, data []byte, version, takenAt int64, deviceID string) (string, []any, error) {
	query, args, err := psql.
		Insert(snapshotsTable).
		Columns("user_id", "data", "version", "taken_at", "device_id").
		Values(userID, data, version, takenAt, deviceID).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
		data = EXCLUDED.data,
		version = EXCLUDED.version,
		taken_at = EXCLUDED.taken_at,
		device_id = EXCLUDED.device_id,
		updated_at = NOW()`).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
