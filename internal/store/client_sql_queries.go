package store

const (
	kvGet = `SELECT value FROM kv WHERE key = ?;`
	kvSet = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`

	selectEntities = `SELECT kind, payload FROM app_entities ORDER BY kind, position, id;`
	upsertEntity   = `INSERT INTO app_entities (kind, id, position, payload) VALUES (?, ?, ?, ?)
		ON CONFLICT(kind, id) DO UPDATE SET position = excluded.position, payload = excluded.payload;`
	deleteKind = `DELETE FROM app_entities WHERE kind = ?;`

	selectMeta = `SELECT key, value FROM app_meta;`
	upsertMeta = `INSERT INTO app_meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`
)

// app_meta keys.
const (
	metaVersion  = "version"
	metaLastSync = "last_sync_timestamp"
	metaTheme    = "theme"
	metaOwner    = "owner"
)
