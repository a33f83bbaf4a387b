// Package kv is the raw key/value primitive under the record store: get, set
// and remove opaque values by string key.
//
// Three backends share the Store contract:
//   - SQLiteStore: a "slots" table in a local SQLite file, schema managed by
//     embedded goose migrations.
//   - BoltStore: a single bucket in a bbolt file.
//   - MemoryStore: a mutex-guarded map, for tests and throwaway sessions.
//
// Get on a missing key returns (nil, nil). Absence is not an error.
package kv
