// Package registry provides the shared in-memory state behind the ESAF
// command surface. It is structured into small files by concern:
//
//   - registry.go: core Registry type, constructor, map operations.
//   - config.go: Config and package defaults; NewWithConfig applies defaults.
//   - types.go: internal state types (State, event names).
//   - errors.go: error types and helpers (IsLockUnavailable).
//   - status.go: Status/Ready reporting helpers.
//   - events.go: EventPublisher interface and the noop default.
//   - eventpub_memory.go: in-memory publisher for tests.
//   - bus.go: fan-out publisher feeding the /events stream.
//
// The Registry holds two independent mappings (agent id -> status, task
// id -> payload) behind one RWMutex covering both. Reads return snapshot
// copies taken under the lock; writers overwrite unconditionally. A panic
// raised while the lock is held poisons the registry and every later
// operation fails with a lock-unavailable error.
//
// External packages should construct one Registry at startup and pass the
// handle explicitly; there is no package-level instance.
package registry
