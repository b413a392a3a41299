// Package types defines the domain entities, the snapshot Backend interface,
// and standard errors for the daybook state store.
//
// All entities are identified by opaque string IDs (UUID v7) unique within
// their collection. References between entities are plain ID fields; a
// reference to a deleted entity is a normal, non-exceptional outcome that
// callers resolve with the lookup helpers on AppState.
package types
