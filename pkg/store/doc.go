// Package store implements the single-owner application state store for
// daybook. A Store holds the one in-memory AppState, exposes a method per
// mutation, and writes the full JSON snapshot to its Backend after every
// change. Mutations are synchronous against the in-memory state; persistence
// is fire-and-forget, with failures logged and the in-memory state remaining
// the source of truth.
package store
