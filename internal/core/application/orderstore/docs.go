// Package orderstore holds the session-wide order collection.
//
// The store is the single source of truth for what the running session
// shows: command handlers mutate it, queries and the HTTP layer read it,
// the change-feed consumer merges writes made by other sessions into it.
// Persistence is a side effect: after every local mutation the store
// snapshots itself through a SnapshotSaver and moves on regardless of
// the outcome.
package orderstore
