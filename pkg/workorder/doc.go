// Package workorder implements the work order resource: the concurrent
// in-memory store with atomic identifier generation, field-level validation
// for creation and partial update, conjunctive collection filtering, and the
// HTTP handler that maps verbs and paths onto store operations.
//
// The store is the only shared mutable state in the service. Handlers and
// validators are stateless; the store is injected into the Handler, never
// reached through package globals.
package workorder
