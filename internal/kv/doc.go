// Package kv is the persistence boundary of the logbook: a flat string-keyed
// store of text values with optional transactions.
//
// Two implementations are provided. SQLiteStore keeps values in a single
// table of a local SQLite file whose schema is managed by goose migrations.
// MemoryStore keeps them in a map and is meant for tests and throwaway
// sessions.
package kv
