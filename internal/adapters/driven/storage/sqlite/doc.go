// Package sqlite stores the lexicon in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. Besides the lexicon itself it keeps a history of builds,
// so it implements both driven.LexiconStore and driven.RunRecorder.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Writes
//
// Save replaces the stored lexicon inside a single transaction, so readers
// see either the previous lexicon or the new one.
package sqlite
