// Package journal records completed moves in a SQLite database.
//
// The journal is an audit trail, not pipeline state: candidate files carry
// no persisted record while in flight, and a crash mid-pipeline simply
// leaves the file in place. Only the final outcome of a successful move is
// written, one row per move, for `sortd history`. A disabled journal
// degrades to a no-op recorder so the pipeline never depends on it.
package journal
