// Package watcher observes the watched directory and reports candidate file
// paths.
//
// Two interchangeable strategies implement the Watcher capability: an
// event-driven watcher built on fsnotify (creation and write events,
// non-recursive) and a polling fallback that diffs directory snapshots every
// interval. Select probes event support at startup and falls back to
// polling, so absence of a native event facility is a mode switch rather
// than an error.
//
// Either strategy may report the same file more than once across its
// lifecycle (a create followed by a later write, for example). Downstream
// processing is idempotent: a file that was already moved simply fails the
// settling gate's existence check on the redundant dispatch.
package watcher
