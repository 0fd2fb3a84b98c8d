// Package daemon ties the watch-mode pieces together: it enforces
// single-instance execution with a lock file, selects a watcher strategy,
// and runs the sorting pipeline until stopped.
package daemon
