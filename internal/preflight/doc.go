// Package preflight validates the environment before the watch loop starts:
// the watched directory must be readable, the destination root writable, and
// the destination filesystem must have free space. The CLI renders the
// results before handing control to the daemon.
package preflight
