// Package mover relocates classified files into their destination folders.
//
// Destination directories are created lazily and idempotently under the
// configured root. Name collisions are resolved by probing " (1)", " (2)",
// and so on before the extension until a free name is found; the probe is
// sequential and not atomic against concurrent writers, which is acceptable
// for single-host, low-concurrency use. Moves are a single rename where
// possible, with a copy-then-remove fallback across filesystems.
package mover
