// Package settle decides whether a freshly observed file is safe to process.
//
// Download clients create a file immediately and stream bytes into it, often
// under a temporary name that is renamed once the transfer completes. The
// gate therefore runs its checks twice around a fixed settle delay: reject
// anything missing, non-regular, or named like an in-progress download, wait
// for the writer to finish, then re-check. A file admitted by the gate has
// held a stable, final-looking name for the full delay.
package settle
