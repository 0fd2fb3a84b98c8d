// Command sortd sorts a downloads directory into destination folders.
// `sortd watch` runs the long-lived watcher; `sortd sort` performs a
// one-shot pass over files already present.
package main
