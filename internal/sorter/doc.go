// Package sorter runs the per-file pipeline: settle gate, content
// extraction, route matching, and the final move. Each candidate file is an
// independent task; the dispatcher bounds how many run at once and drains
// in-flight tasks before shutdown. Files that match no route are left in
// place untouched.
package sorter
