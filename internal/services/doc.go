// Package services defines the shared error taxonomy for pipeline components.
//
// Errors are tagged with sentinel markers so callers can classify failures
// without string matching: transient-file conditions are silently skipped,
// configuration problems abort startup, and unsupported-format conditions
// degrade to empty extraction output.
package services
