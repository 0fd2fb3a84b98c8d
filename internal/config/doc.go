// Package config loads, normalizes, and validates sortd configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the watch daemon and CLI need: the watched directory, the destination
// root, the ordered route table, content-scan extensions, and timing
// settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized absolute paths and clear validation errors. The loaded Config
// is treated as immutable and passed explicitly into each component.
package config
