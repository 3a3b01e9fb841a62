// Package config loads, normalizes, and validates csrwatch configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the checkers need: the upload root and collector log tree, the job catalog,
// the provider registry and metadata field list for the feed checker, the
// mailing-list and SMTP settings for notifications, and the optional run
// history ledger.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
