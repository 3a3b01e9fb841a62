// Package logging constructs the slog loggers used across csrwatch.
//
// Cron deployments want silence on success, so the default level is warn and
// the verbose flag lowers it to debug for one run. Output goes to stdout and,
// when a log directory is configured, to a dated file alongside the run lock
// and history database. A console handler renders compact key=value lines; a
// JSON handler is available for log shippers.
package logging
