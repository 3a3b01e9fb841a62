// Command csrwatch verifies time-partitioned CSR collection data. The check
// subcommand walks per-day upload files and stages present ones into the
// collector tree; the feeds subcommand verifies hourly provider records. Gaps
// are consolidated into one report per run and mailed to the configured
// distribution group.
package main
