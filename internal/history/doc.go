// Package history persists a ledger of past check runs in SQLite.
//
// One row per run plus one row per non-OK result lets operators answer "when
// did this feed last go missing" without digging through cron mail. The
// ledger is strictly observational: checks behave identically with history
// disabled, and a ledger write failure never fails the run.
package history
