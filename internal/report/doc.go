// Package report accumulates structured check results for a single run.
//
// Every stage records results into one run-scoped Collector instead of a
// process-wide list; the ordered error records are joined into text only at
// the notification boundary. Present and CopiedOk results are kept for the
// verbose summary but never count as errors.
package report
