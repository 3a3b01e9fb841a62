// Package check implements the completeness checkers.
//
// The day model walks the configured consolidation jobs, discovers satellite
// directories under each job root, verifies the expected per-day upload file
// exists, and remediates present files by copying them (metadata preserved)
// into the collector staging tree. The hour model walks the provider
// registry, classifies each provider into a processing category, and
// verifies the day's record file exists, carries the required metadata fields
// in every record, and covers every expected hour bucket.
//
// Every finding is recorded into the run's report.Collector and processing
// continues with the next artifact; only an unreadable provider registry
// aborts a run.
package check
