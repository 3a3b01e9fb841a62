package check

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"csrwatch/internal/calendar"
	"csrwatch/internal/catalog"
	"csrwatch/internal/report"
)

// timeBucketColumn is the record column holding the entry start time
// (HH:MM:SS) that buckets records into hours.
const timeBucketColumn = 3

// RunFeeds checks the hour-model record files for one day across every
// registered provider. The expected hour buckets come from the resolved hour
// windows. Only an unreadable registry returns an error; every other finding
// is recorded and the scan continues.
func (r *Runner) RunFeeds(ctx context.Context, day calendar.Window, hours []calendar.Window, rep *report.Collector) error {
	expected := make([]string, 0, len(hours))
	for _, h := range hours {
		expected = append(expected, h.HourStamp())
	}

	registry := r.cfg.Feeds.ProviderRegistry
	count := 0
	err := catalog.EachProvider(registry,
		func(p catalog.Provider) {
			count++
			if err := ctx.Err(); err != nil {
				return
			}
			r.checkFeed(p.Name, day, expected, rep)
		},
		func(line int, err error) {
			rep.Record(registry, report.StatusConfigError,
				fmt.Sprintf("Invalid provider registry entry at line %d: %v", line, err))
		})
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if count == 0 {
		rep.Record(registry, report.StatusConfigError,
			fmt.Sprintf("No active providers were found in %s", registry))
	}
	return nil
}

// checkFeed verifies one provider's record file for the day: existence,
// per-record metadata keys, and coverage of the expected hour buckets.
func (r *Runner) checkFeed(provider string, day calendar.Window, expected []string, rep *report.Collector) {
	process, exempt := catalog.Classify(provider)
	if exempt {
		r.logger.Info("ignoring exempt provider", "provider", provider)
		return
	}
	if process == catalog.ProcessUnrecognized {
		rep.Record(provider, report.StatusConfigError,
			fmt.Sprintf("The provider %s is not valid.", provider))
		return
	}

	feedDir := filepath.Join(r.cfg.Paths.CollectorLogDir, process.Dir(), provider)
	feedFile := filepath.Join(feedDir, day.DateStamp()+".txt")
	subject := fmt.Sprintf("%s/%s %s", process.Dir(), provider, day)

	info, err := os.Stat(feedDir)
	if err != nil || !info.IsDir() {
		rep.Record(subject, report.StatusMissingDirectory,
			fmt.Sprintf("The directory %s does not exist or is not a valid directory.", feedDir))
		return
	}

	fileInfo, err := os.Stat(feedFile)
	if err != nil || !fileInfo.Mode().IsRegular() {
		rep.Record(subject, report.StatusMissingSource,
			fmt.Sprintf("The file %s does not exist or is not a valid file.", feedFile))
		return
	}

	r.logger.Info("checking feed records", "provider", provider, "process", process.Dir(), "file", feedFile)

	observed, ok := r.scanRecords(subject, feedFile, rep)
	if !ok {
		return
	}

	for _, bucket := range expected {
		if _, found := observed[bucket]; found {
			r.logger.Debug("entries found", "provider", provider, "bucket", bucket)
			continue
		}
		rep.Record(subject, report.StatusMissingTimeBucket,
			fmt.Sprintf("Missing entries for %s (process: %s, feed: %s)", bucket, process.Dir(), provider))
	}
}

// scanRecords reads one feed file, reporting each record that lacks a
// required metadata key, and returns the set of observed time buckets.
// A read failure reports one finding and skips the bucket comparison, since
// an incompletely read file would produce misleading missing-bucket noise.
func (r *Runner) scanRecords(subject, path string, rep *report.Collector) (map[string]struct{}, bool) {
	file, err := os.Open(path)
	if err != nil {
		rep.Record(subject, report.StatusConfigError,
			fmt.Sprintf("Error reading CSR input file %s: %v", path, err))
		return nil, false
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	observed := make(map[string]struct{})
	row := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			rep.Record(subject, report.StatusConfigError,
				fmt.Sprintf("Error reading CSR input file %s: %v", path, err))
			return nil, false
		}
		row++

		if len(record) <= timeBucketColumn {
			rep.Record(subject, report.StatusMetadataIncomplete,
				fmt.Sprintf("Record %d of %s is truncated (%d columns)", row, path, len(record)))
			continue
		}
		observed[record[timeBucketColumn]] = struct{}{}

		if missing := missingMetadata(record, r.cfg.Feeds.MetadataFields); len(missing) > 0 {
			rep.Record(subject, report.StatusMetadataIncomplete,
				fmt.Sprintf("Missing metadata field(s) %v in record %d of %s", missing, row, path))
		}
	}
	return observed, true
}

// missingMetadata returns the required field names absent from the record.
// Fields are matched against whole cells, never by position: a field is
// present when some cell equals the field name or carries it as the key of a
// Name:value cell. Timestamp cells such as 03:00:00 cannot satisfy a field.
func missingMetadata(record, required []string) []string {
	var missing []string
	for _, field := range required {
		if !hasMetadataField(record, field) {
			missing = append(missing, field)
		}
	}
	return missing
}

func hasMetadataField(record []string, field string) bool {
	prefix := field + ":"
	for _, cell := range record {
		if cell == field || strings.HasPrefix(cell, prefix) {
			return true
		}
	}
	return false
}
