package report

import (
	"strings"
)

// Status classifies the outcome of checking one expected artifact, record, or
// time bucket.
type Status int

const (
	StatusPresent Status = iota
	StatusMissingSource
	StatusMissingDirectory
	StatusCopiedOk
	StatusCopyFailed
	StatusMetadataIncomplete
	StatusMissingTimeBucket
	StatusConfigError
)

// String returns the stable label used in summaries and the history ledger.
func (s Status) String() string {
	switch s {
	case StatusPresent:
		return "present"
	case StatusMissingSource:
		return "missing-source"
	case StatusMissingDirectory:
		return "missing-directory"
	case StatusCopiedOk:
		return "copied"
	case StatusCopyFailed:
		return "copy-failed"
	case StatusMetadataIncomplete:
		return "metadata-incomplete"
	case StatusMissingTimeBucket:
		return "missing-entries"
	case StatusConfigError:
		return "config-error"
	default:
		return "unknown"
	}
}

// IsError reports whether the status represents a problem worth notifying
// about. A successful remediation copy is recorded but is not an error.
func (s Status) IsError() bool {
	switch s {
	case StatusPresent, StatusCopiedOk:
		return false
	default:
		return true
	}
}

// Result is one structured check outcome. Subject names the artifact being
// checked (job/satellite or process/feed plus window); Detail is the full
// human-readable message that ends up in the consolidated report.
type Result struct {
	Subject string
	Status  Status
	Detail  string
}

// Collector gathers results for one run. The zero value is not usable; build
// one with NewCollector and pass it explicitly between stages.
type Collector struct {
	header  string
	footer  string
	results []Result
}

// NewCollector returns an empty run-scoped collector.
func NewCollector() *Collector {
	return &Collector{}
}

// SetHeader sets an introductory line prepended to the rendered error text.
func (c *Collector) SetHeader(header string) {
	c.header = header
}

// SetFooter sets a trailing line appended to the rendered error text.
func (c *Collector) SetFooter(footer string) {
	c.footer = footer
}

// Record appends one result, preserving arrival order.
func (c *Collector) Record(subject string, status Status, detail string) {
	c.results = append(c.results, Result{Subject: subject, Status: status, Detail: detail})
}

// Results returns every recorded result in order.
func (c *Collector) Results() []Result {
	return c.results
}

// Errors returns only the results whose status is an error, in order.
func (c *Collector) Errors() []Result {
	var out []Result
	for _, r := range c.results {
		if r.Status.IsError() {
			out = append(out, r)
		}
	}
	return out
}

// HasErrors reports whether any error-status result was recorded.
func (c *Collector) HasErrors() bool {
	for _, r := range c.results {
		if r.Status.IsError() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-status results.
func (c *Collector) ErrorCount() int {
	count := 0
	for _, r := range c.results {
		if r.Status.IsError() {
			count++
		}
	}
	return count
}

// ErrorText joins the header, every error detail, and the footer into the
// single consolidated report body. It returns the empty string when no
// errors were recorded.
func (c *Collector) ErrorText() string {
	if !c.HasErrors() {
		return ""
	}
	lines := make([]string, 0, len(c.results)+2)
	if c.header != "" {
		lines = append(lines, c.header)
	}
	for _, r := range c.results {
		if r.Status.IsError() {
			lines = append(lines, r.Detail)
		}
	}
	if c.footer != "" {
		lines = append(lines, c.footer)
	}
	return strings.Join(lines, "\n")
}
