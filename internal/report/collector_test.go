package report

import (
	"strings"
	"testing"
)

func TestCollector_OrderPreserved(t *testing.T) {
	c := NewCollector()
	c.Record("a", StatusMissingSource, "first")
	c.Record("b", StatusCopiedOk, "copied fine")
	c.Record("c", StatusCopyFailed, "second")

	errs := c.Errors()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0].Detail != "first" || errs[1].Detail != "second" {
		t.Fatalf("error order not preserved: %v", errs)
	}
	if len(c.Results()) != 3 {
		t.Fatalf("expected 3 results, got %d", len(c.Results()))
	}
}

func TestCollector_SuccessStatusesAreNotErrors(t *testing.T) {
	c := NewCollector()
	c.Record("a", StatusPresent, "present")
	c.Record("b", StatusCopiedOk, "copied")
	if c.HasErrors() {
		t.Fatal("present/copied results must not count as errors")
	}
	if c.ErrorText() != "" {
		t.Fatalf("expected empty error text, got %q", c.ErrorText())
	}
}

func TestCollector_ErrorTextJoinsHeaderAndFooter(t *testing.T) {
	c := NewCollector()
	c.SetHeader("problems for 20240605:")
	c.SetFooter("see the collector logs for details.")
	c.Record("a", StatusMissingSource, "File not found: /x/y")
	c.Record("b", StatusMissingTimeBucket, "Missing entries for 03:00:00")

	text := c.ErrorText()
	lines := strings.Split(text, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d: %q", len(lines), text)
	}
	if lines[0] != "problems for 20240605:" || lines[3] != "see the collector logs for details." {
		t.Fatalf("header/footer misplaced: %q", text)
	}
}

func TestStatus_Labels(t *testing.T) {
	cases := map[Status]string{
		StatusPresent:            "present",
		StatusMissingSource:      "missing-source",
		StatusMissingDirectory:   "missing-directory",
		StatusCopiedOk:           "copied",
		StatusCopyFailed:         "copy-failed",
		StatusMetadataIncomplete: "metadata-incomplete",
		StatusMissingTimeBucket:  "missing-entries",
		StatusConfigError:        "config-error",
	}
	for status, want := range cases {
		if got := status.String(); got != want {
			t.Fatalf("Status(%d).String() = %q, want %q", status, got, want)
		}
	}
}
