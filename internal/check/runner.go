package check

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"csrwatch/internal/calendar"
	"csrwatch/internal/config"
	"csrwatch/internal/fileutil"
	"csrwatch/internal/report"
)

// Runner executes completeness checks against the configured trees.
type Runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewRunner builds a runner. A nil logger falls back to slog's default.
func NewRunner(cfg *config.Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{cfg: cfg, logger: logger}
}

// RunDays checks every day window in order, recording findings into rep.
func (r *Runner) RunDays(ctx context.Context, windows []calendar.Window, rep *report.Collector) error {
	for _, w := range windows {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.runDay(w, rep)
	}
	return nil
}

// runDay checks one calendar day across every job and satellite. A missing
// job root is one finding for the whole job; satellite directories are
// discovered dynamically and an empty job is not an error.
func (r *Runner) runDay(w calendar.Window, rep *report.Collector) {
	filename := w.DateStamp() + ".txt"

	for _, job := range r.cfg.Jobs.Names {
		jobRoot := filepath.Join(r.cfg.Paths.UploadRoot, job)
		if !fileutil.IsDir(jobRoot) {
			rep.Record(job, report.StatusMissingDirectory,
				fmt.Sprintf("The path %s does not exist.", jobRoot))
			continue
		}

		satellites, err := satelliteDirs(jobRoot)
		if err != nil {
			rep.Record(job, report.StatusMissingDirectory,
				fmt.Sprintf("Unable to read %s: %v", jobRoot, err))
			continue
		}

		for _, satellite := range satellites {
			subject := fmt.Sprintf("%s/%s %s", job, satellite, w)
			source := filepath.Join(jobRoot, satellite, filename)
			destDir := filepath.Join(r.cfg.Paths.CollectorLogDir, job, satellite)

			if !fileutil.IsRegularFile(source) {
				rep.Record(subject, report.StatusMissingSource,
					fmt.Sprintf("File not found: %s", source))
				continue
			}

			r.logger.Info("file present, staging to final destination",
				"job", job, "satellite", satellite, "file", source)
			r.remediate(subject, source, destDir, filename, rep)
		}
	}
}

// remediate copies a present source file into the collector tree. The
// destination is never checked for an existing copy: re-runs always
// re-copy, keeping remediation a pure function of the source tree.
func (r *Runner) remediate(subject, source, destDir, filename string, rep *report.Collector) {
	if !fileutil.IsDir(destDir) {
		r.logger.Warn("destination missing, creating", "dir", destDir)
		if err := fileutil.EnsureDir(destDir); err != nil {
			rep.Record(subject, report.StatusMissingDirectory,
				fmt.Sprintf("Unable to create %s: %v", destDir, err))
			return
		}
	}

	if !fileutil.IsWritableDir(destDir) {
		rep.Record(subject, report.StatusCopyFailed,
			fmt.Sprintf("Write permission denied for %s", destDir))
		// Fall through: the copy attempt reports its own failure detail.
	}

	dest := filepath.Join(destDir, filename)
	if err := fileutil.CopyFilePreserve(source, dest); err != nil {
		rep.Record(subject, report.StatusCopyFailed,
			fmt.Sprintf("Unable to copy file: %v", err))
		return
	}

	r.logger.Info("copy completed", "source", source, "dest", dest)
	rep.Record(subject, report.StatusCopiedOk, fmt.Sprintf("Copied %s to %s", source, dest))
}

// satelliteDirs lists the sub-entity directories directly under a job root.
func satelliteDirs(jobRoot string) ([]string, error) {
	entries, err := os.ReadDir(jobRoot)
	if err != nil {
		return nil, err
	}
	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, entry.Name())
		}
	}
	return dirs, nil
}
