package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"csrwatch/internal/config"
	"csrwatch/internal/history"
	"csrwatch/internal/notify"
	"csrwatch/internal/report"
)

// errMissingData signals that the run completed but found gaps. main maps it
// to exit code 1 after the consolidated report has already been printed and
// mailed, so it carries no message of its own.
var errMissingData = errors.New("missing data detected")

// runReport carries the per-command metadata finishRun needs to persist and
// notify about one completed run.
type runReport struct {
	mode        string
	window      string
	startedAt   time.Time
	group       string
	subject     string
	attachments []string
}

// finishRun handles everything downstream of the checkers: the history
// ledger entry, the verbose summary table, the consolidated report on stderr,
// and the notification email. It returns errMissingData when any error-status
// finding was recorded.
func finishRun(cmd *cobra.Command, cctx *commandContext, cfg *config.Config, logger *slog.Logger, rep *report.Collector, meta runReport) error {
	recordHistory(cmd.Context(), cfg, logger, rep, meta)

	if cctx.verbose() && len(rep.Results()) > 0 {
		fmt.Fprintln(cmd.OutOrStdout(), summaryTable(rep.Results()))
	}

	if !rep.HasErrors() {
		logger.Info("run completed with no findings", "mode", meta.mode, "window", meta.window)
		return nil
	}

	fmt.Fprintln(cmd.ErrOrStderr(), rep.ErrorText())

	msg := notify.Message{
		Group:       meta.group,
		Subject:     meta.subject,
		Body:        rep.ErrorText(),
		Attachments: meta.attachments,
	}
	if err := notify.NewService(cfg).Send(cmd.Context(), msg); err != nil {
		logger.Error("send notification", "group", meta.group, "error", err)
		fmt.Fprintf(cmd.ErrOrStderr(), "notification failed: %v\n", err)
	}

	logger.Warn("run completed with findings",
		"mode", meta.mode, "window", meta.window, "errors", rep.ErrorCount())
	return errMissingData
}

// recordHistory writes the run to the sqlite ledger. Ledger problems are
// logged and swallowed: bookkeeping must never change a run's outcome.
func recordHistory(ctx context.Context, cfg *config.Config, logger *slog.Logger, rep *report.Collector, meta runReport) {
	if cfg == nil || !cfg.History.Enabled || strings.TrimSpace(cfg.History.Path) == "" {
		return
	}

	store, err := history.Open(ctx, cfg.History.Path)
	if err != nil {
		logger.Warn("history ledger unavailable", "path", cfg.History.Path, "error", err)
		return
	}
	defer store.Close()

	run := history.Run{
		ID:         uuid.NewString(),
		Mode:       meta.mode,
		Window:     meta.window,
		StartedAt:  meta.startedAt,
		FinishedAt: time.Now().UTC(),
		ErrorCount: rep.ErrorCount(),
	}
	if err := store.RecordRun(ctx, run, rep.Results()); err != nil {
		logger.Warn("record run in history ledger", "run", run.ID, "error", err)
	}
}

func summaryTable(results []report.Result) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		rows = append(rows, []string{r.Subject, r.Status.String(), r.Detail})
	}
	return renderTable([]string{"Subject", "Status", "Detail"}, rows, nil)
}
