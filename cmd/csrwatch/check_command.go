package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"csrwatch/internal/calendar"
	"csrwatch/internal/check"
	"csrwatch/internal/report"
)

func newCheckCommand(cctx *commandContext) *cobra.Command {
	var yearFlag int
	var monthFlag string
	var dayFlag int

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify per-day upload files and stage present ones",
		Long: `Check walks every configured job under the upload root and verifies that
each satellite directory holds the expected YYYYMMDD.txt file for every day
in the selected window. Present files are copied into the collector tree
with their metadata preserved; absences are consolidated into one report.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.logger()
			if err != nil {
				return err
			}

			windows, label, err := resolveDayWindows(yearFlag, monthFlag, dayFlag, time.Now().UTC())
			if err != nil {
				return err
			}

			release, err := acquireRunLock(cfg)
			if err != nil {
				return err
			}
			defer release()

			startedAt := time.Now().UTC()
			logger.Info("starting day-model check", "window", label, "days", len(windows))

			rep := report.NewCollector()
			if err := check.NewRunner(cfg, logger).RunDays(cmd.Context(), windows, rep); err != nil {
				return err
			}

			return finishRun(cmd, cctx, cfg, logger, rep, runReport{
				mode:      "check",
				window:    label,
				startedAt: startedAt,
				group:     cfg.Notifications.CheckGroup,
				subject:   "SCCM CSR processing error",
			})
		},
	}

	cmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "Year in CCYY format (required with a numeric month)")
	cmd.Flags().StringVarP(&monthFlag, "month", "m", "", "Month number (01-12), PREMON, or CURMON")
	cmd.Flags().IntVarP(&dayFlag, "day", "d", 0, "Day of the month; omit to check the whole month")
	_ = cmd.MarkFlagRequired("month")

	return cmd
}

// resolveDayWindows turns the flag triple into the list of day windows to
// check plus a human-readable label for logs and the history ledger. PREMON
// selects the previous full month; CURMON selects the elapsed days of the
// current month (degrading to the previous month on the 1st).
func resolveDayWindows(year int, month string, day int, now time.Time) ([]calendar.Window, string, error) {
	selector := strings.ToUpper(strings.TrimSpace(month))
	switch selector {
	case "PREMON", "CURMON":
		if day != 0 {
			return nil, "", fmt.Errorf("%w: a day cannot be combined with %s", calendar.ErrInvalidDate, selector)
		}
		if selector == "PREMON" {
			w := calendar.PreviousMonth(now)
			return calendar.Days(w), w.String(), nil
		}
		days := calendar.CurrentMonthDays(now)
		first := days[0]
		return days, calendar.MonthWindow(first.Year, first.Month).String(), nil
	case "":
		return nil, "", fmt.Errorf("%w: a month selection is required", calendar.ErrInvalidDate)
	default:
		m, err := strconv.Atoi(selector)
		if err != nil {
			return nil, "", fmt.Errorf("%w: month %q is not 01-12, PREMON, or CURMON", calendar.ErrInvalidDate, month)
		}
		if year == 0 {
			return nil, "", fmt.Errorf("%w: an explicit month requires -y CCYY", calendar.ErrInvalidDate)
		}
		w, err := calendar.Explicit(year, m, day)
		if err != nil {
			return nil, "", err
		}
		return calendar.Days(w), w.String(), nil
	}
}
