package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"csrwatch/internal/calendar"
	"csrwatch/internal/check"
	"csrwatch/internal/logging"
	"csrwatch/internal/report"
)

func newFeedsCommand(cctx *commandContext) *cobra.Command {
	var yearFlag int
	var monthFlag int
	var dayFlag int
	var allDay bool
	var upToNow bool

	cmd := &cobra.Command{
		Use:   "feeds",
		Short: "Verify hourly provider feed records for one day",
		Long: `Feeds reads the provider registry and verifies that every recognized
provider's record file for the selected day contains entries for the
expected hour buckets, and that every record carries the required metadata
keys. The date defaults to the current UTC day; the default bucket is the
current hour only.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := cctx.logger()
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			day, err := resolveFeedDay(yearFlag, monthFlag, dayFlag, now)
			if err != nil {
				return err
			}

			mode := calendar.CurrentHourOnly
			switch {
			case allDay:
				mode = calendar.AllHoursToday
			case upToNow:
				mode = calendar.UpToNowToday
			}
			hours := calendar.Hours(now, mode)

			release, err := acquireRunLock(cfg)
			if err != nil {
				return err
			}
			defer release()

			hostname := hostName()
			label := feedsWindowLabel(day, hours)
			logger.Info("starting hour-model check", "window", label, "buckets", len(hours))

			rep := report.NewCollector()
			rep.SetHeader(fmt.Sprintf(
				"The following errors were found while verifying the collected CSR data for %s on %s:",
				day.DateStamp(), hostname))
			rep.SetFooter(fmt.Sprintf(
				"For more information, check the record files under %s.",
				cfg.Paths.CollectorLogDir))

			if err := check.NewRunner(cfg, logger).RunFeeds(cmd.Context(), day, hours, rep); err != nil {
				return err
			}

			meta := runReport{
				mode:      "feeds",
				window:    label,
				startedAt: now,
				group:     cfg.Notifications.FeedsGroup,
				subject:   fmt.Sprintf("ERROR: MCS collection missing CSR records in %s", hostname),
			}
			if path := logging.LogFilePath(cfg); path != "" {
				meta.attachments = []string{path}
			}
			return finishRun(cmd, cctx, cfg, logger, rep, meta)
		},
	}

	cmd.Flags().IntVarP(&yearFlag, "year", "y", 0, "Year in CCYY format (defaults to the current UTC year)")
	cmd.Flags().IntVarP(&monthFlag, "month", "m", 0, "Month number 01-12 (defaults to the current UTC month)")
	cmd.Flags().IntVarP(&dayFlag, "day", "d", 0, "Day of the month (defaults to the current UTC day)")
	cmd.Flags().BoolVarP(&allDay, "allday", "a", false, "Check every hour bucket of the day (00-23)")
	cmd.Flags().BoolVarP(&upToNow, "uptonow", "u", false, "Check every bucket up to and including the current hour")
	cmd.MarkFlagsMutuallyExclusive("allday", "uptonow")

	return cmd
}

// resolveFeedDay fills unset date flags from the current UTC time and
// validates the combination.
func resolveFeedDay(year, month, day int, now time.Time) (calendar.Window, error) {
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if day == 0 {
		day = now.Day()
	}
	return calendar.Explicit(year, month, day)
}

func feedsWindowLabel(day calendar.Window, hours []calendar.Window) string {
	if len(hours) == 1 {
		return fmt.Sprintf("%s %s", day, hours[0].HourStamp())
	}
	return fmt.Sprintf("%s %s-%s", day, hours[0].HourStamp(), hours[len(hours)-1].HourStamp())
}
