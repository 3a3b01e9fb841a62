package main

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"csrwatch/internal/history"
)

func newHistoryCommand(cctx *commandContext) *cobra.Command {
	var limit int
	var runID string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent runs from the history ledger",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if !cfg.History.Enabled {
				return errors.New("history ledger is disabled in the configuration")
			}

			store, err := history.Open(cmd.Context(), cfg.History.Path)
			if err != nil {
				return err
			}
			defer store.Close()

			out := cmd.OutOrStdout()

			if runID != "" {
				results, err := store.RunResults(cmd.Context(), runID)
				if err != nil {
					return err
				}
				if len(results) == 0 {
					fmt.Fprintln(out, "No results recorded for that run.")
					return nil
				}
				fmt.Fprintln(out, summaryTable(results))
				return nil
			}

			runs, err := store.RecentRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.Mode,
					run.Window,
					run.StartedAt.UTC().Format(time.RFC3339),
					strconv.Itoa(run.ErrorCount),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Run", "Mode", "Window", "Started", "Errors"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of runs to show")
	cmd.Flags().StringVar(&runID, "run", "", "Show the stored results of one run ID")
	return cmd
}
