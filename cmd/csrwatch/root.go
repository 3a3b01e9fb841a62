package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var verboseFlag bool

	cctx := newCommandContext(&configFlag, &verboseFlag)

	rootCmd := &cobra.Command{
		Use:           "csrwatch",
		Short:         "Completeness checks for time-partitioned CSR collection data",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := cctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Verbose output and debug logging")

	rootCmd.AddCommand(newCheckCommand(cctx))
	rootCmd.AddCommand(newFeedsCommand(cctx))
	rootCmd.AddCommand(newHistoryCommand(cctx))
	rootCmd.AddCommand(newTestNotifyCommand(cctx))
	rootCmd.AddCommand(newConfigCommand(cctx))

	return rootCmd
}
