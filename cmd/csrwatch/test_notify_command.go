package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"csrwatch/internal/notify"
)

func newTestNotifyCommand(cctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "test-notify",
		Short: "Send a test notification to the check distribution group",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cctx.ensureConfig()
			if err != nil {
				return err
			}
			if strings.TrimSpace(cfg.Notifications.SMTPAddr) == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Notifications are disabled (no smtp_addr configured)")
				return nil
			}

			msg := notify.Message{
				Group:   cfg.Notifications.CheckGroup,
				Subject: "csrwatch test notification",
				Body:    fmt.Sprintf("Test notification from csrwatch on %s.", hostName()),
			}
			if err := notify.NewService(cfg).Send(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Test notification sent")
			return nil
		},
	}
}
