package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"friendship-offers/config"
	"friendship-offers/internal/app/bootstrap"
	"friendship-offers/internal/logger"
	"friendship-offers/internal/notify"
)

func newMailTestCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "mail-test",
		Short: "Send a test email with the configured provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			sender, err := bootstrap.NewSender(cfg, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Provider:  %s\n", cfg.MailProvider)
			fmt.Fprintf(out, "Sender:    %s\n", cfg.EmailUser)
			fmt.Fprintf(out, "Recipient: %s\n", cfg.Recipient())

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			if err := notify.New(sender, cfg.Recipient(), log).Test(ctx, cfg.MailProvider); err != nil {
				fmt.Fprintln(out, "Email sending failed. For Gmail, EMAIL_PASS must be a 16 character app password with 2-Step Verification enabled.")
				return err
			}
			fmt.Fprintln(out, "Test email sent. Check the inbox.")
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "give up after this long")
	return cmd
}
