package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"friendship-offers/config"
	"friendship-offers/database"
	"friendship-offers/internal/infra/roster"
)

func newRosterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Manage the known-friend roster",
	}
	cmd.AddCommand(newRosterSeedCmd())
	return cmd
}

func newRosterSeedCmd() *cobra.Command {
	var rosterFile string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace the roster tables in DB_URL with a roster file or the embedded roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if rosterFile == "" {
				rosterFile = cfg.RosterFile
			}

			r, err := loadRoster(rosterFile)
			if err != nil {
				return err
			}

			db, err := database.InitDB(cfg.DBURL)
			if err != nil {
				return err
			}
			defer database.Close(db)

			if err := roster.Seed(db, r); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d categories, %d friends\n", len(r.Categories), r.EntryCount())
			return nil
		},
	}
	cmd.Flags().StringVar(&rosterFile, "roster-file", "", "roster YAML to seed (default ROSTER_FILE, then the embedded roster)")
	return cmd
}
