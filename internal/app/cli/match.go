package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"friendship-offers/internal/domain/friends"
	"friendship-offers/internal/infra/roster"
)

const (
	outputHuman = "human"
	outputJSON  = "json"
)

func newMatchCmd() *cobra.Command {
	var (
		rosterFile string
		output     string
	)

	cmd := &cobra.Command{
		Use:   "match <name>",
		Short: "Check a name against the known-friend roster",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := loadRoster(rosterFile)
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			m, ok := friends.NewMatcher(r).Match(name)
			out := cmd.OutOrStdout()

			switch output {
			case outputJSON:
				resp := struct {
					Name       string         `json:"name"`
					Normalized string         `json:"normalized"`
					Matched    bool           `json:"matched"`
					Friend     *friends.Match `json:"friend,omitempty"`
				}{Name: name, Normalized: friends.Normalize(name), Matched: ok}
				if ok {
					resp.Friend = &m
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(resp)
			case outputHuman:
				if !ok {
					fmt.Fprintf(out, "%q (normalized %q): no match\n", name, friends.Normalize(name))
					return nil
				}
				fmt.Fprintf(out, "%q is %s: %s (level %d)\n", name, m.DisplayName, m.Tier, m.TierLevel)
				if m.Message != "" {
					fmt.Fprintf(out, "message: %s\n", m.Message)
				}
				return nil
			default:
				return fmt.Errorf("--output must be %q or %q", outputHuman, outputJSON)
			}
		},
	}
	cmd.Flags().StringVar(&rosterFile, "roster-file", "", "roster YAML to use instead of the embedded one")
	cmd.Flags().StringVarP(&output, "output", "o", outputHuman, "output format: human or json")
	return cmd
}

func loadRoster(path string) (friends.Roster, error) {
	if path != "" {
		return roster.LoadFile(path)
	}
	return roster.Default()
}
