package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMappingsCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "mappings",
		Short: "List a user's learned keyword mappings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			mappings, err := e.mappings.ListForUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			for _, m := range mappings {
				fmt.Fprintf(cmd.OutOrStdout(), "%-24s %-16s count=%d last=%s\n",
					m.Keyword, m.Category, m.UseCount, m.LastUsed.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "user whose mappings to list")
	return cmd
}
