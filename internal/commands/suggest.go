package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSuggestCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "suggest <description>",
		Short: "Suggest a category for a transaction description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			category, ok, err := e.suggester.Suggest(cmd.Context(), userID, args[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no suggestion")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), category)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "user whose learned mappings apply")
	return cmd
}
