package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCorrectCommand() *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "correct <transaction-id> <category>",
		Short: "Correct a transaction's category and teach the model",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.corrector.Correct(cmd.Context(), userID, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "default", "user the transaction belongs to")
	return cmd
}
