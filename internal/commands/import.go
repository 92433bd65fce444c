package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newImportCommand() *cobra.Command {
	var accountID, userID string

	cmd := &cobra.Command{
		Use:   "import <statement.csv>",
		Short: "Import a bank statement CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open statement: %w", err)
			}
			defer f.Close()

			fileID := uuid.NewSHA1(uuid.NameSpaceOID,
				[]byte(strings.ToLower(filepath.Base(args[0])))).String()

			res, err := e.importer.ImportCSV(cmd.Context(), f, fileID, accountID, userID)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "imported %d, skipped %d duplicates, %d rows failed\n",
				res.Imported, res.Skipped, len(res.Failed))
			for _, fe := range res.Failed {
				fmt.Fprintf(cmd.OutOrStdout(), "  line %d: %v\n", fe.Line, fe.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&accountID, "account", "default", "account the statement belongs to")
	cmd.Flags().StringVar(&userID, "user", "default", "user whose learned mappings apply")
	return cmd
}
