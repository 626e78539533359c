package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"magmoment/internal/store"
)

// constants: print the active table as TOML, or export it with --export.
func constantsCmd() *cobra.Command {
	var export string
	cmd := &cobra.Command{
		Use:   "constants",
		Short: "Print or export the active constant table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if export != "" {
				if err := appCtx.Tables.SaveTable(export, appCtx.Table); err != nil {
					return fmt.Errorf("export table: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Constant table written to %s\n", export)
				return nil
			}
			b, err := store.EncodeTOML(appCtx.Table)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
	cmd.Flags().StringVar(&export, "export", "", "write the table to this file (.toml, .yaml)")
	return cmd
}
