package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"magmoment/internal/services/report"
)

// ionize <shell> <electrons>: compare e0 * electrons with the shell threshold.
func ionizeCmd() *cobra.Command {
	var e0 float64
	cmd := &cobra.Command{
		Use:   "ionize <shell> <electrons>",
		Short: "Check a shell against its ionization threshold",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			electrons, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("electrons must be an integer: %q", args[1])
			}
			base, err := baseEnergy(cmd, e0)
			if err != nil {
				return err
			}
			res, err := appCtx.Formulas.CheckIonization(base, args[0], electrons)
			if err != nil {
				return err
			}
			return report.RenderIonization(cmd.OutOrStdout(), res)
		},
	}
	cmd.Flags().Float64Var(&e0, "e0", 0, "base energy (default: derived from the constant table)")
	return cmd
}
