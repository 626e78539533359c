package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"magmoment/internal/services/report"
)

func momentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "moment <phase-index>",
		Short: "Print the magnetic moment for a phase index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("phase index must be an integer: %q", args[0])
			}
			m, err := appCtx.Formulas.MagneticMoment(idx)
			if err != nil {
				return err
			}
			return report.RenderMoment(cmd.OutOrStdout(), m, appCtx.Table.Constants())
		},
	}
}
