package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"magmoment/internal/services/report"
)

// maxPhaseLimit bounds --max.
const maxPhaseLimit = 1000

func phasesCmd() *cobra.Command {
	var (
		e0       float64
		maxPhase int
	)
	cmd := &cobra.Command{
		Use:   "phases",
		Short: "Print the energy phase table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if maxPhase > maxPhaseLimit {
				return fmt.Errorf("--max %d exceeds the limit of %d phases", maxPhase, maxPhaseLimit)
			}
			base, err := baseEnergy(cmd, e0)
			if err != nil {
				return err
			}
			phases, err := appCtx.Formulas.GenerateEnergyPhases(base, maxPhase)
			if err != nil {
				return err
			}
			return report.RenderPhases(cmd.OutOrStdout(), phases)
		},
	}
	cmd.Flags().Float64Var(&e0, "e0", 0, "base energy (default: derived from the constant table)")
	cmd.Flags().IntVar(&maxPhase, "max", report.PhaseCount, "highest phase to generate")
	return cmd
}

// baseEnergy returns the --e0 flag when set, otherwise e0 derived from the
// active table.
func baseEnergy(cmd *cobra.Command, flagValue float64) (float64, error) {
	if cmd.Flags().Changed("e0") {
		return flagValue, nil
	}
	return appCtx.Reports.BaseEnergy()
}
