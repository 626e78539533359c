package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"magmoment/internal/services/report"
)

// runReport executes the full chain, prints it and optionally saves it.
func runReport(cmd *cobra.Command, args []string) error {
	r, err := appCtx.Reports.Run()
	if err != nil {
		return err
	}
	if err := report.Render(cmd.OutOrStdout(), r); err != nil {
		return err
	}

	if appCtx.Saved != nil {
		path, err := appCtx.Saved.SaveReport(r)
		if err != nil {
			return fmt.Errorf("save report: %w", err)
		}
		appCtx.Logger.Info("report saved",
			zap.String("path", path),
			zap.String("fingerprint", r.Fingerprint),
		)
	}
	return nil
}
