package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/contract"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/spf13/cobra"
)

func newReportCmd(app *App) *cobra.Command {
	var file string
	var failFast bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Summarise every package in a file, or the built-in samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = app.Config.PackagesFile
			}
			if !cmd.Flags().Changed("fail-fast") {
				failFast = app.Config.FailFast
			}
			return runReport(cmd, app, file, failFast)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Package file (.json, .yaml or .yml)")
	cmd.Flags().BoolVar(&failFast, "fail-fast", false, "Stop at the first package that fails")

	return cmd
}

func runReport(cmd *cobra.Command, app *App, file string, failFast bool) error {
	ctx := context.Background()

	var packages []domain.Package
	if file != "" {
		var err error
		packages, err = app.Import.LoadPackages(ctx, file)
		if err != nil {
			return err
		}
	}

	req := contract.NewReportRequest(packages)
	req.FailFast = failFast

	resp, err := app.Reports.Report(ctx, req)
	if resp != nil {
		if app.styled(cmd) {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReport(resp))
		} else {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatReportPlain(resp))
		}
	}
	if err != nil {
		return err
	}

	if n := resp.FailedCount(); n > 0 {
		return fmt.Errorf("%d of %d packages failed", n, len(resp.Entries))
	}
	return nil
}
