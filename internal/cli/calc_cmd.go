package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/alexanderramin/stride/internal/domain"
	"github.com/spf13/cobra"
)

func newCalcCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "calc CODE VALUE...",
		Short:   "Summarise a single package",
		Long:    "Summarise a single package given its activity code and positional values.\nRun 'stride activities' to see the values each code expects.",
		Example: "  stride calc RUN 15000 1 75\n  stride calc SWM 720 1 80 25 40",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args[1:])
			if err != nil {
				return err
			}
			pkg := domain.Package{Code: args[0], Values: values}
			return printSummary(cmd, app, pkg)
		},
	}

	// Values may be negative; stop flag parsing at CODE so "-1" stays positional.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q at position %d: expected a number", arg, i+1)
		}
		values = append(values, v)
	}
	return values, nil
}

func printSummary(cmd *cobra.Command, app *App, pkg domain.Package) error {
	summary, err := app.Reports.Calculate(context.Background(), pkg)
	if err != nil {
		return err
	}

	if app.styled(cmd) {
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSummary(domain.ActivityCode(pkg.Code), summary))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary.Render())
	return nil
}
