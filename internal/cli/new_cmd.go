package cli

import (
	"fmt"

	"github.com/alexanderramin/stride/internal/domain"
	"github.com/spf13/cobra"
)

func newNewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Enter a package interactively and summarise it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return fmt.Errorf("stride new needs an interactive terminal; use 'stride calc CODE VALUE...' instead")
			}

			var selected string
			if err := app.runForm(wizardSelectActivity(&selected)); err != nil {
				return err
			}
			code, err := domain.ParseActivityCode(selected)
			if err != nil {
				return err
			}

			inputs := make([]string, code.Arity())
			if err := app.runForm(wizardInputValues(code, inputs)); err != nil {
				return err
			}

			pkg, err := packageFromInputs(code, inputs)
			if err != nil {
				return err
			}
			return printSummary(cmd, app, pkg)
		},
	}
}
