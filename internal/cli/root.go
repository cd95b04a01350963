package cli

import (
	"github.com/alexanderramin/stride/internal/config"
	"github.com/alexanderramin/stride/internal/service"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// App holds references to all services and terminal probes used by CLI commands.
type App struct {
	Reports service.ReportService
	Import  service.ImportService
	Config  config.Config

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
	// IsTerminal reports whether stdout is a terminal.
	IsTerminal func() bool
	// RunForm runs an interactive form. Nil means huh's default runner.
	RunForm func(*huh.Form) error
}

// NewRootCmd creates the top-level "stride" command and registers all
// subcommands against the provided App. Without a subcommand it reports
// on the configured package file, or on the built-in samples.
func NewRootCmd(app *App) *cobra.Command {
	var plain bool

	root := &cobra.Command{
		Use:           "stride",
		Short:         "Workout statistics from sensor packages",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, app, app.Config.PackagesFile, app.Config.FailFast)
		},
	}

	root.PersistentFlags().BoolVar(&plain, "plain", false, "Print canonical one-line summaries without styling")

	root.AddCommand(
		newReportCmd(app),
		newCalcCmd(app),
		newActivitiesCmd(),
		newNewCmd(app),
	)

	return root
}

// styled decides between canonical and styled output for cmd.
func (a *App) styled(cmd *cobra.Command) bool {
	if plain, err := cmd.Flags().GetBool("plain"); err == nil && plain {
		return false
	}
	isTerminal := a.IsTerminal != nil && a.IsTerminal()
	return a.Config.Styled(isTerminal)
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

func (a *App) runForm(f *huh.Form) error {
	if a.RunForm != nil {
		return a.RunForm(f)
	}
	return f.Run()
}
