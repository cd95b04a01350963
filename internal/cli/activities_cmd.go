package cli

import (
	"fmt"

	"github.com/alexanderramin/stride/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newActivitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "activities",
		Aliases: []string{"codes"},
		Short:   "List activity codes and the values each package carries",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatActivities())
			return nil
		},
	}
}
