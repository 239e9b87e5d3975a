package command

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/younsl/awsls/internal/version"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(app.Stdout, version.Get())
			return err
		},
	}
}
