package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/younsl/awsls/pkg/aws"
)

func newWhoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the AWS account and identity in use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.clients.STS(cmd.Context())
			if err != nil {
				return err
			}
			identity, err := aws.GetCallerIdentity(cmd.Context(), client)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(app.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Account\t%s\n", identity.AccountID)
			fmt.Fprintf(w, "ARN\t%s\n", identity.ARN)
			fmt.Fprintf(w, "User ID\t%s\n", identity.UserID)
			return w.Flush()
		},
	}
}
