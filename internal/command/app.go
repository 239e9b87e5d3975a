// Package command implements the awsls command line.
package command

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/younsl/awsls/internal/logging"
	"github.com/younsl/awsls/internal/version"
	"github.com/younsl/awsls/pkg/aws"
	"golang.org/x/term"
)

// App carries the process wide dependencies of every subcommand
type App struct {
	Stdout io.Writer
	Stderr io.Writer

	// Interactive is true when Stdout is a terminal. It enables state
	// colors and the progress spinner.
	Interactive bool
	// ColorLogs enables colored log lines on Stderr
	ColorLogs bool

	// NewClients builds the AWS client factory once the profile flag is known
	NewClients func(profile string) aws.ClientFactory
	// Logger replaces the logger built from --log-level when set
	Logger *slog.Logger

	profile  string
	logLevel string
	noColor  bool

	clients aws.ClientFactory
	logger  *slog.Logger
}

// NewApp returns an App bound to the process stdio and the AWS SDK
func NewApp() *App {
	return &App{
		Stdout:      os.Stdout,
		Stderr:      os.Stderr,
		Interactive: term.IsTerminal(int(os.Stdout.Fd())),
		ColorLogs:   term.IsTerminal(int(os.Stderr.Fd())),
		NewClients: func(profile string) aws.ClientFactory {
			return aws.NewClientFactory(aws.WithProfile(profile))
		},
	}
}

// NewRootCmd builds the awsls command tree
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "awsls",
		Short: "CLI tool to list AWS S3 buckets and EC2 instances",
		Long: `awsls enumerates S3 buckets with the total size of their objects and
EC2 instances across regions, and displays the results in a table format.`,
		Version:       version.Get().Version,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flags parsed fine, errors from here on are not usage errors
			cmd.SilenceUsage = true
			return app.setup()
		},
	}

	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	rootCmd.PersistentFlags().StringVarP(&app.profile, "profile", "p", "",
		"AWS shared config profile, selects the account (default: AWS_PROFILE or default chain)")
	rootCmd.PersistentFlags().StringVar(&app.logLevel, "log-level", "",
		"log level: debug, info, warn or error (default: $"+logging.EnvLogLevel+" or warn)")
	rootCmd.PersistentFlags().BoolVar(&app.noColor, "no-color", false,
		"disable colored output")

	rootCmd.AddCommand(
		newS3Cmd(app),
		newEC2Cmd(app),
		newWhoamiCmd(app),
		newVersionCmd(app),
	)

	return rootCmd
}

// setup builds the logger and client factory after flag parsing
func (a *App) setup() error {
	a.logger = a.Logger
	if a.logger == nil {
		levelName := a.logLevel
		if levelName == "" {
			levelName = os.Getenv(logging.EnvLogLevel)
		}
		level, err := logging.ParseLevel(levelName)
		if err != nil {
			return &ValidationError{Problems: []string{err.Error()}}
		}
		a.logger = logging.New(a.Stderr, level, a.ColorLogs && !a.noColor)
	}

	a.clients = a.NewClients(a.profile)
	if a.profile != "" {
		a.logger.Debug("using shared config profile", slog.String("profile", a.profile))
	}
	return nil
}

// color reports whether tables may contain ANSI colors
func (a *App) color() bool {
	return a.Interactive && !a.noColor && os.Getenv("NO_COLOR") == ""
}
