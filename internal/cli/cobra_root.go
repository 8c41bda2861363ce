package cli

import (
	"context"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all flags
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{
		app: app,
	}

	var (
		clientName  string
		listClients bool
		numDays     int
	)

	root.cmd = &cobra.Command{
		Use:   "toggl-reports",
		Short: "Generate a day-by-day time report from Toggl Track",
		Long: `toggl-reports queries the Toggl Track API for your logged time entries
over a recent date range, groups them by day and task, and prints a
plain-text report suitable for copying into an external time-reporting
system.

On first run it prompts for your Toggl API token, resolves your default
workspace, and saves both to secrets.ini.

EXAMPLES:
  toggl-reports                       # Report on the last 14 days
  toggl-reports --numdays 7           # Report on the last 7 days
  toggl-reports --client "Acme"       # Only entries for the Acme client
  toggl-reports --list-clients        # Show the known client names

CONFIGURATION:
  TOGGL_API_BASE_URL                  Core API base URL
  TOGGL_REPORTS_BASE_URL              Reports API base URL
  TOGGL_HTTP_TIMEOUT                  HTTP timeout (default: 30s)
  TOGGL_SECRETS_PATH                  Secrets file location (default: secrets.ini)
  TOGGL_NUM_DAYS                      Default lookback window (default: 14)
  TOGGL_DEBUG                         Enable debug output when set`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), ReportRequest{
				ClientName:  clientName,
				ClientSet:   cmd.Flags().Changed("client"),
				ListClients: listClients,
				NumDays:     numDays,
			})
		},
	}

	flags := root.cmd.Flags()
	// Accept the historical underscore spellings (--list_clients) as well.
	flags.SetNormalizeFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})
	flags.StringVarP(&clientName, "client", "c", "",
		"Client name to filter on. Run with --list-clients to list options.")
	flags.BoolVarP(&listClients, "list-clients", "l", false,
		"List active clients and exit")
	flags.IntVarP(&numDays, "numdays", "n", app.config.Report.DefaultNumDays,
		"Number of days to look back from today")

	return root
}

// Execute runs the root command with the given context
func (r *RootCommand) Execute(ctx context.Context) error {
	return r.cmd.ExecuteContext(ctx)
}

// SetArgs overrides os.Args for tests
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}
