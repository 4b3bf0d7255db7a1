package cli

import (
	"errors"

	"github.com/agentx-labs/mcpappgen/internal/branding"
	"github.com/agentx-labs/mcpappgen/internal/config"
	"github.com/agentx-labs/mcpappgen/internal/output"
	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var verbose bool

// errReported marks a failure the command already described on its own
// output. Execute exits non-zero without logging it again.
var errReported = errors.New("already reported")

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates MCP App projects from built-in templates, checks them
for common build problems, and appends tool scaffolding to existing projects.

Run "` + branding.CLIName() + ` serve --stdio" to expose the same operations as MCP tools.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		output.SetupLoggingTo(cmd.ErrOrStderr(), verbose || config.Verbose())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			output.Error(err.Error())
		}
		return err
	}
	return nil
}

// loadRegistry opens the template tree named by templates_dir, or the
// embedded one when unset.
func loadRegistry() (*templates.Registry, error) {
	dir := config.TemplatesDir()
	if dir != "" {
		output.Warn("using templates from config instead of the built-in set", "dir", dir)
	}
	return templates.Open(dir)
}
