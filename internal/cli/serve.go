package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/agentx-labs/mcpappgen/internal/branding"
	"github.com/agentx-labs/mcpappgen/internal/config"
	"github.com/agentx-labs/mcpappgen/internal/mcpserver"
	"github.com/agentx-labs/mcpappgen/internal/output"
	"github.com/spf13/cobra"
)

var serveStdio bool

func init() {
	serveCmd.Flags().BoolVar(&serveStdio, "stdio", false, "Serve MCP over stdin/stdout (the only supported transport)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve --stdio",
	Short: "Run the MCP server",
	Long: `Run the MCP server exposing create_mcp_app, list_templates, validate_project
and add_tool. Only the stdio transport is supported; stdout carries the
protocol stream and logs go to stderr.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !serveStdio {
			stderr := cmd.ErrOrStderr()
			fmt.Fprintf(stderr, "Usage: %s serve --stdio\n", branding.CLIName())
			fmt.Fprintln(stderr, "This MCP server only supports stdio transport.")
			return errReported
		}

		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		err = mcpserver.Serve(ctx, mcpserver.Options{
			Registry:    reg,
			NodeCommand: config.NodeCommand(),
		})
		if ctx.Err() != nil {
			output.Info("shutdown signal received, MCP server stopped")
			return nil
		}
		if err != nil {
			return fmt.Errorf("serving MCP: %w", err)
		}
		return nil
	},
}
