package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/agentx-labs/mcpappgen/internal/report"
	"github.com/agentx-labs/mcpappgen/internal/scaffold"
	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/spf13/cobra"
)

var (
	addToolTitle       string
	addToolDescription string
)

func init() {
	addToolCmd.Flags().StringVar(&addToolTitle, "title", "", "Display title (default: derived from the tool name)")
	addToolCmd.Flags().StringVar(&addToolDescription, "description", "", "Description of what the tool does")
	rootCmd.AddCommand(addToolCmd)
}

var addToolCmd = &cobra.Command{
	Use:   "add-tool <project-path> <tool-name>",
	Short: "Append tool scaffolding to a project's server.ts",
	Long: `Insert a tool registration block before "return server;" in server.ts.
The block must be merged into the existing handlers by hand; running the
command twice inserts two blocks.

Example:
  mcpappgen add-tool ./quote-builder get_quote --description "Fetches a quote"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectPath, err := filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("resolving project path: %w", err)
		}
		toolName := args[1]

		title := addToolTitle
		if title == "" {
			title = templates.DisplayName(strings.ReplaceAll(toolName, "_", "-"))
		}

		result := scaffold.AddTool(scaffold.AddToolOptions{
			ProjectPath:     projectPath,
			ToolName:        toolName,
			ToolTitle:       title,
			ToolDescription: addToolDescription,
		})
		if !result.Success {
			fmt.Fprintln(cmd.ErrOrStderr(), report.ToolFailed(result))
			return errReported
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, stylesFor(w).FormatCheckmark(result.Message))
		return nil
	},
}
