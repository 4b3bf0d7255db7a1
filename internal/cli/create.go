package cli

import (
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/mcpappgen/internal/config"
	"github.com/agentx-labs/mcpappgen/internal/report"
	"github.com/agentx-labs/mcpappgen/internal/scaffold"
	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/spf13/cobra"
)

var (
	createTemplate    string
	createDescription string
	createOutputDir   string
	createVersion     string
	createAuthor      string
	createMarkdown    bool
)

func init() {
	createCmd.Flags().StringVarP(&createTemplate, "template", "t", "blank", "Template key (see `templates`)")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "Description of what the app does")
	createCmd.Flags().StringVarP(&createOutputDir, "output-dir", "o", ".", "Parent directory of the new project")
	createCmd.Flags().StringVar(&createVersion, "version", scaffold.DefaultVersion, "Project version")
	createCmd.Flags().StringVar(&createAuthor, "author", "", "package.json author")
	createCmd.Flags().BoolVar(&createMarkdown, "markdown", false, "Print the MCP markdown report")
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Generate a new MCP App project",
	Long: `Generate a new MCP App project from a template. The name is converted to
kebab-case and the project is written to <output-dir>/<name>.

Examples:
  mcpappgen create quote-builder --template form --description "Builds quotes"
  mcpappgen create "Sales Chart" -t chart -o ~/projects`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		outDir, err := filepath.Abs(createOutputDir)
		if err != nil {
			return fmt.Errorf("resolving output directory: %w", err)
		}

		result := scaffold.Generate(reg, scaffold.GenerateOptions{
			Name:        templates.KebabCase(args[0]),
			Description: createDescription,
			Template:    createTemplate,
			OutputDir:   outDir,
			Version:     createVersion,
			Author:      createAuthor,
			NodeCommand: config.NodeCommand(),
		})

		if createMarkdown {
			if !result.Success {
				fmt.Fprintln(cmd.ErrOrStderr(), report.CreateFailed(result))
				return errReported
			}
			return printMarkdown(cmd.OutOrStdout(), report.Created(result))
		}

		if !result.Success {
			for _, e := range result.Errors {
				fmt.Fprintln(cmd.ErrOrStderr(), e)
			}
			return errReported
		}

		w := cmd.OutOrStdout()
		styles := stylesFor(w)
		fmt.Fprintln(w, styles.FormatCheckmark("Created "+styles.Noun.Render(result.ProjectPath)))
		for _, f := range result.Files {
			fmt.Fprintf(w, "  %s\n", styles.Dim.Render(f))
		}
		fmt.Fprintln(w)
		fmt.Fprintln(w, styles.Summary.Render("Next steps:"))
		fmt.Fprintf(w, "  cd %s\n  npm install\n  npm run build\n\n", result.ProjectPath)
		fmt.Fprintln(w, styles.Summary.Render("Host config:"))
		fmt.Fprintln(w, result.ConfigSnippet)
		return nil
	},
}
