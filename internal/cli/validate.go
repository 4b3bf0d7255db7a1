package cli

import (
	"fmt"
	"path/filepath"

	"github.com/agentx-labs/mcpappgen/internal/report"
	"github.com/agentx-labs/mcpappgen/internal/validate"
	"github.com/spf13/cobra"
)

var validateMarkdown bool

func init() {
	validateCmd.Flags().BoolVar(&validateMarkdown, "markdown", false, "Print the MCP markdown report")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [project-path]",
	Short: "Check an MCP App project for common problems",
	Long: `Check the host toolchain (Node >= 20, Bun), the project layout, package.json
dependencies, the build script and the build output. Exits non-zero when any
check fails; warnings alone do not fail.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := "."
		if len(args) == 1 {
			target = args[0]
		}
		projectPath, err := filepath.Abs(target)
		if err != nil {
			return fmt.Errorf("resolving project path: %w", err)
		}

		result, err := validator().Validate(cmd.Context(), projectPath)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if validateMarkdown {
			if err := printMarkdown(w, report.Validation(projectPath, result)); err != nil {
				return err
			}
		} else {
			styles := stylesFor(w)
			fmt.Fprintf(w, "Validating %s\n\n", styles.Noun.Render(projectPath))
			for _, c := range result.Checks {
				label := styles.Status(string(c.Status)).Render(statusLabel(c.Status))
				fmt.Fprintf(w, "  %s %s: %s\n", label, c.Name, c.Message)
			}
			fmt.Fprintf(w, "\n%s\n", styles.Summary.Render(result.Summary))
		}

		if !result.Valid {
			return errReported
		}
		return nil
	},
}

// validator is swapped in tests to avoid probing the real toolchain.
var validator = func() *validate.Validator { return validate.New(nil) }

func statusLabel(s validate.Status) string {
	switch s {
	case validate.StatusPass:
		return "[ OK ]"
	case validate.StatusWarn:
		return "[WARN]"
	default:
		return "[FAIL]"
	}
}
