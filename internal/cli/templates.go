package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List available project templates",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg, err := loadRegistry()
		if err != nil {
			return err
		}

		styles := stylesFor(cmd.OutOrStdout())
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, t := range reg.List() {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", styles.Noun.Render(t.Key), t.Name, styles.Dim.Render(t.Description))
		}
		return tw.Flush()
	},
}
