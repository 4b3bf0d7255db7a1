package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/agentx-labs/mcpappgen/internal/output"
	"github.com/charmbracelet/glamour"
)

// stylesFor returns colored styles only when w is a terminal.
func stylesFor(w io.Writer) *output.Styles {
	if f, ok := w.(*os.File); ok {
		return output.StylesFor(f)
	}
	return output.NoColorStyles()
}

// printMarkdown writes md to w, rendered through glamour when w is a
// terminal and verbatim otherwise.
func printMarkdown(w io.Writer, md string) error {
	f, ok := w.(*os.File)
	if !ok || !output.IsTerminal(f) {
		_, err := fmt.Fprintln(w, md)
		return err
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}
	_, err = fmt.Fprint(w, out)
	return err
}
