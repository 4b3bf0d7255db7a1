package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	// ColorCyan is used for identifiable nouns: paths, template keys, file names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for passing checks.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for warnings.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for failing checks.
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Styles groups the semantic styles used by the CLI renderers.
type Styles struct {
	Noun    lipgloss.Style
	Dim     lipgloss.Style
	Summary lipgloss.Style
	Pass    lipgloss.Style
	Warn    lipgloss.Style
	Fail    lipgloss.Style
	Check   lipgloss.Style
}

// DefaultStyles returns the colored style set.
func DefaultStyles() *Styles {
	return &Styles{
		Noun:    lipgloss.NewStyle().Foreground(ColorCyan),
		Dim:     lipgloss.NewStyle().Faint(true),
		Summary: lipgloss.NewStyle().Bold(true),
		Pass:    lipgloss.NewStyle().Foreground(ColorGreen),
		Warn:    lipgloss.NewStyle().Foreground(ColorYellow),
		Fail:    lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed),
		Check:   lipgloss.NewStyle().Foreground(ColorGreenCheck),
	}
}

// NoColorStyles returns styles that render text unchanged. Used when stdout
// is not a terminal and in tests.
func NoColorStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Noun:    plain,
		Dim:     plain,
		Summary: plain,
		Pass:    plain,
		Warn:    plain,
		Fail:    plain,
		Check:   plain,
	}
}

// FormatCheckmark renders a green checkmark with a message.
func (s *Styles) FormatCheckmark(msg string) string {
	return s.Check.Render("✔") + " " + msg
}

// Check status values, matching validate.Status.
const (
	StatusPass = "pass"
	StatusWarn = "warn"
	StatusFail = "fail"
)

// Status returns the style for a check status. Unknown statuses are unstyled.
func (s *Styles) Status(status string) lipgloss.Style {
	switch status {
	case StatusPass:
		return s.Pass
	case StatusWarn:
		return s.Warn
	case StatusFail:
		return s.Fail
	default:
		return lipgloss.NewStyle()
	}
}
