package templates

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Placeholder names recognized in template text as {{NAME}}.
const (
	KeyName        = "NAME"
	KeyDisplayName = "DISPLAY_NAME"
	KeyDescription = "DESCRIPTION"
	KeyToolName    = "TOOL_NAME"
	KeyVersion     = "VERSION"
	KeyAuthor      = "AUTHOR"
)

// Placeholders holds the values substituted into template text. Author is
// optional.
type Placeholders struct {
	Name        string
	DisplayName string
	Description string
	ToolName    string
	Version     string
	Author      string
}

// NewPlaceholders derives the display and tool names from name.
func NewPlaceholders(name, description, version, author string) Placeholders {
	return Placeholders{
		Name:        name,
		DisplayName: DisplayName(name),
		Description: description,
		ToolName:    ToolName(name),
		Version:     version,
		Author:      author,
	}
}

// pairs returns the marker names with their values in a fixed order.
func (p Placeholders) pairs() [][2]string {
	return [][2]string{
		{KeyName, p.Name},
		{KeyDisplayName, p.DisplayName},
		{KeyDescription, p.Description},
		{KeyToolName, p.ToolName},
		{KeyVersion, p.Version},
		{KeyAuthor, p.Author},
	}
}

// Marker returns the literal marker for a placeholder name.
func Marker(key string) string {
	return "{{" + key + "}}"
}

// Substitute replaces every marker whose value is non-empty. Markers with an
// empty value are left in place verbatim.
func Substitute(text string, p Placeholders) string {
	for _, kv := range p.pairs() {
		if kv[1] == "" {
			continue
		}
		text = strings.ReplaceAll(text, Marker(kv[0]), kv[1])
	}
	return text
}

// DisplayName title-cases a kebab-case name: "my-cool-app" -> "My Cool App".
// Only the first rune of each word changes.
func DisplayName(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// ToolName derives the generated tool identifier: "my-cool-app" -> "my_cool_app".
func ToolName(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

var (
	camelBoundary = regexp.MustCompile(`([a-z])([A-Z])`)
	separatorRun  = regexp.MustCompile(`[\s_]+`)
)

// KebabCase normalizes a user-supplied project name: "My Cool_App" and
// "myCoolApp" both become kebab-case.
func KebabCase(s string) string {
	s = camelBoundary.ReplaceAllString(s, "$1-$2")
	s = separatorRun.ReplaceAllString(s, "-")
	return strings.ToLower(s)
}
