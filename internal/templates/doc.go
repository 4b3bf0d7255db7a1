// Package templates holds the MCP App template registry: an embedded catalog
// of named templates, the base files shared by every generated project, the
// raw asset files, and the {{PLACEHOLDER}} substitution applied to them.
package templates
