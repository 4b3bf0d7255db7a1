// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or partial file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		defaults = parse(rawBranding)
	})
}

// parse overlays data onto the hard defaults. Malformed YAML leaves the
// defaults untouched.
func parse(data []byte) brand {
	b := brand{
		CLIName:     "mcpappgen",
		DisplayName: "MCP App Generator",
		Description: "Scaffolds, validates and extends MCP App projects",
		HomeDir:     ".mcpappgen",
		EnvPrefix:   "MCPAPPGEN",
		GoModule:    "github.com/agentx-labs/mcpappgen",
	}
	overlay := b
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return b
	}
	return overlay
}

// CLIName returns the root command name (e.g., "mcpappgen").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".mcpappgen").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "MCPAPPGEN").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("node_command") → "MCPAPPGEN_NODE_COMMAND".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
