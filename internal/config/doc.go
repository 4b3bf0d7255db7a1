// Package config manages user-level settings stored at ~/.mcpappgen/config.yaml.
// Every key can be overridden with an MCPAPPGEN_-prefixed environment
// variable, e.g. MCPAPPGEN_NODE_COMMAND.
package config
