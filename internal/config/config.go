package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/agentx-labs/mcpappgen/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	// KeyNodeCommand is the Node binary written into generated launch configs.
	KeyNodeCommand = "node_command"
	// KeyTemplatesDir points at a template tree replacing the embedded one.
	KeyTemplatesDir = "templates_dir"
	// KeyVerbose enables debug logging.
	KeyVerbose = "verbose"
)

// Keys lists every recognized key.
var Keys = []string{KeyNodeCommand, KeyTemplatesDir, KeyVerbose}

// Dir returns the path to the config directory (~/.mcpappgen/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.mcpappgen/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// NodeCommand returns the configured launch command, empty when unset.
func NodeCommand() string { return viper.GetString(KeyNodeCommand) }

// TemplatesDir returns the configured template tree, empty when unset.
func TemplatesDir() string { return viper.GetString(KeyTemplatesDir) }

// Verbose reports whether debug logging is enabled in config.
func Verbose() bool { return viper.GetBool(KeyVerbose) }

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if !slices.Contains(Keys, key) {
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
