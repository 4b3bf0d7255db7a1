//go:build integration

package integration_test

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/agentx-labs/mcpappgen/internal/validate"
)

// toolchain is a Prober reporting a supported Node and Bun.
type toolchain struct{}

func (toolchain) NodeVersion(context.Context) (string, error) { return "v22.11.0", nil }
func (toolchain) BunVersion(context.Context) (string, error)  { return "1.1.34", nil }

// exportTemplates copies the embedded template tree to a fresh directory so
// tests can edit it and load it back through templates.Open.
func exportTemplates(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	src := templates.Embedded()
	err := fs.WalkDir(src, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		dest := filepath.Join(dir, filepath.FromSlash(path))
		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}
		data, err := fs.ReadFile(src, path)
		if err != nil {
			return err
		}
		return os.WriteFile(dest, data, 0644)
	})
	if err != nil {
		t.Fatalf("exporting templates: %v", err)
	}
	return dir
}

func validateProject(t *testing.T, projectPath string) *validate.ValidationResult {
	t.Helper()
	result, err := validate.New(toolchain{}).Validate(context.Background(), projectPath)
	if err != nil {
		t.Fatalf("Validate(%s): %v", projectPath, err)
	}
	return result
}

func findCheck(t *testing.T, result *validate.ValidationResult, name string) validate.ValidationCheck {
	t.Helper()
	for _, c := range result.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no %q check in result", name)
	return validate.ValidationCheck{}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}
