package validate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	merrors "github.com/agentx-labs/mcpappgen/internal/errors"
	"github.com/agentx-labs/mcpappgen/internal/scaffold"
	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProber struct {
	node    string
	nodeErr error
	bun     string
	bunErr  error
}

func (f fakeProber) NodeVersion(context.Context) (string, error) { return f.node, f.nodeErr }
func (f fakeProber) BunVersion(context.Context) (string, error)  { return f.bun, f.bunErr }

var healthyToolchain = fakeProber{node: "v22.11.0", bun: "1.1.34"}

func TestValidateFreshProject(t *testing.T) {
	projectPath := generate(t, "form")

	result, err := New(healthyToolchain).Validate(context.Background(), projectPath)
	require.NoError(t, err)

	assert.True(t, result.Valid)
	assert.Equal(t, "16 passed, 1 warnings, 0 failed", result.Summary)

	names := make([]string, 0, len(result.Checks))
	for _, c := range result.Checks {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{
		"Node Version",
		"Bun",
		"File: main.ts",
		"File: server.ts",
		"File: package.json",
		"File: vite.config.ts",
		"File: tsconfig.json",
		"File: tsconfig.server.json",
		"File: mcp-app.html",
		"Directory: src",
		"Dependency: @modelcontextprotocol/ext-apps",
		"Dependency: @modelcontextprotocol/sdk",
		"DevDependency: cross-env",
		"DevDependency: vite-plugin-singlefile",
		"DevDependency: vite",
		"Build Script",
		"Build Output",
	}, names)

	assert.Equal(t, ValidationCheck{
		Name:    "Node Version",
		Status:  StatusPass,
		Message: "v22.11.0 (>= 20 required for import.meta.dirname)",
	}, result.Checks[0])
	assert.Equal(t, "Bun 1.1.34 installed (required for build)", result.Checks[1].Message)
	assert.Equal(t, StatusPass, checkNamed(t, result, "Build Script").Status)

	out := checkNamed(t, result, "Build Output")
	assert.Equal(t, StatusWarn, out.Status)
	assert.Equal(t, "dist/ not found. Run npm install && npm run build", out.Message)
}

func TestValidateBuildOutput(t *testing.T) {
	tests := []struct {
		name       string
		dist       []string
		wantStatus Status
		wantMsg    string
	}{
		{"complete", []string{"index.js", "mcp-app.html"}, StatusPass, "dist/index.js and dist/mcp-app.html exist"},
		{"server only", []string{"index.js"}, StatusWarn, "dist/ exists but missing: mcp-app.html. Run npm run build"},
		{"empty", nil, StatusWarn, "dist/ exists but missing: index.js, mcp-app.html. Run npm run build"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectPath := generate(t, "blank")
			dist := filepath.Join(projectPath, DistDir)
			require.NoError(t, os.MkdirAll(dist, 0755))
			for _, f := range tt.dist {
				require.NoError(t, os.WriteFile(filepath.Join(dist, f), []byte("x"), 0644))
			}

			result, err := New(healthyToolchain).Validate(context.Background(), projectPath)
			require.NoError(t, err)

			check := checkNamed(t, result, "Build Output")
			assert.Equal(t, tt.wantStatus, check.Status)
			assert.Equal(t, tt.wantMsg, check.Message)
			assert.True(t, result.Valid, "build output never fails a project")
		})
	}
}

func TestValidateToolchain(t *testing.T) {
	tests := []struct {
		name     string
		prober   fakeProber
		wantNode ValidationCheck
		wantBun  ValidationCheck
	}{
		{
			name:     "old node",
			prober:   fakeProber{node: "v18.19.1", bun: "1.1.0"},
			wantNode: ValidationCheck{"Node Version", StatusFail, "v18.19.1 is too old. Node >= 20 required for import.meta.dirname"},
			wantBun:  ValidationCheck{"Bun", StatusPass, "Bun 1.1.0 installed (required for build)"},
		},
		{
			name:     "node missing",
			prober:   fakeProber{nodeErr: errors.New("node not found"), bun: "1.1.0"},
			wantNode: ValidationCheck{"Node Version", StatusFail, "Could not detect Node version"},
			wantBun:  ValidationCheck{"Bun", StatusPass, "Bun 1.1.0 installed (required for build)"},
		},
		{
			name:     "garbage node version",
			prober:   fakeProber{node: "banana", bun: "1.1.0"},
			wantNode: ValidationCheck{"Node Version", StatusFail, "Could not detect Node version"},
			wantBun:  ValidationCheck{"Bun", StatusPass, "Bun 1.1.0 installed (required for build)"},
		},
		{
			name:     "bun missing",
			prober:   fakeProber{node: "v20.0.0", bunErr: errors.New("bun not found")},
			wantNode: ValidationCheck{"Node Version", StatusPass, "v20.0.0 (>= 20 required for import.meta.dirname)"},
			wantBun:  ValidationCheck{"Bun", StatusFail, "Bun not found. Install from https://bun.sh"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := New(tt.prober).Validate(context.Background(), generate(t, "chart"))
			require.NoError(t, err)

			assert.Equal(t, tt.wantNode, result.Checks[0])
			assert.Equal(t, tt.wantBun, result.Checks[1])
			assert.False(t, result.Valid)
		})
	}
}

func TestValidateMissingProject(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")

	result, err := New(healthyToolchain).Validate(context.Background(), missing)
	require.NoError(t, err)

	assert.False(t, result.Valid)
	for _, file := range RequiredFiles {
		assert.Equal(t, ValidationCheck{"File: " + file, StatusFail, "Missing"}, checkNamed(t, result, "File: "+file))
	}
	assert.Equal(t, StatusFail, checkNamed(t, result, "Directory: src").Status)

	// The unreadable manifest replaces the dependency and script checks.
	manifest := checkNamed(t, result, "package.json")
	assert.Equal(t, StatusFail, manifest.Status)
	assert.Contains(t, manifest.Message, merrors.ErrManifestUnreadable.Error())
	assert.False(t, hasCheck(result, "Build Script"))
	assert.False(t, hasCheck(result, "Dependency: @modelcontextprotocol/sdk"))

	assert.Equal(t, "2 passed, 1 warnings, 9 failed", result.Summary)
}

func TestValidatePathIsFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	_, err := New(healthyToolchain).Validate(context.Background(), file)
	assert.ErrorIs(t, err, merrors.ErrIOFailure)
}

func TestValidateManifest(t *testing.T) {
	tests := []struct {
		name   string
		pkg    string
		checks map[string]ValidationCheck
		absent []string
	}{
		{
			name: "malformed json",
			pkg:  `{"name": `,
			checks: map[string]ValidationCheck{
				"package.json": {Name: "package.json", Status: StatusFail},
			},
		},
		{
			name: "null document",
			pkg:  `null`,
			checks: map[string]ValidationCheck{
				"package.json": {"package.json", StatusFail, "manifest unreadable: package.json is not a JSON object"},
			},
			absent: []string{"Dependency: @modelcontextprotocol/sdk", "DevDependency: vite", "Build Script"},
		},
		{
			name: "array document",
			pkg:  `["@modelcontextprotocol/sdk"]`,
			checks: map[string]ValidationCheck{
				"package.json": {"package.json", StatusFail, "manifest unreadable: package.json is not a JSON object"},
			},
			absent: []string{"Dependency: @modelcontextprotocol/ext-apps", "Build Script"},
		},
		{
			name: "missing sections",
			pkg:  `{"name": "x"}`,
			checks: map[string]ValidationCheck{
				"Dependency: @modelcontextprotocol/sdk": {"Dependency: @modelcontextprotocol/sdk", StatusFail, "Missing from dependencies"},
				"DevDependency: vite":                   {"DevDependency: vite", StatusFail, "Missing from devDependencies"},
				"Build Script":                          {"Build Script", StatusFail, "No build script defined"},
			},
		},
		{
			name: "partial build script",
			pkg: `{
  "dependencies": {"@modelcontextprotocol/ext-apps": "^0.1.0", "@modelcontextprotocol/sdk": "^1.20.0"},
  "devDependencies": {"cross-env": "^7.0.3", "vite-plugin-singlefile": "^2.0.0", "vite": "^6.0.0"},
  "scripts": {"build": "vite build && tsc"}
}`,
			checks: map[string]ValidationCheck{
				"Dependency: @modelcontextprotocol/ext-apps": {"Dependency: @modelcontextprotocol/ext-apps", StatusPass, "^0.1.0"},
				"DevDependency: vite":                        {"DevDependency: vite", StatusPass, "^6.0.0"},
				"Build Script":                               {"Build Script", StatusWarn, "Missing: npx, bun build, cross-env INPUT="},
			},
		},
		{
			name: "non-string build script",
			pkg:  `{"scripts": {"build": 42}}`,
			checks: map[string]ValidationCheck{
				"Build Script": {"Build Script", StatusFail, "No build script defined"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectPath := generate(t, "blank")
			require.NoError(t, os.WriteFile(filepath.Join(projectPath, "package.json"), []byte(tt.pkg), 0644))

			result, err := New(healthyToolchain).Validate(context.Background(), projectPath)
			require.NoError(t, err)

			for name, want := range tt.checks {
				got := checkNamed(t, result, name)
				assert.Equal(t, want.Status, got.Status, name)
				if want.Message != "" {
					assert.Equal(t, want.Message, got.Message, name)
				}
			}
			for _, name := range tt.absent {
				assert.False(t, hasCheck(result, name), "unexpected check %q", name)
			}
		})
	}
}

func TestValidateSrcNotDirectory(t *testing.T) {
	projectPath := generate(t, "blank")
	src := filepath.Join(projectPath, "src")
	require.NoError(t, os.RemoveAll(src))
	require.NoError(t, os.WriteFile(src, []byte("x"), 0644))

	result, err := New(healthyToolchain).Validate(context.Background(), projectPath)
	require.NoError(t, err)

	assert.Equal(t, ValidationCheck{"Directory: src", StatusFail, "Not a directory"}, checkNamed(t, result, "Directory: src"))
	assert.False(t, result.Valid)
}

// ─── Test Helpers ──────────────────────────────────────────────────

func generate(t *testing.T, template string) string {
	t.Helper()
	reg, err := templates.Default()
	require.NoError(t, err)

	result := scaffold.Generate(reg, scaffold.GenerateOptions{
		Name:        "checked-app",
		Description: "Under validation",
		Template:    template,
		OutputDir:   t.TempDir(),
	})
	require.True(t, result.Success, "errors: %v", result.Errors)
	return result.ProjectPath
}

func checkNamed(t *testing.T, r *ValidationResult, name string) ValidationCheck {
	t.Helper()
	for _, c := range r.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("no check named %q in %+v", name, r.Checks)
	return ValidationCheck{}
}

func hasCheck(r *ValidationResult, name string) bool {
	for _, c := range r.Checks {
		if c.Name == name {
			return true
		}
	}
	return false
}
