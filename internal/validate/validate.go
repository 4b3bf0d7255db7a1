// Package validate checks a generated MCP App project and the host toolchain
// it builds with. Every finding becomes a check with a pass, warn or fail
// status; a project is valid when nothing fails.
package validate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	merrors "github.com/agentx-labs/mcpappgen/internal/errors"
	"github.com/agentx-labs/mcpappgen/internal/output"
	"github.com/agentx-labs/mcpappgen/internal/runtime"
)

// Status is the outcome of a single check.
type Status string

// Check statuses.
const (
	StatusPass Status = output.StatusPass
	StatusWarn Status = output.StatusWarn
	StatusFail Status = output.StatusFail
)

// ValidationCheck is one named finding.
type ValidationCheck struct {
	Name    string `json:"name"`
	Status  Status `json:"status"`
	Message string `json:"message"`
}

// ValidationResult is the ordered list of checks for one project.
type ValidationResult struct {
	Valid   bool              `json:"valid"`
	Checks  []ValidationCheck `json:"checks"`
	Summary string            `json:"summary"`
}

// Counts returns the number of passing, warning and failing checks.
func (r *ValidationResult) Counts() (pass, warn, fail int) {
	for _, c := range r.Checks {
		switch c.Status {
		case StatusPass:
			pass++
		case StatusWarn:
			warn++
		case StatusFail:
			fail++
		}
	}
	return pass, warn, fail
}

// RequiredFiles must exist at every project root.
var RequiredFiles = []string{
	"main.ts",
	"server.ts",
	"package.json",
	"vite.config.ts",
	"tsconfig.json",
	"tsconfig.server.json",
	"mcp-app.html",
}

// RequiredDirs are the directories every project must contain.
var RequiredDirs = []string{"src"}

// RequiredDependencies must appear in package.json "dependencies".
var RequiredDependencies = []string{
	"@modelcontextprotocol/ext-apps",
	"@modelcontextprotocol/sdk",
}

// RequiredDevDependencies must appear in package.json "devDependencies".
var RequiredDevDependencies = []string{
	"cross-env",
	"vite-plugin-singlefile",
	"vite",
}

// buildScriptTokens are the fragments the build script must mention.
var buildScriptTokens = []string{"npx", "bun build", "cross-env INPUT="}

// Build artifacts expected in dist/.
const (
	DistDir      = "dist"
	DistServer   = "index.js"
	DistMarkup   = "mcp-app.html"
	manifestFile = "package.json"
)

// Validator runs the project checklist.
type Validator struct {
	prober runtime.Prober
}

// New returns a Validator probing the toolchain through p. A nil p probes
// the real binaries on PATH.
func New(p runtime.Prober) *Validator {
	if p == nil {
		p = runtime.ExecProber{}
	}
	return &Validator{prober: p}
}

// Validate runs the checklist against projectPath with the host toolchain.
func Validate(ctx context.Context, projectPath string) (*ValidationResult, error) {
	return New(nil).Validate(ctx, projectPath)
}

// Validate runs every check against projectPath. A missing project is not
// an error: its files simply fail. An error is returned only when the path
// exists but cannot be inspected as a directory.
func (v *Validator) Validate(ctx context.Context, projectPath string) (*ValidationResult, error) {
	info, err := os.Stat(projectPath)
	switch {
	case err == nil && !info.IsDir():
		return nil, fmt.Errorf("%w: project path %s is not a directory", merrors.ErrIOFailure, projectPath)
	case err != nil && !errors.Is(err, fs.ErrNotExist):
		return nil, merrors.FromFS(err, "inspecting project %s", projectPath)
	}

	c := &checklist{}
	v.checkNode(ctx, c)
	v.checkBun(ctx, c)
	checkStructure(c, projectPath)
	checkManifest(c, projectPath)
	checkBuildOutput(c, projectPath)

	result := &ValidationResult{Checks: c.checks}
	pass, warn, fail := result.Counts()
	result.Valid = fail == 0
	result.Summary = fmt.Sprintf("%d passed, %d warnings, %d failed", pass, warn, fail)

	output.Debug("validated project", "path", projectPath, "summary", result.Summary)
	return result, nil
}

type checklist struct {
	checks []ValidationCheck
}

func (c *checklist) add(name string, status Status, message string) {
	c.checks = append(c.checks, ValidationCheck{Name: name, Status: status, Message: message})
}

func (v *Validator) checkNode(ctx context.Context, c *checklist) {
	const name = "Node Version"

	version, err := v.prober.NodeVersion(ctx)
	if err != nil {
		output.Debug("node probe failed", "err", err)
		c.add(name, StatusFail, "Could not detect Node version")
		return
	}
	major, err := runtime.ParseMajor(version)
	if err != nil {
		output.Debug("node version unparseable", "version", version, "err", err)
		c.add(name, StatusFail, "Could not detect Node version")
		return
	}

	if major >= runtime.MinNodeMajor {
		c.add(name, StatusPass, fmt.Sprintf("%s (>= %d required for import.meta.dirname)", version, runtime.MinNodeMajor))
		return
	}
	c.add(name, StatusFail, fmt.Sprintf("%s is too old. Node >= %d required for import.meta.dirname", version, runtime.MinNodeMajor))
}

func (v *Validator) checkBun(ctx context.Context, c *checklist) {
	version, err := v.prober.BunVersion(ctx)
	if err != nil {
		output.Debug("bun probe failed", "err", err)
		c.add("Bun", StatusFail, "Bun not found. Install from https://bun.sh")
		return
	}
	c.add("Bun", StatusPass, fmt.Sprintf("Bun %s installed (required for build)", version))
}

func checkStructure(c *checklist, projectPath string) {
	for _, file := range RequiredFiles {
		name := "File: " + file
		if _, err := os.Stat(filepath.Join(projectPath, file)); err != nil {
			c.add(name, StatusFail, "Missing")
			continue
		}
		c.add(name, StatusPass, "Exists")
	}

	for _, dir := range RequiredDirs {
		name := "Directory: " + dir
		info, err := os.Stat(filepath.Join(projectPath, dir))
		switch {
		case err != nil:
			c.add(name, StatusFail, "Missing")
		case !info.IsDir():
			c.add(name, StatusFail, "Not a directory")
		default:
			c.add(name, StatusPass, "Exists")
		}
	}
}

// checkManifest covers dependencies and the build script. An unreadable
// manifest collapses into one failing check.
func checkManifest(c *checklist, projectPath string) {
	pkg, err := readManifest(filepath.Join(projectPath, manifestFile))
	if err != nil {
		output.Debug("manifest unreadable", "err", err)
		c.add(manifestFile, StatusFail, err.Error())
		return
	}

	deps := object(pkg["dependencies"])
	for _, dep := range RequiredDependencies {
		name := "Dependency: " + dep
		if version := nonEmptyString(deps[dep]); version != "" {
			c.add(name, StatusPass, version)
			continue
		}
		c.add(name, StatusFail, "Missing from dependencies")
	}

	devDeps := object(pkg["devDependencies"])
	for _, dep := range RequiredDevDependencies {
		name := "DevDependency: " + dep
		if version := nonEmptyString(devDeps[dep]); version != "" {
			c.add(name, StatusPass, version)
			continue
		}
		c.add(name, StatusFail, "Missing from devDependencies")
	}

	script := nonEmptyString(object(pkg["scripts"])["build"])
	if script == "" {
		c.add("Build Script", StatusFail, "No build script defined")
		return
	}
	var missing []string
	for _, token := range buildScriptTokens {
		if !strings.Contains(script, token) {
			missing = append(missing, token)
		}
	}
	if len(missing) > 0 {
		c.add("Build Script", StatusWarn, "Missing: "+strings.Join(missing, ", "))
		return
	}
	c.add("Build Script", StatusPass, "Contains npx, bun build, and cross-env INPUT")
}

func readManifest(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", merrors.ErrManifestUnreadable, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %w", merrors.ErrManifestUnreadable, manifestFile, err)
	}
	pkg, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s is not a JSON object", merrors.ErrManifestUnreadable, manifestFile)
	}
	return pkg, nil
}

// checkBuildOutput never fails: a project that was never built is still
// structurally valid.
func checkBuildOutput(c *checklist, projectPath string) {
	const name = "Build Output"
	distPath := filepath.Join(projectPath, DistDir)

	info, err := os.Stat(distPath)
	if err != nil {
		c.add(name, StatusWarn, "dist/ not found. Run npm install && npm run build")
		return
	}
	if !info.IsDir() {
		c.add(name, StatusWarn, "dist/ is not a directory. Run npm run build")
		return
	}

	entries, err := os.ReadDir(distPath)
	if err != nil {
		c.add(name, StatusWarn, "dist/ could not be read. Run npm run build")
		return
	}
	present := make(map[string]bool, len(entries))
	for _, e := range entries {
		present[e.Name()] = true
	}

	var missing []string
	for _, artifact := range []string{DistServer, DistMarkup} {
		if !present[artifact] {
			missing = append(missing, artifact)
		}
	}
	if len(missing) > 0 {
		c.add(name, StatusWarn, fmt.Sprintf("dist/ exists but missing: %s. Run npm run build", strings.Join(missing, ", ")))
		return
	}
	c.add(name, StatusPass, "dist/index.js and dist/mcp-app.html exist")
}

func object(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

func nonEmptyString(v any) string {
	s, _ := v.(string)
	return s
}
