package scaffold

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	merrors "github.com/agentx-labs/mcpappgen/internal/errors"
	"github.com/agentx-labs/mcpappgen/internal/output"
	"github.com/agentx-labs/mcpappgen/internal/templates"
)

// DefaultVersion is the project version used when none is given.
const DefaultVersion = "1.0.0"

// DefaultNodeCommand is the launch command written into the config snippet.
// Operators replace it with the path of their Node 22+ binary.
const DefaultNodeCommand = "/path/to/node/v22/bin/node"

// SrcDir is the project subdirectory holding UI sources.
const SrcDir = "src"

// GitignoreFile is written at every project root.
const GitignoreFile = ".gitignore"

const gitignoreContent = "node_modules/\ndist/\n"

// GenerateOptions are the inputs of a generation request.
type GenerateOptions struct {
	Name        string // Project identifier, expected in kebab-case
	Description string
	Template    string // Registry key
	OutputDir   string // Parent directory; the project lands in OutputDir/Name
	Version     string // Defaults to DefaultVersion
	Author      string // Optional
	NodeCommand string // Defaults to DefaultNodeCommand
}

// GeneratedProject is the outcome of Generate.
type GeneratedProject struct {
	ProjectPath   string   `json:"projectPath"`
	Files         []string `json:"files"`
	ConfigSnippet string   `json:"claudeDesktopConfig"`
	NodeCommand   string   `json:"-"` // Launch command used in ConfigSnippet
	Success       bool     `json:"success"`
	Errors        []string `json:"errors,omitempty"`

	// Err is the typed cause of a failure, for errors.Is.
	Err error `json:"-"`
}

// LaunchConfig tells a host application how to start a generated project.
type LaunchConfig struct {
	Command string   `json:"command"`
	Args    []string `json:"args"`
}

// Generate writes a new project from the registry. An unknown template is
// reported before anything touches the filesystem. Any later failure returns
// the files recorded so far and leaves the partial tree on disk.
func Generate(reg *templates.Registry, opts GenerateOptions) *GeneratedProject {
	if opts.Version == "" {
		opts.Version = DefaultVersion
	}
	if opts.NodeCommand == "" {
		opts.NodeCommand = DefaultNodeCommand
	}

	projectPath := filepath.Join(opts.OutputDir, opts.Name)
	result := &GeneratedProject{ProjectPath: projectPath, Files: []string{}, NodeCommand: opts.NodeCommand}

	tmpl, err := reg.Resolve(opts.Template)
	if err != nil {
		result.Err = err
		result.Errors = []string{fmt.Sprintf("Unknown template: %s. Available: %s",
			opts.Template, strings.Join(reg.Keys(), ", "))}
		if s := reg.Suggest(opts.Template); len(s) > 0 {
			result.Errors = append(result.Errors, fmt.Sprintf("Did you mean %q?", s[0]))
		}
		return result
	}

	placeholders := templates.NewPlaceholders(opts.Name, opts.Description, opts.Version, opts.Author)

	w := &writer{root: projectPath, placeholders: placeholders, result: result}
	if err := w.run(reg, tmpl); err != nil {
		output.Debug("generation failed", "project", projectPath, "err", err)
		result.Err = err
		result.Errors = []string{err.Error()}
		return result
	}

	snippet, err := ConfigSnippet(opts.Name, projectPath, opts.NodeCommand)
	if err != nil {
		result.Err = err
		result.Errors = []string{err.Error()}
		return result
	}
	result.ConfigSnippet = snippet
	result.Success = true
	return result
}

// writer carries the per-request state of one generation.
type writer struct {
	root         string
	placeholders templates.Placeholders
	result       *GeneratedProject
}

func (w *writer) run(reg *templates.Registry, tmpl templates.TemplateDescriptor) error {
	if err := mkdir(w.root); err != nil {
		return err
	}
	if err := mkdir(filepath.Join(w.root, SrcDir)); err != nil {
		return err
	}

	for _, file := range reg.BaseFiles() {
		content, err := reg.LoadBase(file)
		if err != nil {
			return err
		}
		dest := outputName(file)
		if err := w.write(dest, content); err != nil {
			return err
		}
		w.record(dest)
	}

	for _, file := range tmpl.Files {
		content, err := reg.LoadTemplate(tmpl.Key, file)
		if err != nil {
			return err
		}
		dest := outputName(file)
		if file != reg.Markup() {
			dest = filepath.ToSlash(filepath.Join(SrcDir, dest))
		}
		if err := w.write(dest, content); err != nil {
			return err
		}
		w.record(dest)
	}

	if err := w.relocateStylesheet(reg); err != nil {
		return err
	}

	if err := w.writeRaw(GitignoreFile, gitignoreContent); err != nil {
		return err
	}
	w.record(GitignoreFile)
	return nil
}

// relocateStylesheet rewrites the shared stylesheet into src/ and removes the
// root copy written by the base pass, along with its entry in Files.
func (w *writer) relocateStylesheet(reg *templates.Registry) error {
	content, err := reg.LoadBase(reg.Stylesheet())
	if err != nil {
		return err
	}
	rootName := outputName(reg.Stylesheet())
	srcName := filepath.ToSlash(filepath.Join(SrcDir, rootName))
	if err := w.write(srcName, content); err != nil {
		return err
	}
	w.record(srcName)

	if err := os.Remove(filepath.Join(w.root, rootName)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return merrors.FromFS(err, "removing %s", rootName)
	}
	if i := slices.Index(w.result.Files, rootName); i >= 0 {
		w.result.Files = slices.Delete(w.result.Files, i, i+1)
	}
	return nil
}

// write substitutes placeholders into content and writes it at the
// slash-separated path rel under the project root.
func (w *writer) write(rel, content string) error {
	return w.writeRaw(rel, templates.Substitute(content, w.placeholders))
}

func (w *writer) writeRaw(rel, content string) error {
	dest := filepath.Join(w.root, filepath.FromSlash(rel))
	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		return merrors.FromFS(err, "writing %s", rel)
	}
	output.Debug("wrote file", "path", dest)
	return nil
}

func (w *writer) record(rel string) {
	w.result.Files = append(w.result.Files, rel)
}

func mkdir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return merrors.FromFS(err, "creating directory %s", dir)
	}
	return nil
}

// outputName strips the .tmpl extension from an asset identifier.
func outputName(file string) string {
	return strings.TrimSuffix(file, ".tmpl")
}

// ConfigSnippet renders the host launch configuration for a project as
// 2-space indented JSON: {"<name>": {"command": ..., "args": [...]}}.
func ConfigSnippet(name, projectPath, nodeCommand string) (string, error) {
	cfg := map[string]LaunchConfig{
		name: {
			Command: nodeCommand,
			Args:    []string{projectPath + "/dist/index.js", "--stdio"},
		},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(cfg); err != nil {
		return "", fmt.Errorf("encoding config snippet: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}
