// Package mcpserver exposes the generator as an MCP server. It registers four
// tools (create_mcp_app, list_templates, validate_project and add_tool) whose
// replies are the markdown documents built by package report.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/agentx-labs/mcpappgen/internal/output"
	"github.com/agentx-labs/mcpappgen/internal/report"
	"github.com/agentx-labs/mcpappgen/internal/runtime"
	"github.com/agentx-labs/mcpappgen/internal/scaffold"
	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/agentx-labs/mcpappgen/internal/validate"
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Server identity announced during the MCP handshake.
const (
	ServerName    = "bloom-ui-mcp"
	ServerVersion = "1.0.0"
)

// Tool names.
const (
	ToolCreateApp     = "create_mcp_app"
	ToolListTemplates = "list_templates"
	ToolValidate      = "validate_project"
	ToolAddTool       = "add_tool"
)

// Options configure the tool handlers.
type Options struct {
	Registry    *templates.Registry // Defaults to templates.Default()
	NodeCommand string              // Launch command in generated config snippets
	Prober      runtime.Prober      // Toolchain probe for validate_project
}

// CreateInput are the create_mcp_app arguments.
type CreateInput struct {
	Name        string `json:"name" jsonschema:"Project name in kebab-case (e.g., 'my-awesome-app')"`
	Description string `json:"description" jsonschema:"Description of what the app does"`
	Template    string `json:"template" jsonschema:"Template to use: blank (minimal), calculator, form, or chart"`
	OutputDir   string `json:"outputDir" jsonschema:"Absolute path to the output directory where the project will be created"`
	Version     string `json:"version,omitempty" jsonschema:"Version number (default: 1.0.0)"`
}

// ListInput is the empty list_templates argument object.
type ListInput struct{}

// ValidateInput are the validate_project arguments.
type ValidateInput struct {
	ProjectPath string `json:"projectPath" jsonschema:"Absolute path to the MCP App project directory"`
}

// AddToolInput are the add_tool arguments.
type AddToolInput struct {
	ProjectPath     string `json:"projectPath" jsonschema:"Absolute path to the MCP App project directory"`
	ToolName        string `json:"toolName" jsonschema:"Name for the new tool (snake_case, e.g., 'my_new_tool')"`
	ToolTitle       string `json:"toolTitle" jsonschema:"Display title for the tool"`
	ToolDescription string `json:"toolDescription" jsonschema:"Description of what the tool does"`
}

type handlers struct {
	registry    *templates.Registry
	nodeCommand string
	validator   *validate.Validator
}

// New builds the MCP server with every tool registered.
func New(opts Options) (*mcp.Server, error) {
	reg := opts.Registry
	if reg == nil {
		var err error
		if reg, err = templates.Default(); err != nil {
			return nil, fmt.Errorf("loading template registry: %w", err)
		}
	}

	createSchema, err := jsonschema.For[CreateInput](nil)
	if err != nil {
		return nil, fmt.Errorf("building %s schema: %w", ToolCreateApp, err)
	}
	enum := make([]any, 0, len(reg.Keys()))
	for _, k := range reg.Keys() {
		enum = append(enum, k)
	}
	createSchema.Properties["template"].Enum = enum

	h := &handlers{
		registry:    reg,
		nodeCommand: opts.NodeCommand,
		validator:   validate.New(opts.Prober),
	}

	server := mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: ServerVersion}, nil)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolCreateApp,
		Description: "Generate a new MCP App project with UI. Creates a complete project structure with all necessary files for building an MCP App that works with Claude Desktop.",
		InputSchema: createSchema,
	}, h.create)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolListTemplates,
		Description: "List all available MCP App templates with their descriptions.",
	}, h.listTemplates)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolValidate,
		Description: "Validate an existing MCP App project to check for common issues and missing dependencies.",
	}, h.validate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ToolAddTool,
		Description: "Add a new tool to an existing MCP App project. Note: This adds basic scaffolding that may need manual adjustment.",
	}, h.addTool)

	return server, nil
}

// Serve runs the server over stdin/stdout until ctx is cancelled or the
// client disconnects.
func Serve(ctx context.Context, opts Options) error {
	server, err := New(opts)
	if err != nil {
		return err
	}
	output.Debug("serving MCP over stdio", "server", ServerName, "version", ServerVersion)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func (h *handlers) create(_ context.Context, _ *mcp.CallToolRequest, in CreateInput) (*mcp.CallToolResult, any, error) {
	name := templates.KebabCase(in.Name)
	output.Debug("tool call", "tool", ToolCreateApp, "name", name, "template", in.Template)

	result := scaffold.Generate(h.registry, scaffold.GenerateOptions{
		Name:        name,
		Description: in.Description,
		Template:    in.Template,
		OutputDir:   in.OutputDir,
		Version:     in.Version,
		NodeCommand: h.nodeCommand,
	})
	if !result.Success {
		return failure(report.CreateFailed(result)), nil, nil
	}
	return text(report.Created(result)), nil, nil
}

func (h *handlers) listTemplates(_ context.Context, _ *mcp.CallToolRequest, _ ListInput) (*mcp.CallToolResult, any, error) {
	output.Debug("tool call", "tool", ToolListTemplates)
	return text(report.Templates(h.registry.List())), nil, nil
}

func (h *handlers) validate(ctx context.Context, _ *mcp.CallToolRequest, in ValidateInput) (*mcp.CallToolResult, any, error) {
	output.Debug("tool call", "tool", ToolValidate, "path", in.ProjectPath)

	result, err := h.validator.Validate(ctx, in.ProjectPath)
	if err != nil {
		return failure(fmt.Sprintf("Failed to validate project: %v", err)), nil, nil
	}
	return text(report.Validation(in.ProjectPath, result)), nil, nil
}

func (h *handlers) addTool(_ context.Context, _ *mcp.CallToolRequest, in AddToolInput) (*mcp.CallToolResult, any, error) {
	output.Debug("tool call", "tool", ToolAddTool, "path", in.ProjectPath, "toolName", in.ToolName)

	result := scaffold.AddTool(scaffold.AddToolOptions{
		ProjectPath:     in.ProjectPath,
		ToolName:        in.ToolName,
		ToolTitle:       in.ToolTitle,
		ToolDescription: in.ToolDescription,
	})
	if !result.Success {
		return failure(report.ToolFailed(result)), nil, nil
	}
	return text(report.ToolAdded(result)), nil, nil
}

func text(s string) *mcp.CallToolResult {
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: s}}}
}

func failure(s string) *mcp.CallToolResult {
	r := text(s)
	r.IsError = true
	return r
}
