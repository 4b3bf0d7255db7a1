package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	merrors "github.com/agentx-labs/mcpappgen/internal/errors"
	"github.com/agentx-labs/mcpappgen/internal/output"
)

// ServerFile is the generated server scaffold AddTool patches.
const ServerFile = "server.ts"

// ReturnMarker is the literal text AddTool inserts before. It is the return
// statement of createServer in the base server template.
const ReturnMarker = "return server;"

// AddToolOptions are the inputs of AddTool.
type AddToolOptions struct {
	ProjectPath     string
	ToolName        string // snake_case identifier
	ToolTitle       string
	ToolDescription string
}

// ToolResult is the outcome of AddTool.
type ToolResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`

	// Err is the typed cause of a failure, for errors.Is.
	Err error `json:"-"`
}

// AddTool inserts a tool registration block before the first ReturnMarker in
// the project's server.ts. The block is declarative scaffolding: it is not
// merged into the existing request handlers, and calling AddTool twice inserts
// two blocks.
func AddTool(opts AddToolOptions) *ToolResult {
	serverPath := filepath.Join(opts.ProjectPath, ServerFile)

	data, err := os.ReadFile(serverPath)
	if err != nil {
		return toolFailure(merrors.FromFS(err, "reading %s", serverPath))
	}
	content := string(data)

	if !strings.Contains(content, ReturnMarker) {
		err := fmt.Errorf("%w: could not find %q in %s", merrors.ErrMarkerNotFound, ReturnMarker, ServerFile)
		return &ToolResult{
			Message: fmt.Sprintf("Could not find '%s' in %s", ReturnMarker, ServerFile),
			Err:     err,
		}
	}

	block := toolBlock(opts.ToolName, opts.ToolTitle, opts.ToolDescription)
	patched := strings.Replace(content, ReturnMarker, block+"  "+ReturnMarker, 1)

	if err := os.WriteFile(serverPath, []byte(patched), 0644); err != nil {
		return toolFailure(merrors.FromFS(err, "writing %s", serverPath))
	}
	output.Debug("added tool", "tool", opts.ToolName, "file", serverPath)

	return &ToolResult{
		Success: true,
		Message: fmt.Sprintf("Tool %q added to %s. Note: You may need to manually merge with existing tool handlers.",
			opts.ToolName, ServerFile),
	}
}

func toolFailure(err error) *ToolResult {
	return &ToolResult{Message: err.Error(), Err: err}
}

// toolBlock renders the registration scaffolding for one tool. Values are
// inserted verbatim; callers pass identifiers and plain prose.
func toolBlock(name, title, description string) string {
	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  // Additional tool: %s\n", name)
	b.WriteString("  server.setRequestHandler(ListToolsRequestSchema, async () => ({\n")
	b.WriteString("    tools: [\n")
	b.WriteString("      // ... existing tools ...\n")
	b.WriteString("      {\n")
	fmt.Fprintf(&b, "        name: \"%s\",\n", name)
	fmt.Fprintf(&b, "        description: \"%s\",\n", description)
	b.WriteString("        inputSchema: {\n")
	b.WriteString("          type: \"object\",\n")
	b.WriteString("          properties: {},\n")
	b.WriteString("        },\n")
	b.WriteString("      },\n")
	b.WriteString("    ],\n")
	b.WriteString("  }));\n")
	b.WriteString("\n")
	b.WriteString("  server.setRequestHandler(CallToolRequestSchema, async (request) => {\n")
	fmt.Fprintf(&b, "    if (request.params.name === \"%s\") {\n", name)
	b.WriteString("      return {\n")
	fmt.Fprintf(&b, "        content: [{ type: \"text\", text: \"%s executed.\" }],\n", title)
	b.WriteString("      };\n")
	b.WriteString("    }\n")
	b.WriteString("    throw new Error(`Unknown tool: ${request.params.name}`);\n")
	b.WriteString("  });\n")
	b.WriteString("\n")
	return b.String()
}
