// Package report renders operation results as the markdown documents returned
// to MCP clients. The CLI reuses them for its --markdown output.
package report

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/mcpappgen/internal/scaffold"
	"github.com/agentx-labs/mcpappgen/internal/templates"
	"github.com/agentx-labs/mcpappgen/internal/validate"
)

// Created renders a successful generation: project path, file list, next
// steps and the host launch configuration. The reminder to replace the node
// command appears only while the snippet still holds the placeholder path.
func Created(p *scaffold.GeneratedProject) string {
	var b strings.Builder
	b.WriteString("Project created successfully!\n\n")
	fmt.Fprintf(&b, "**Project Path:** %s\n\n", p.ProjectPath)
	b.WriteString("**Files Created:**\n")
	b.WriteString(bullets(p.Files))
	b.WriteString("\n\n")
	b.WriteString("**Next Steps:**\n")
	fmt.Fprintf(&b, "1. cd %s\n", p.ProjectPath)
	b.WriteString("2. npm install\n")
	b.WriteString("3. npm run build\n\n")
	b.WriteString("**Claude Desktop Config (add to claude_desktop_config.json):**\n")
	b.WriteString("```json\n")
	b.WriteString(p.ConfigSnippet)
	b.WriteString("\n```")
	if p.NodeCommand == "" || p.NodeCommand == scaffold.DefaultNodeCommand {
		b.WriteString("\n\n")
		fmt.Fprintf(&b, "Remember to replace %q with your actual Node v22+ path.\n", scaffold.DefaultNodeCommand)
		b.WriteString("You can find it with: `which node` or `nvm which 22`")
	}
	return b.String()
}

// CreateFailed renders the error lines of a failed generation.
func CreateFailed(p *scaffold.GeneratedProject) string {
	detail := strings.Join(p.Errors, "\n")
	if detail == "" {
		detail = "Unknown error"
	}
	return "Failed to create project:\n" + detail
}

// Templates renders the registry listing in catalog order.
func Templates(list []templates.TemplateDescriptor) string {
	lines := make([]string, 0, len(list))
	for _, t := range list {
		lines = append(lines, fmt.Sprintf("- **%s** (%s): %s", t.Key, t.Name, t.Description))
	}
	return "Available MCP App Templates:\n\n" +
		strings.Join(lines, "\n") +
		"\n\nUse these template names with the `create_mcp_app` tool."
}

// Icon returns the emoji shown for a check status.
func Icon(s validate.Status) string {
	switch s {
	case validate.StatusPass:
		return "✅"
	case validate.StatusWarn:
		return "⚠️"
	default:
		return "❌"
	}
}

// Validation renders a checklist. Invalid projects get a list of fixes.
func Validation(projectPath string, r *validate.ValidationResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Validation Results for: %s\n\n", projectPath)

	status := "✅ Valid"
	if !r.Valid {
		status = "❌ Invalid"
	}
	fmt.Fprintf(&b, "**Status:** %s\n", status)
	fmt.Fprintf(&b, "**Summary:** %s\n\n", r.Summary)

	b.WriteString("**Checks:**\n")
	lines := make([]string, 0, len(r.Checks))
	for _, c := range r.Checks {
		lines = append(lines, fmt.Sprintf("%s **%s**: %s", Icon(c.Status), c.Name, c.Message))
	}
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n\n")

	if !r.Valid {
		b.WriteString("\n**To fix issues:**\n")
		b.WriteString("- Ensure Node >= 20 is installed\n")
		b.WriteString("- Install Bun: curl -fsSL https://bun.sh/install | bash\n")
		b.WriteString("- Run: npm install\n")
		b.WriteString("- Run: npm run build")
	}
	return b.String()
}

// ToolAdded renders a successful AddTool with the manual follow-up steps.
func ToolAdded(r *scaffold.ToolResult) string {
	return "Tool added successfully!\n\n" +
		r.Message + "\n\n" +
		"**Important:** After adding the tool, you'll need to:\n" +
		"1. Review server.ts and merge the tool handlers\n" +
		"2. Run `npm run build` to rebuild\n" +
		"3. Restart Claude Desktop to pick up changes"
}

// ToolFailed renders a failed AddTool.
func ToolFailed(r *scaffold.ToolResult) string {
	return "Failed to add tool: " + r.Message
}

func bullets(items []string) string {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, "- "+item)
	}
	return strings.Join(lines, "\n")
}
