// Package scaffold materializes MCP App projects from the template registry
// and patches previously generated projects. Generate writes a new project
// tree; AddTool appends tool registration scaffolding to a project's
// server.ts.
//
// Both operations report failure through their result values instead of Go
// errors: a failed generation still returns the files written so far, and
// nothing is rolled back.
package scaffold
