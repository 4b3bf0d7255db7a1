// Package runtime probes the host toolchain that generated MCP App projects
// build with: the Node.js runtime and the Bun bundler. The Prober interface
// lets the project validator run against fake toolchains in tests.
package runtime
