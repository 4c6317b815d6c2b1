// Package tools provides tool registration and MCP (Model Context Protocol)
// serving.
//
// It is organized into sub-packages:
//   - [github.com/germanamz/thevoices/pkg/tools/toolbox] — Tool type and ToolBox registry
//   - [github.com/germanamz/thevoices/pkg/tools/mcpserver] — MCP server exposing tools over the official MCP Go SDK
//
// The toolbox sub-package is the foundation layer; mcpserver depends on it
// for the Tool type. mcpserver is a thin wrapper around the official
// MCP Go SDK (github.com/modelcontextprotocol/go-sdk).
package tools
