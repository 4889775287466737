// Package server implements the MCP (Model Context Protocol) server for
// checkerboard generation.
//
// The server exposes pattern generation, HSV conversion and read-back
// inspection as MCP tools, so a client can render a pattern, look at an
// inline preview and verify the written file in one session.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Pattern Operations:
//   - pattern_generate: Render a checkerboard and write it to a file
//   - pattern_preview: Render a checkerboard as inline base64 PNG
//
// Color Operations:
//   - color_hsv_to_rgb: Convert an HSV triple to RGB
//
// Inspection Operations:
//   - image_load: Get dimensions, format and alpha of a file
//   - image_sample_color: Get color at pixel
//   - image_dominant_colors: List the most frequent colors
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
package server
