// Package mcpserver exposes the shell to MCP clients over stdio. A single
// session backs all tool calls, so cwd and store state persist across a
// client's requests.
package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sandfs/sandsh/internal/session"
)

// New builds the MCP server around an existing session.
func New(sess *session.Session, version string) *server.MCPServer {
	s := server.NewMCPServer("sandsh", version, server.WithToolCapabilities(false))

	runTool := mcp.NewTool("run",
		mcp.WithDescription("Run one shell line against the sandboxed store. Supports pipelines, e.g. \"cat notes.txt | grep error | head 5\". Run \"help\" for the command list."),
		mcp.WithString("line", mcp.Required(), mcp.Description("The command line to execute.")),
	)
	s.AddTool(runTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		line, err := req.RequireString("line")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := sess.Submit(ctx, line)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	})

	readTool := mcp.NewTool("read_file",
		mcp.WithDescription("Read the full content of one file in the store."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path, absolute or relative to the session cwd.")),
	)
	s.AddTool(readTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		env := sess.Env()
		content, err := env.Store.Read(env.Resolve(path))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(content), nil
	})

	writeTool := mcp.NewTool("write_file",
		mcp.WithDescription("Create or overwrite one file in the store. Missing parent directories are created."),
		mcp.WithString("path", mcp.Required(), mcp.Description("File path, absolute or relative to the session cwd.")),
		mcp.WithString("content", mcp.Required(), mcp.Description("The full new file content.")),
	)
	s.AddTool(writeTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path, err := req.RequireString("path")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		content, err := req.RequireString("content")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		env := sess.Env()
		resolved := env.Resolve(path)
		if err := env.Store.Write(resolved, content); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("wrote %d bytes to /%s", len(content), resolved)), nil
	})

	listTool := mcp.NewTool("list_files",
		mcp.WithDescription("List every file and directory under a path, recursively."),
		mcp.WithString("path", mcp.Description("Directory to list; defaults to the store root.")),
	)
	s.AddTool(listTool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "/")
		env := sess.Env()
		entries, err := env.Store.List(env.Resolve(path))
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out := ""
		for _, e := range entries {
			line := "/" + e.Path
			if e.IsDir {
				line += "/"
			} else {
				line += fmt.Sprintf(" (%d bytes)", e.Size)
			}
			if out != "" {
				out += "\n"
			}
			out += line
		}
		if out == "" {
			out = "(empty)"
		}
		return mcp.NewToolResultText(out), nil
	})

	return s
}

// ServeStdio runs the server over stdin/stdout until the client hangs up.
func ServeStdio(sess *session.Session, version string) error {
	return server.ServeStdio(New(sess, version))
}
