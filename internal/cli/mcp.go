package cli

import (
	"fmt"
	"os"

	"github.com/sandfs/sandsh/internal/mcpserver"
	"github.com/sandfs/sandsh/internal/session"
)

// RunMCP serves the MCP tool surface over stdio until the client hangs up.
func RunMCP(sess *session.Session, version string) int {
	if err := mcpserver.ServeStdio(sess, version); err != nil {
		fmt.Fprintf(os.Stderr, "sandsh: mcp: %v\n", err)
		return 1
	}
	return 0
}
