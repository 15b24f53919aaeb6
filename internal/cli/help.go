package cli

import (
	"fmt"
	"io"
)

// RunHelp shows the command-line usage.
func RunHelp(w io.Writer) int {
	fmt.Fprintln(w, "sandsh — a pipeline shell over a sandboxed file store")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "usage:")
	fmt.Fprintln(w, "  sandsh                          interactive shell")
	fmt.Fprintln(w, "  sandsh -c '<line>'              run one line and exit")
	fmt.Fprintln(w, "  sandsh --list [--tier <tier>]   list available commands")
	fmt.Fprintln(w, "  sandsh --audit <verify|tail>    audit log operations")
	fmt.Fprintln(w, "  sandsh --serve [addr]           serve sessions over websockets")
	fmt.Fprintln(w, "  sandsh --mcp                    serve MCP tools over stdio")
	fmt.Fprintln(w, "  sandsh --help                   show this help")
	fmt.Fprintln(w, "  sandsh --version                show version")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "inside the shell, commands chain with pipes:")
	fmt.Fprintln(w, "  cat notes.txt | grep error | head 5")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "safety tiers: read, write, dangerous")
	return 0
}
