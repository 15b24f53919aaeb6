package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sandfs/sandsh/internal/audit"
	"github.com/sandfs/sandsh/internal/cli"
	"github.com/sandfs/sandsh/internal/config"
	"github.com/sandfs/sandsh/internal/session"
	"github.com/sandfs/sandsh/internal/verb"
	"github.com/sandfs/sandsh/internal/verb/builtin"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	// Load config.
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandsh: config: %v\n", err)
		return 1
	}

	// Set up registry.
	reg := verb.NewRegistry()
	builtin.RegisterAll(reg)
	cfg.ApplyTiers(reg)
	if err := cfg.ApplyRules(reg); err != nil {
		fmt.Fprintf(os.Stderr, "sandsh: config: %v\n", err)
		return 1
	}

	// Fast paths that need no store or audit state.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			return cli.RunHelp(os.Stdout)
		case "--version":
			fmt.Printf("sandsh %s\n", version)
			return 0
		case "--list":
			tierFilter := ""
			args := os.Args[2:]
			for i := 0; i < len(args); i++ {
				if args[i] == "--tier" && i+1 < len(args) {
					tierFilter = args[i+1]
					i++
				}
			}
			return cli.RunList(reg, os.Stdout, tierFilter)
		case "--audit":
			return cli.RunAudit(os.Stdout, cfg.Audit.Path, os.Args[2:])
		}
	}

	// Open the store.
	st, err := cfg.OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandsh: store: %v\n", err)
		return 1
	}
	if c, ok := st.(io.Closer); ok {
		defer c.Close()
	}

	// Set up the audit logger.
	logger, err := audit.NewLogger(cfg.Audit.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sandsh: audit: %v\n", err)
		// Continue without audit logging.
		logger = nil
	}
	var opts []session.Option
	if logger != nil {
		opts = append(opts, session.WithAudit(logger))
	}

	// Cancel on interrupt.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if len(os.Args) < 2 {
		sess := session.New(st, reg, opts...)
		return cli.RunInteractive(ctx, sess, cfg.Prompt, cfg.HistoryLimit)
	}

	switch os.Args[1] {
	case "-c":
		if len(os.Args) < 3 {
			fmt.Fprintln(os.Stderr, "sandsh: -c requires a command line")
			return 1
		}
		sess := session.New(st, reg, opts...)
		return cli.RunLine(ctx, sess, os.Args[2], os.Stdout, os.Stderr)
	case "--serve":
		addr := cfg.Serve.Addr
		if len(os.Args) > 2 {
			addr = os.Args[2]
		}
		return cli.RunServe(ctx, st, reg, addr, opts...)
	case "--mcp":
		sess := session.New(st, reg, opts...)
		return cli.RunMCP(sess, version)
	default:
		fmt.Fprintf(os.Stderr, "sandsh: unknown option %q\n", os.Args[1])
		cli.RunHelp(os.Stderr)
		return 1
	}
}
