package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sandfs/sandsh/internal/remote"
	"github.com/sandfs/sandsh/internal/session"
	"github.com/sandfs/sandsh/internal/store"
	"github.com/sandfs/sandsh/internal/verb"
)

// RunServe serves websocket sessions until interrupted.
func RunServe(ctx context.Context, st store.FileStore, reg *verb.Registry, addr string, opts ...session.Option) int {
	fmt.Fprintf(os.Stderr, "sandsh: serving sessions on ws://%s/session\n", addr)
	srv := remote.NewServer(st, reg, opts...)
	err := remote.ListenAndServe(ctx, addr, srv)
	if err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "sandsh: serve: %v\n", err)
		return 1
	}
	return 0
}
