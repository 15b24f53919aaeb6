package config

import (
	"fmt"

	"github.com/sandfs/sandsh/internal/store"
)

// OpenStore constructs the file store the config names. The sqlite backend
// persists across sessions; memory starts empty every time.
func (c *Config) OpenStore() (store.FileStore, error) {
	switch c.Store.Backend {
	case "", "memory":
		return store.NewMemStore(c.Store.QuotaBytes), nil
	case "sqlite":
		return store.OpenSQLite(c.Store.Path, c.Store.QuotaBytes)
	default:
		return nil, fmt.Errorf("unknown store backend: %q", c.Store.Backend)
	}
}
