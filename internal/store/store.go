// Package store defines the sandboxed hierarchical file store the shell
// operates on, plus the concrete backends (in-memory and SQLite).
package store

import (
	"errors"
	"fmt"
)

// Sentinel errors surfaced by store operations. Handlers report them
// verbatim; callers can test them with errors.Is.
var (
	ErrNotFound = errors.New("no such file or directory")
	ErrExists   = errors.New("already exists")
	ErrNotDir   = errors.New("not a directory")
	ErrIsDir    = errors.New("is a directory")
	ErrQuota    = errors.New("storage quota exceeded")
)

// Entry describes one stored object.
type Entry struct {
	Path  string // forward-slash relative path, no leading slash
	IsDir bool
	Size  int64 // content bytes; 0 for directories
}

// FileStore is the abstract storage collaborator. Paths are forward-slash
// relative strings with no leading slash; "" names the root directory, which
// always exists. There is no Move primitive: the mv handler composes Copy
// and Delete so it can own the rollback contract.
type FileStore interface {
	// List returns every entry under prefix (recursively), sorted by path.
	// Listing the root ("") returns everything. The prefix entry itself is
	// not included.
	List(prefix string) ([]Entry, error)

	Read(path string) (string, error)
	// Write creates or overwrites a file, creating missing parent
	// directories.
	Write(path, content string) error
	// Mkdir creates a directory and any missing parents. Creating an
	// existing directory is an error (ErrExists).
	Mkdir(path string) error

	DeleteFile(path string) error
	// DeleteDir removes a directory and everything under it.
	DeleteDir(path string) error
	// Copy duplicates a file, or a directory tree recursively.
	Copy(src, dst string) error

	Exists(path string) (bool, error)
	IsDir(path string) (bool, error)

	// Usage reports used content bytes and the configured quota
	// (0 = unlimited).
	Usage() (used, quota int64, err error)
	// Clear removes every entry.
	Clear() error
}

func pathErr(path string, err error) error {
	if path == "" {
		path = "/"
	}
	return fmt.Errorf("%s: %w", path, err)
}
