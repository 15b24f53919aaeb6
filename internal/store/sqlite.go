package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// SQLiteStore is a persistent FileStore backed by a single SQLite table.
// One row per entry, keyed by the internal relative path.
type SQLiteStore struct {
	mu    sync.Mutex
	db    *sql.DB
	quota int64
}

var _ FileStore = (*SQLiteStore)(nil)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS entries (
	path    TEXT PRIMARY KEY,
	is_dir  INTEGER NOT NULL DEFAULT 0,
	content TEXT NOT NULL DEFAULT ''
);
`

// OpenSQLite opens (creating if needed) a store at the given file path.
// quota 0 means unlimited.
func OpenSQLite(path string, quota int64) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("create store dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("init store schema: %w", err)
	}
	return &SQLiteStore{db: db, quota: quota}, nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) lookup(path string) (isDir bool, content string, err error) {
	row := s.db.QueryRow(`SELECT is_dir, content FROM entries WHERE path = ?`, path)
	var d int
	if err := row.Scan(&d, &content); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, "", pathErr(path, ErrNotFound)
		}
		return false, "", err
	}
	return d != 0, content, nil
}

func (s *SQLiteStore) List(prefix string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if prefix != "" {
		isDir, _, err := s.lookup(prefix)
		if err != nil {
			return nil, err
		}
		if !isDir {
			return nil, pathErr(prefix, ErrNotDir)
		}
	}

	query := `SELECT path, is_dir, length(content) FROM entries ORDER BY path`
	args := []any{}
	if prefix != "" {
		query = `SELECT path, is_dir, length(content) FROM entries WHERE path LIKE ? ESCAPE '\' ORDER BY path`
		args = append(args, likePrefix(prefix)+"/%")
	}
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var e Entry
		var d int
		if err := rows.Scan(&e.Path, &d, &e.Size); err != nil {
			return nil, err
		}
		e.IsDir = d != 0
		if e.IsDir {
			e.Size = 0
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// likePrefix escapes LIKE metacharacters in a path prefix.
func likePrefix(p string) string {
	p = strings.ReplaceAll(p, `\`, `\\`)
	p = strings.ReplaceAll(p, `%`, `\%`)
	return strings.ReplaceAll(p, `_`, `\_`)
}

func (s *SQLiteStore) Read(path string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	isDir, content, err := s.lookup(path)
	if err != nil {
		return "", err
	}
	if isDir {
		return "", pathErr(path, ErrIsDir)
	}
	return content, nil
}

func (s *SQLiteStore) Write(path, content string) error {
	if path == "" {
		return pathErr(path, ErrIsDir)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	prevLen := int64(0)
	if isDir, prev, err := s.lookup(path); err == nil {
		if isDir {
			return pathErr(path, ErrIsDir)
		}
		prevLen = int64(len(prev))
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}

	if s.quota > 0 {
		used, err := s.usedLocked()
		if err != nil {
			return err
		}
		if used-prevLen+int64(len(content)) > s.quota {
			return pathErr(path, ErrQuota)
		}
	}

	if err := s.mkdirAllLocked(Parent(path)); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO entries (path, is_dir, content) VALUES (?, 0, ?)
		 ON CONFLICT(path) DO UPDATE SET content = excluded.content`,
		path, content)
	return err
}

func (s *SQLiteStore) Mkdir(path string) error {
	if path == "" {
		return pathErr(path, ErrExists)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, _, err := s.lookup(path); err == nil {
		return pathErr(path, ErrExists)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := s.mkdirAllLocked(Parent(path)); err != nil {
		return err
	}
	_, err := s.db.Exec(`INSERT INTO entries (path, is_dir) VALUES (?, 1)`, path)
	return err
}

func (s *SQLiteStore) mkdirAllLocked(path string) error {
	if path == "" {
		return nil
	}
	isDir, _, err := s.lookup(path)
	if err == nil {
		if !isDir {
			return pathErr(path, ErrNotDir)
		}
		return nil
	}
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	if err := s.mkdirAllLocked(Parent(path)); err != nil {
		return err
	}
	_, err = s.db.Exec(`INSERT INTO entries (path, is_dir) VALUES (?, 1)`, path)
	return err
}

func (s *SQLiteStore) DeleteFile(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	isDir, _, err := s.lookup(path)
	if err != nil {
		return err
	}
	if isDir {
		return pathErr(path, ErrIsDir)
	}
	_, err = s.db.Exec(`DELETE FROM entries WHERE path = ?`, path)
	return err
}

func (s *SQLiteStore) DeleteDir(path string) error {
	if path == "" {
		return pathErr(path, ErrIsDir)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	isDir, _, err := s.lookup(path)
	if err != nil {
		return err
	}
	if !isDir {
		return pathErr(path, ErrNotDir)
	}
	_, err = s.db.Exec(
		`DELETE FROM entries WHERE path = ? OR path LIKE ? ESCAPE '\'`,
		path, likePrefix(path)+"/%")
	return err
}

func (s *SQLiteStore) Copy(src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	srcDir, content, err := s.lookup(src)
	if err != nil {
		return err
	}
	if _, _, err := s.lookup(dst); err == nil {
		return pathErr(dst, ErrExists)
	} else if !errors.Is(err, ErrNotFound) {
		return err
	}
	if s.quota > 0 {
		used, err := s.usedLocked()
		if err != nil {
			return err
		}
		added := int64(len(content))
		if srcDir {
			row := s.db.QueryRow(
				`SELECT COALESCE(SUM(length(content)), 0) FROM entries
				 WHERE is_dir = 0 AND path LIKE ? ESCAPE '\'`,
				likePrefix(src)+"/%")
			if err := row.Scan(&added); err != nil {
				return err
			}
		}
		if used+added > s.quota {
			return pathErr(dst, ErrQuota)
		}
	}
	if err := s.mkdirAllLocked(Parent(dst)); err != nil {
		return err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if !srcDir {
		if _, err := tx.Exec(`INSERT INTO entries (path, is_dir, content) VALUES (?, 0, ?)`, dst, content); err != nil {
			return err
		}
		return tx.Commit()
	}

	if _, err := tx.Exec(`INSERT INTO entries (path, is_dir) VALUES (?, 1)`, dst); err != nil {
		return err
	}
	if _, err := tx.Exec(
		`INSERT INTO entries (path, is_dir, content)
		 SELECT ? || substr(path, ?), is_dir, content FROM entries
		 WHERE path LIKE ? ESCAPE '\'`,
		dst, len(src)+1, likePrefix(src)+"/%"); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Exists(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _, err := s.lookup(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	return false, err
}

func (s *SQLiteStore) IsDir(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	isDir, _, err := s.lookup(path)
	return isDir, err
}

func (s *SQLiteStore) Usage() (used, quota int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	used, err = s.usedLocked()
	return used, s.quota, err
}

func (s *SQLiteStore) usedLocked() (int64, error) {
	row := s.db.QueryRow(`SELECT COALESCE(SUM(length(content)), 0) FROM entries WHERE is_dir = 0`)
	var n int64
	err := row.Scan(&n)
	return n, err
}

func (s *SQLiteStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`DELETE FROM entries`)
	return err
}
