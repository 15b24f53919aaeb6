package store

import (
	"sort"
	"strings"
	"sync"
)

type memEntry struct {
	isDir   bool
	content string
}

// MemStore is an in-memory FileStore with quota accounting. It is the
// default backend and the test double for everything above the store layer.
type MemStore struct {
	mu      sync.RWMutex
	entries map[string]*memEntry
	quota   int64
}

var _ FileStore = (*MemStore)(nil)

// NewMemStore creates an empty in-memory store. quota 0 means unlimited.
func NewMemStore(quota int64) *MemStore {
	return &MemStore{
		entries: make(map[string]*memEntry),
		quota:   quota,
	}
}

func (m *MemStore) List(prefix string) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if prefix != "" {
		e, ok := m.entries[prefix]
		if !ok {
			return nil, pathErr(prefix, ErrNotFound)
		}
		if !e.isDir {
			return nil, pathErr(prefix, ErrNotDir)
		}
	}

	var out []Entry
	for p, e := range m.entries {
		if !Under(p, prefix) {
			continue
		}
		out = append(out, Entry{Path: p, IsDir: e.isDir, Size: int64(len(e.content))})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out, nil
}

func (m *MemStore) Read(path string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.entries[path]
	if !ok {
		return "", pathErr(path, ErrNotFound)
	}
	if e.isDir {
		return "", pathErr(path, ErrIsDir)
	}
	return e.content, nil
}

func (m *MemStore) Write(path, content string) error {
	if path == "" {
		return pathErr(path, ErrIsDir)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if e, ok := m.entries[path]; ok && e.isDir {
		return pathErr(path, ErrIsDir)
	}
	if m.quota > 0 {
		used := m.usedLocked()
		if e, ok := m.entries[path]; ok {
			used -= int64(len(e.content))
		}
		if used+int64(len(content)) > m.quota {
			return pathErr(path, ErrQuota)
		}
	}
	if err := m.mkdirAllLocked(Parent(path)); err != nil {
		return err
	}
	m.entries[path] = &memEntry{content: content}
	return nil
}

func (m *MemStore) Mkdir(path string) error {
	if path == "" {
		return pathErr(path, ErrExists)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.entries[path]; ok {
		return pathErr(path, ErrExists)
	}
	if err := m.mkdirAllLocked(Parent(path)); err != nil {
		return err
	}
	m.entries[path] = &memEntry{isDir: true}
	return nil
}

// mkdirAllLocked creates path and missing parents as directories. A file in
// the way is ErrNotDir.
func (m *MemStore) mkdirAllLocked(path string) error {
	if path == "" {
		return nil
	}
	if e, ok := m.entries[path]; ok {
		if !e.isDir {
			return pathErr(path, ErrNotDir)
		}
		return nil
	}
	if err := m.mkdirAllLocked(Parent(path)); err != nil {
		return err
	}
	m.entries[path] = &memEntry{isDir: true}
	return nil
}

func (m *MemStore) DeleteFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[path]
	if !ok {
		return pathErr(path, ErrNotFound)
	}
	if e.isDir {
		return pathErr(path, ErrIsDir)
	}
	delete(m.entries, path)
	return nil
}

func (m *MemStore) DeleteDir(path string) error {
	if path == "" {
		return pathErr(path, ErrIsDir)
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[path]
	if !ok {
		return pathErr(path, ErrNotFound)
	}
	if !e.isDir {
		return pathErr(path, ErrNotDir)
	}
	for p := range m.entries {
		if Under(p, path) {
			delete(m.entries, p)
		}
	}
	delete(m.entries, path)
	return nil
}

func (m *MemStore) Copy(src, dst string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	se, ok := m.entries[src]
	if !ok {
		return pathErr(src, ErrNotFound)
	}
	if _, ok := m.entries[dst]; ok {
		return pathErr(dst, ErrExists)
	}
	if m.quota > 0 {
		added := int64(len(se.content))
		if se.isDir {
			added = 0
			for p, e := range m.entries {
				if Under(p, src) {
					added += int64(len(e.content))
				}
			}
		}
		if m.usedLocked()+added > m.quota {
			return pathErr(dst, ErrQuota)
		}
	}
	if err := m.mkdirAllLocked(Parent(dst)); err != nil {
		return err
	}

	if !se.isDir {
		m.entries[dst] = &memEntry{content: se.content}
		return nil
	}

	// Snapshot the subtree before inserting so a dst nested near src can't
	// be re-visited mid-copy.
	type child struct {
		path string
		e    memEntry
	}
	var children []child
	for p, e := range m.entries {
		if Under(p, src) {
			children = append(children, child{p, *e})
		}
	}
	m.entries[dst] = &memEntry{isDir: true}
	for _, c := range children {
		np := dst + strings.TrimPrefix(c.path, src)
		e := c.e
		m.entries[np] = &e
	}
	return nil
}

func (m *MemStore) Exists(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[path]
	return ok, nil
}

func (m *MemStore) IsDir(path string) (bool, error) {
	if path == "" {
		return true, nil
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	e, ok := m.entries[path]
	if !ok {
		return false, pathErr(path, ErrNotFound)
	}
	return e.isDir, nil
}

func (m *MemStore) Usage() (used, quota int64, err error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.usedLocked(), m.quota, nil
}

func (m *MemStore) usedLocked() int64 {
	var n int64
	for _, e := range m.entries {
		n += int64(len(e.content))
	}
	return n
}

func (m *MemStore) Clear() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string]*memEntry)
	return nil
}
