package store

import (
	"errors"
	"path/filepath"
	"testing"
)

func openTestSQLite(t *testing.T, quota int64) *SQLiteStore {
	t.Helper()
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "fs.db"), quota)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteRoundTrip(t *testing.T) {
	s := openTestSQLite(t, 0)

	if err := s.Write("docs/notes.txt", "hello"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Read("docs/notes.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "hello" {
		t.Errorf("expected 'hello', got %q", got)
	}

	if isDir, err := s.IsDir("docs"); err != nil || !isDir {
		t.Errorf("expected docs dir, got %v, %v", isDir, err)
	}
	if _, err := s.Read("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSQLiteListAndDelete(t *testing.T) {
	s := openTestSQLite(t, 0)
	for _, p := range []string{"a/x.txt", "a/sub/y.txt", "b.txt"} {
		if err := s.Write(p, "data"); err != nil {
			t.Fatal(err)
		}
	}

	all, err := s.List("")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"a", "a/sub", "a/sub/y.txt", "a/x.txt", "b.txt"}
	if len(all) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(all))
	}
	for i, e := range all {
		if e.Path != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], e.Path)
		}
	}

	if err := s.DeleteDir("a"); err != nil {
		t.Fatal(err)
	}
	if ok, _ := s.Exists("a/sub/y.txt"); ok {
		t.Error("subtree should be gone")
	}
	if ok, _ := s.Exists("b.txt"); !ok {
		t.Error("sibling should survive")
	}
}

func TestSQLiteCopyTree(t *testing.T) {
	s := openTestSQLite(t, 0)
	s.Write("src/a.txt", "A")
	s.Write("src/sub/b.txt", "B")

	if err := s.Copy("src", "dst"); err != nil {
		t.Fatal(err)
	}
	got, err := s.Read("dst/sub/b.txt")
	if err != nil {
		t.Fatal(err)
	}
	if got != "B" {
		t.Errorf("expected 'B', got %q", got)
	}
	if err := s.Copy("src", "dst"); !errors.Is(err, ErrExists) {
		t.Errorf("expected ErrExists, got %v", err)
	}
}

func TestSQLiteQuota(t *testing.T) {
	s := openTestSQLite(t, 4)
	if err := s.Write("a.txt", "1234"); err != nil {
		t.Fatal(err)
	}
	if err := s.Write("b.txt", "5"); !errors.Is(err, ErrQuota) {
		t.Errorf("expected ErrQuota, got %v", err)
	}
	used, quota, err := s.Usage()
	if err != nil {
		t.Fatal(err)
	}
	if used != 4 || quota != 4 {
		t.Errorf("expected 4/4, got %d/%d", used, quota)
	}
}

func TestSQLiteCopyRespectsQuota(t *testing.T) {
	s := openTestSQLite(t, 10)
	if err := s.Write("a.txt", "1234567"); err != nil {
		t.Fatal(err)
	}
	if err := s.Copy("a.txt", "b.txt"); !errors.Is(err, ErrQuota) {
		t.Errorf("expected ErrQuota, got %v", err)
	}
	if ok, _ := s.Exists("b.txt"); ok {
		t.Error("refused copy must not leave a target behind")
	}

	// Directory copies count the whole subtree.
	s.Clear()
	s.Write("src/a.txt", "123456")
	if err := s.Copy("src", "dst"); !errors.Is(err, ErrQuota) {
		t.Errorf("expected ErrQuota for tree copy, got %v", err)
	}

	s.Clear()
	s.Write("small.txt", "1234")
	if err := s.Copy("small.txt", "copy.txt"); err != nil {
		t.Errorf("copy within quota failed: %v", err)
	}
}
