package exports

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ocr-backend/internal/shared/util"
)

func TestStoreSaveAndPath(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	name, err := store.Save("docx", []byte("PKdata"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasSuffix(name, ".docx") {
		t.Fatalf("unexpected name: %q", name)
	}
	if strings.ContainsAny(name, "/\\") {
		t.Fatalf("name must be a bare filename: %q", name)
	}

	path, err := store.Path(name)
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "PKdata" {
		t.Fatalf("unexpected contents: %q", data)
	}
}

func TestStoreSaveUniqueNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		name, err := store.Save("pdf", []byte("x"))
		if err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
		if seen[name] {
			t.Fatalf("duplicate filename %q", name)
		}
		seen[name] = true
	}
}

func TestStorePathRejectsUnsafeNames(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	for _, name := range []string{"", ".", "..", "../x", "a/b.docx", `a\b.docx`, "..secret.."} {
		if _, err := store.Path(name); !errors.Is(err, util.ErrInvalidFileName) {
			t.Fatalf("%q: expected ErrInvalidFileName, got %v", name, err)
		}
	}
}

func TestStorePathMissingFile(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Path("missing.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJanitorSweep(t *testing.T) {
	dir := t.TempDir()

	old := filepath.Join(dir, "old.docx")
	fresh := filepath.Join(dir, "fresh.docx")
	for _, p := range []string{old, fresh} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(old, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	j := NewJanitor(24*time.Hour, time.Hour, dir)
	if removed := j.Sweep(time.Now()); removed != 1 {
		t.Fatalf("expected 1 removal, got %d", removed)
	}

	if _, err := os.Stat(old); !os.IsNotExist(err) {
		t.Fatalf("expected old file removed, stat err: %v", err)
	}
	if _, err := os.Stat(fresh); err != nil {
		t.Fatalf("fresh file should survive: %v", err)
	}
}

func TestJanitorZeroTTLDisablesSweep(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "keep.pdf")
	if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	stale := time.Now().Add(-1000 * time.Hour)
	if err := os.Chtimes(p, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	j := NewJanitor(0, time.Hour, dir)
	if removed := j.Sweep(time.Now()); removed != 0 {
		t.Fatalf("expected no removals, got %d", removed)
	}
	if _, err := os.Stat(p); err != nil {
		t.Fatalf("file should survive: %v", err)
	}
}

func TestJanitorSkipsSubdirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "images")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stale := time.Now().Add(-48 * time.Hour)
	if err := os.Chtimes(sub, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	j := NewJanitor(24*time.Hour, time.Hour, dir)
	if removed := j.Sweep(time.Now()); removed != 0 {
		t.Fatalf("expected no removals, got %d", removed)
	}
	if _, err := os.Stat(sub); err != nil {
		t.Fatalf("subdirectory should survive: %v", err)
	}
}
