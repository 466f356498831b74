package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorage_Upload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8000/")
	if err != nil {
		t.Fatalf("NewLocalStorage error: %v", err)
	}

	url, err := store.Upload(context.Background(), "abc123.jpg", strings.NewReader("image bytes"))
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if url != "http://localhost:8000/uploads/abc123.jpg" {
		t.Fatalf("unexpected URL: %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "abc123.jpg"))
	if err != nil {
		t.Fatalf("stored file missing: %v", err)
	}
	if string(data) != "image bytes" {
		t.Fatalf("stored content mismatch: %q", data)
	}
}

func TestLocalStorage_StripsPathComponents(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := NewLocalStorage(dir, "http://localhost:8000")
	if err != nil {
		t.Fatalf("NewLocalStorage error: %v", err)
	}

	url, err := store.Upload(context.Background(), "../escape.jpg", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if url != "http://localhost:8000/uploads/escape.jpg" {
		t.Fatalf("unexpected URL: %q", url)
	}

	if _, err := os.Stat(filepath.Join(dir, "escape.jpg")); err != nil {
		t.Fatalf("file not written inside the upload dir: %v", err)
	}
}

func TestLocalStorage_CreatesDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewLocalStorage(dir, "http://localhost:8000"); err != nil {
		t.Fatalf("NewLocalStorage error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("upload dir not created: %v", err)
	}
	if !info.IsDir() {
		t.Fatal("upload path is not a directory")
	}
}
