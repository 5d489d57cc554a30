package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoreSetGet(t *testing.T) {
	store := NewStore(t.TempDir())

	if store.Present() {
		t.Error("empty store reports Present() = true")
	}
	if _, ok := store.Get(); ok {
		t.Error("empty store Get() reports a token")
	}

	if err := store.Set("abc-123"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	token, ok := store.Get()
	if !ok {
		t.Fatal("Get() after Set() reports no token")
	}
	if token != "abc-123" {
		t.Errorf("Get() = %q, want %q", token, "abc-123")
	}
	if !store.Present() {
		t.Error("Present() = false after Set()")
	}
}

func TestStoreSetReplaces(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.Set("first"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set("second"); err != nil {
		t.Fatal(err)
	}

	token, _ := store.Get()
	if token != "second" {
		t.Errorf("Get() = %q, want %q", token, "second")
	}
}

func TestStoreClear(t *testing.T) {
	store := NewStore(t.TempDir())

	// Clearing before any Set must not fail.
	if err := store.Clear(); err != nil {
		t.Errorf("Clear() on empty store error = %v", err)
	}

	if err := store.Set("abc"); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if store.Present() {
		t.Error("Present() = true after Clear()")
	}
}

func TestStoreFileMode(t *testing.T) {
	dir := t.TempDir()
	store := NewStore(dir)

	if err := store.Set("secret"); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(filepath.Join(dir, "token"))
	if err != nil {
		t.Fatal(err)
	}
	if got := info.Mode().Perm(); got != 0600 {
		t.Errorf("token file mode = %o, want 0600", got)
	}
}

func TestStoreTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "token"), []byte("abc\n"), 0600); err != nil {
		t.Fatal(err)
	}

	store := NewStore(dir)
	token, ok := store.Get()
	if !ok || token != "abc" {
		t.Errorf("Get() = %q, %v, want %q, true", token, ok, "abc")
	}
}
