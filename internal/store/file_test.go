package store

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	return s
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyToken, "t1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	got, err := s.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("Get() failed: %v", err)
	}
	if got != "t1" {
		t.Errorf("Get() = %q, want %q", got, "t1")
	}

	// Overwrite replaces the previous value.
	if err := s.Set(ctx, KeyToken, "t2"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}
	got, err = s.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("Get() after overwrite failed: %v", err)
	}
	if got != "t2" {
		t.Errorf("Get() after overwrite = %q, want %q", got, "t2")
	}
}

func TestFileStoreMissingKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), "nope")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() error = %v, want ErrKeyNotFound", err)
	}
}

func TestFileStoreRemoveIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(ctx, KeyUserData, `{"id":"1"}`); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := s.Remove(ctx, KeyUserData); err != nil {
		t.Fatalf("Remove() failed: %v", err)
	}
	if err := s.Remove(ctx, KeyUserData); err != nil {
		t.Errorf("Remove() of absent key failed: %v", err)
	}
	if _, err := s.Get(ctx, KeyUserData); !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("Get() after Remove() error = %v, want ErrKeyNotFound", err)
	}
}

func TestFileStoreEncryptsAtRest(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	secret := "super-secret-bearer-token"
	if err := s.Set(context.Background(), KeyToken, secret); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	for _, entry := range entries {
		if entry.Name() == machineKeyFile {
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			t.Fatalf("ReadFile(%s) failed: %v", entry.Name(), err)
		}
		if bytes.Contains(data, []byte(secret)) {
			t.Errorf("credential file %s contains the plaintext token", entry.Name())
		}
	}
}

func TestFileStoreCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	ctx := context.Background()
	if err := s.Set(ctx, KeyToken, "t1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := os.WriteFile(s.path(KeyToken), []byte("garbage"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	_, err = s.Get(ctx, KeyToken)
	var storageErr *StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("Get() error = %v, want *StorageError", err)
	}
	if !errors.Is(err, ErrCorruptRecord) {
		t.Errorf("Get() error = %v, want wrapped ErrCorruptRecord", err)
	}
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	first, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() failed: %v", err)
	}
	if err := first.Set(ctx, KeyToken, "t1"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}

	second, err := NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore() reopen failed: %v", err)
	}
	got, err := second.Get(ctx, KeyToken)
	if err != nil {
		t.Fatalf("Get() after reopen failed: %v", err)
	}
	if got != "t1" {
		t.Errorf("Get() after reopen = %q, want %q", got, "t1")
	}
}
