package store

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const machineKeyFile = "machine.key"

// FileStore persists each key as an encrypted file under a directory. The
// encryption key is derived from a random per-install machine key created on
// first use, so credential files are opaque if copied off the machine alone.
type FileStore struct {
	dir        string
	machineKey []byte
}

// NewFileStore opens (or initializes) a FileStore rooted at dir.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, &StorageError{Op: "init", Key: "", Err: err}
	}
	machineKey, err := loadOrCreateMachineKey(filepath.Join(dir, machineKeyFile))
	if err != nil {
		return nil, &StorageError{Op: "init", Key: machineKeyFile, Err: err}
	}
	return &FileStore{dir: dir, machineKey: machineKey}, nil
}

// loadOrCreateMachineKey reads the machine key file, creating it with fresh
// random material when absent.
func loadOrCreateMachineKey(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		key, decErr := hex.DecodeString(strings.TrimSpace(string(data)))
		if decErr != nil || len(key) == 0 {
			return nil, fmt.Errorf("unreadable machine key at %s", path)
		}
		return key, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	key, err := generateRandomBytes(32)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(path, []byte(hex.EncodeToString(key)), 0o600); err != nil {
		return nil, err
	}
	return key, nil
}

// path maps a key to its file. Keys are hex-encoded so arbitrary key names
// cannot escape the store directory.
func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, hex.EncodeToString([]byte(key))+".cred")
}

// Get returns the decrypted value for key.
func (s *FileStore) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &StorageError{Op: "get", Key: key, Err: err}
	}
	record, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrKeyNotFound
		}
		return "", &StorageError{Op: "get", Key: key, Err: err}
	}
	plaintext, err := open(s.machineKey, record)
	if err != nil {
		return "", &StorageError{Op: "get", Key: key, Err: err}
	}
	return string(plaintext), nil
}

// Set writes the encrypted value for key. The write goes through a temp file
// and rename so a single record is never observed half-written.
func (s *FileStore) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	record, err := seal(s.machineKey, []byte(value))
	if err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	tmp, err := os.CreateTemp(s.dir, ".cred-*")
	if err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	if _, err := tmp.Write(record); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		os.Remove(tmp.Name())
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}

// Remove deletes the key. Removing an absent key succeeds.
func (s *FileStore) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return &StorageError{Op: "remove", Key: key, Err: err}
	}
	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "remove", Key: key, Err: err}
	}
	return nil
}
