package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// StoreError represents a failure to persist or remove the token file.
type StoreError struct {
	Path    string
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("session store %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("session store %s: %s", e.Path, e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// FileStore keeps the token in a small JSON document on disk, the CLI counterpart
// of browser local storage. The file is only ever written with mode 0600.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// DefaultPath returns the token file location under the user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config directory: %w", err)
	}
	return filepath.Join(dir, "careercore", "session.json"), nil
}

// NewFileStore returns a FileStore backed by path. The file need not exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file location.
func (f *FileStore) Path() string {
	return f.path
}

// Token reads the stored token. Missing or unreadable files yield "".
func (f *FileStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		return ""
	}
	return values[TokenKey]
}

func (f *FileStore) SetToken(token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if err != nil {
		values = map[string]string{}
	}
	values[TokenKey] = token
	return f.write(values)
}

func (f *FileStore) ClearToken() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	values, err := f.read()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		// Unreadable content holds no usable token; reset it.
		return f.write(map[string]string{})
	}
	if _, ok := values[TokenKey]; !ok {
		return nil
	}
	delete(values, TokenKey)
	return f.write(values)
}

func (f *FileStore) read() (map[string]string, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, err
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, err
	}
	return values, nil
}

func (f *FileStore) write(values map[string]string) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0700); err != nil {
		return &StoreError{Path: f.path, Message: "failed to create directory", Cause: err}
	}

	data, err := json.Marshal(values)
	if err != nil {
		return &StoreError{Path: f.path, Message: "failed to encode", Cause: err}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return &StoreError{Path: f.path, Message: "failed to write", Cause: err}
	}
	if err := os.Rename(tmp, f.path); err != nil {
		_ = os.Remove(tmp)
		return &StoreError{Path: f.path, Message: "failed to replace", Cause: err}
	}
	return nil
}
