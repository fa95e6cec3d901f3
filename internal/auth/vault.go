// internal/auth/vault.go
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Vault persists the session envelope across process restarts. The
// durable layout is a single key holding {"user": <session>}; nothing
// else survives a restart. Read returns (nil, nil) when no session is
// stored.
type Vault interface {
	Read() (*Session, error)
	Write(session *Session) error
	Clear() error
}

type envelope struct {
	User *Session `json:"user"`
}

// FileVault keeps the envelope in one JSON file on disk.
type FileVault struct {
	path string
}

func NewFileVault(path string) *FileVault {
	return &FileVault{path: path}
}

func (v *FileVault) Read() (*Session, error) {
	data, err := os.ReadFile(v.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read session envelope: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode session envelope: %w", err)
	}
	return env.User, nil
}

func (v *FileVault) Write(session *Session) error {
	data, err := json.Marshal(envelope{User: session})
	if err != nil {
		return fmt.Errorf("encode session envelope: %w", err)
	}

	if dir := filepath.Dir(v.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create vault directory: %w", err)
		}
	}
	if err := os.WriteFile(v.path, data, 0o600); err != nil {
		return fmt.Errorf("write session envelope: %w", err)
	}
	return nil
}

func (v *FileVault) Clear() error {
	if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove session envelope: %w", err)
	}
	return nil
}

// MemoryVault holds the envelope in memory. Used by tests and by
// callers that do not want sessions to survive a restart.
type MemoryVault struct {
	mu      sync.Mutex
	session *Session
}

func NewMemoryVault() *MemoryVault { return &MemoryVault{} }

func (v *MemoryVault) Read() (*Session, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.session, nil
}

func (v *MemoryVault) Write(session *Session) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.session = session
	return nil
}

func (v *MemoryVault) Clear() error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.session = nil
	return nil
}
