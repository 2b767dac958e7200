// Package keystore manages per-user symmetric encryption keys on top
// of a pluggable secure-storage backend. Keys are created lazily,
// never leave the device, and there is at most one key per user at
// any time.
package keystore

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNotFound is returned by SecureStorage.Get when no value is stored
// under the given service/account pair.
var ErrNotFound = errors.New("key not found")

// ErrAlreadyExists is returned by SecureStorage.Set when a value is
// already stored. Set never overwrites; this is the create-if-absent
// primitive the Store builds on.
var ErrAlreadyExists = errors.New("key already exists")

// StoreError wraps a secure-storage failure with the operation that
// caused it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("keystore %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// SecureStorage is the device secure-storage boundary (OS keychain,
// encrypted database, etc.).
type SecureStorage interface {
	// Get returns the stored value, or ErrNotFound.
	Get(service, account string) ([]byte, error)
	// Set stores value only if absent; ErrAlreadyExists otherwise.
	Set(service, account string, value []byte) error
	// Delete removes the value. Deleting an absent value is not an error.
	Delete(service, account string) error
}

// MemoryStorage is an in-process SecureStorage, used in tests and as
// an embedding target.
type MemoryStorage struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemoryStorage creates an empty MemoryStorage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: make(map[string][]byte)}
}

func storageKey(service, account string) string {
	return service + "\x00" + account
}

// Get returns the stored value, or ErrNotFound.
func (m *MemoryStorage) Get(service, account string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[storageKey(service, account)]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set stores value if absent.
func (m *MemoryStorage) Set(service, account string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := storageKey(service, account)
	if _, ok := m.values[k]; ok {
		return ErrAlreadyExists
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	m.values[k] = stored
	return nil
}

// Delete removes the value if present.
func (m *MemoryStorage) Delete(service, account string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, storageKey(service, account))
	return nil
}
