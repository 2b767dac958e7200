package keystore

import (
	"crypto/rand"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// Service namespaces this library's entries within the secure storage.
const Service = "com.financeflow.transaction_encryption"

// KeySize is the symmetric key length in bytes (AES-256).
const KeySize = 32

// Store hands out one symmetric key per user, creating it on first
// use. Creation is serialized per user so concurrent first requests
// agree on a single key instead of orphaning data encrypted under a
// discarded one.
type Store struct {
	storage SecureStorage

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store on the given storage backend.
func NewStore(storage SecureStorage) *Store {
	return &Store{storage: storage, locks: make(map[string]*sync.Mutex)}
}

// GetOrCreateKey returns the user's key, generating and persisting a
// fresh random 256-bit key on first use.
func (s *Store) GetOrCreateKey(userID uuid.UUID) ([]byte, error) {
	account := userID.String()
	lock := s.accountLock(account)
	lock.Lock()
	defer lock.Unlock()

	key, err := s.storage.Get(Service, account)
	if err == nil {
		return validateKey(key)
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, &StoreError{Op: "get", Err: err}
	}

	key = make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return nil, &StoreError{Op: "generate", Err: err}
	}

	if err := s.storage.Set(Service, account, key); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			// Lost a cross-process race. The stored key wins.
			stored, err := s.storage.Get(Service, account)
			if err != nil {
				return nil, &StoreError{Op: "get", Err: err}
			}
			return validateKey(stored)
		}
		return nil, &StoreError{Op: "set", Err: err}
	}
	return key, nil
}

// DeleteKey removes the user's key. A later GetOrCreateKey creates a
// new, unrelated key; anything encrypted under the old one becomes
// unreadable. Used on sign-out so a shared device never carries the
// previous user's key forward.
func (s *Store) DeleteKey(userID uuid.UUID) error {
	account := userID.String()
	lock := s.accountLock(account)
	lock.Lock()
	defer lock.Unlock()

	if err := s.storage.Delete(Service, account); err != nil {
		return &StoreError{Op: "delete", Err: err}
	}
	return nil
}

func (s *Store) accountLock(account string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[account]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[account] = lock
	}
	return lock
}

func validateKey(key []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, &StoreError{
			Op:  "get",
			Err: fmt.Errorf("stored key is %d bytes, want %d", len(key), KeySize),
		}
	}
	return key, nil
}
