// Package vault encrypts transaction amounts with a per-user AES-256-GCM
// key. The persistence boundary only ever sees the opaque blobs this
// package produces; plaintext amounts and key material never appear in
// errors or leave the device.
package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/financeflow-dev/financeflow/internal/amount"
	"github.com/financeflow-dev/financeflow/internal/keystore"
)

// ErrDecryptionFailed is returned for every Decrypt failure: malformed
// base64, truncated blob, authentication failure (tampering or wrong
// key), or a plaintext that is not a valid amount. The conditions are
// deliberately not distinguishable to callers, so ciphertext validity
// cannot be probed.
var ErrDecryptionFailed = errors.New("decryption failed")

// Engine encrypts and decrypts amounts for the persistence boundary.
type Engine struct {
	keys *keystore.Store
}

// NewEngine creates an Engine over the given key store.
func NewEngine(keys *keystore.Store) *Engine {
	return &Engine{keys: keys}
}

// Encrypt encrypts an amount under the user's key, creating the key on
// first use. Every call draws a fresh random nonce; the result is
// base64(nonce || ciphertext || tag).
func (e *Engine) Encrypt(amt decimal.Decimal, userID uuid.UUID) (string, error) {
	key, err := e.keys.GetOrCreateKey(userID)
	if err != nil {
		return "", err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, []byte(amount.Encode(amt)), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt authenticates and decrypts a blob produced by Encrypt.
func (e *Engine) Decrypt(blob string, userID uuid.UUID) (decimal.Decimal, error) {
	key, err := e.keys.GetOrCreateKey(userID)
	if err != nil {
		return decimal.Decimal{}, err
	}

	gcm, err := newGCM(key)
	if err != nil {
		return decimal.Decimal{}, err
	}

	sealed, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return decimal.Decimal{}, ErrDecryptionFailed
	}
	if len(sealed) < gcm.NonceSize() {
		return decimal.Decimal{}, ErrDecryptionFailed
	}

	nonce, ciphertext := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return decimal.Decimal{}, ErrDecryptionFailed
	}

	amt, err := amount.Decode(string(plaintext))
	if err != nil {
		return decimal.Decimal{}, ErrDecryptionFailed
	}
	return amt, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
