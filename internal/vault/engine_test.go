package vault

import (
	"encoding/base64"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-dev/financeflow/internal/keystore"
)

func newTestEngine() *Engine {
	return NewEngine(keystore.NewStore(keystore.NewMemoryStorage()))
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	engine := newTestEngine()
	user := uuid.New()

	for _, s := range []string{"0", "100.50", "686896.00", "-42", "0.01", "12345678901234567890.123456789"} {
		amt := decimal.RequireFromString(s)

		blob, err := engine.Encrypt(amt, user)
		require.NoError(t, err)

		got, err := engine.Decrypt(blob, user)
		require.NoError(t, err)
		assert.True(t, amt.Equal(got), "expected %s, got %s", amt, got)
	}
}

func TestEncryptFreshNoncePerCall(t *testing.T) {
	engine := newTestEngine()
	user := uuid.New()
	amt := decimal.RequireFromString("100.50")

	first, err := engine.Encrypt(amt, user)
	require.NoError(t, err)
	second, err := engine.Encrypt(amt, user)
	require.NoError(t, err)

	// Same plaintext, same key: the blobs must still differ.
	assert.NotEqual(t, first, second)
}

func TestDecryptTamperedBlob(t *testing.T) {
	engine := newTestEngine()
	user := uuid.New()

	blob, err := engine.Encrypt(decimal.RequireFromString("686896.00"), user)
	require.NoError(t, err)

	raw, err := base64.StdEncoding.DecodeString(blob)
	require.NoError(t, err)

	// Flipping any single byte must fail authentication.
	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, err := engine.Decrypt(base64.StdEncoding.EncodeToString(tampered), user)
		assert.ErrorIs(t, err, ErrDecryptionFailed, "byte %d", i)
	}
}

func TestDecryptCrossUser(t *testing.T) {
	engine := newTestEngine()
	userA := uuid.New()
	userB := uuid.New()

	blob, err := engine.Encrypt(decimal.RequireFromString("49600"), userA)
	require.NoError(t, err)

	_, err = engine.Decrypt(blob, userB)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestDecryptMalformed(t *testing.T) {
	engine := newTestEngine()
	user := uuid.New()

	for _, blob := range []string{
		"",
		"not base64!!!",
		base64.StdEncoding.EncodeToString([]byte("short")),
	} {
		_, err := engine.Decrypt(blob, user)
		assert.ErrorIs(t, err, ErrDecryptionFailed, "blob %q", blob)
	}
}

func TestDecryptErrorCarriesNoDetail(t *testing.T) {
	engine := newTestEngine()
	user := uuid.New()

	blob, err := engine.Encrypt(decimal.RequireFromString("100.50"), user)
	require.NoError(t, err)

	_, badBase64 := engine.Decrypt("%%%", user)
	_, wrongKey := engine.Decrypt(blob, uuid.New())

	// Identical message for every failure mode.
	require.Error(t, badBase64)
	require.Error(t, wrongKey)
	assert.Equal(t, badBase64.Error(), wrongKey.Error())
}

func TestDecryptAfterKeyDeletion(t *testing.T) {
	storage := keystore.NewMemoryStorage()
	keys := keystore.NewStore(storage)
	engine := NewEngine(keys)
	user := uuid.New()

	blob, err := engine.Encrypt(decimal.RequireFromString("100.50"), user)
	require.NoError(t, err)

	require.NoError(t, keys.DeleteKey(user))

	// A new key is created lazily; the old blob is unreadable.
	_, err = engine.Decrypt(blob, user)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}
