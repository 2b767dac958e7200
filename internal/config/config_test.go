package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-dev/financeflow/internal/model"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default(uuid.New().String())
	cfg.Cards = []CardConfig{
		{Name: "Visa Principal", Type: "credit", CutoffDay: 15},
		{Name: "Efectivo", Type: "cash"},
	}

	path := filepath.Join(t.TempDir(), "financeflow.yaml")
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.User.ID, got.User.ID)
	assert.Equal(t, cfg.Keystore.Path, got.Keystore.Path)
	assert.Equal(t, cfg.Currency, got.Currency)
	require.Len(t, got.Cards, 2)
	assert.Equal(t, "Visa Principal", got.Cards[0].Name)
	assert.Equal(t, 15, got.Cards[0].CutoffDay)
	assert.Equal(t, 0, got.Cards[1].CutoffDay)
}

func TestDefaults(t *testing.T) {
	id := uuid.New().String()
	cfg := Default(id)

	assert.Equal(t, id, cfg.User.ID)
	assert.Equal(t, "keys.db", cfg.Keystore.Path)
	assert.Equal(t, "COP", cfg.Currency)
	assert.Empty(t, cfg.Cards)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFindCard(t *testing.T) {
	cfg := Default(uuid.New().String())
	cfg.Cards = []CardConfig{{Name: "Visa", Type: "credit", CutoffDay: 15}}

	card, ok := cfg.FindCard("Visa")
	require.True(t, ok)
	assert.Equal(t, model.CardCredit, card.Card().Type)
	assert.True(t, card.Card().IsCredit())

	_, ok = cfg.FindCard("Mastercard")
	assert.False(t, ok)
}
