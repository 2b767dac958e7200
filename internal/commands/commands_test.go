package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/financeflow-dev/financeflow/internal/config"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(""))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func initProject(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	userID := uuid.New().String()
	_, err := run(t, "init", dir, "--user", userID)
	require.NoError(t, err)
	return dir, userID
}

func TestInit_CreatesConfig(t *testing.T) {
	dir, userID := initProject(t)

	cfg, err := config.Load(filepath.Join(dir, ConfigFileName))
	require.NoError(t, err)
	assert.Equal(t, userID, cfg.User.ID)
	assert.Equal(t, "keys.db", cfg.Keystore.Path)

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "keys.db")
}

func TestInit_RefusesExisting(t *testing.T) {
	dir, _ := initProject(t)
	_, err := run(t, "init", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestInit_InvalidUser(t *testing.T) {
	_, err := run(t, "init", t.TempDir(), "--user", "not-a-uuid")
	require.Error(t, err)
}

func TestParseEmail(t *testing.T) {
	out, err := run(t, "parse", "email", "Pagaste en: RAPPI La cantidad de: $686.896,00")
	require.NoError(t, err)

	assert.Contains(t, out, "amount: 686896.00")
	assert.Contains(t, out, "note:   RAPPI")
	assert.Contains(t, out, "type:   expense")
}

func TestParseEmail_UnsupportedBank(t *testing.T) {
	_, err := run(t, "parse", "email", "--bank", "bancolombia", "whatever")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not yet supported")
}

func TestParseEmail_NotRecognized(t *testing.T) {
	out, err := run(t, "parse", "email", "nothing useful here")
	require.NoError(t, err)
	assert.Contains(t, out, "format not recognized")
}

func TestParseClip(t *testing.T) {
	out, err := run(t, "parse", "clip", "Realizaste transaccion en RAPPI COLOMBIA*DL por 49,600 el 2026/02/07 19:13:48")
	require.NoError(t, err)

	assert.Contains(t, out, "amount: 49600")
	assert.Contains(t, out, "note:   RAPPI COLOMBIA*DL")
	assert.Contains(t, out, "date:   2026-02-07 19:13:48")
	assert.Contains(t, out, "type:   expense")
}

func TestAddAndList(t *testing.T) {
	dir, _ := initProject(t)

	out, err := run(t, "add", "--dir", dir, "--amount", "100.50", "--note", "Mercado", "--card", "Visa")
	require.NoError(t, err)
	assert.Contains(t, out, "Recorded")

	out, err = run(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "100.50")
	assert.Contains(t, out, "Mercado")
	assert.Contains(t, out, "Visa")
}

func TestAdd_RejectsNonPositive(t *testing.T) {
	dir, _ := initProject(t)
	_, err := run(t, "add", "--dir", dir, "--amount", "-5")
	require.Error(t, err)
}

func TestImportEmail_ThenDuplicateSkipped(t *testing.T) {
	dir, _ := initProject(t)
	snippet := "Pagaste en: RAPPI La cantidad de: $686.896,00"

	out, err := run(t, "import", "email", "--dir", dir, "--timestamp", "1770491628000", snippet)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")

	// Same amount, same calendar day: conflict.
	out, err = run(t, "import", "email", "--dir", dir, "--timestamp", "1770491629000", snippet)
	require.NoError(t, err)
	assert.Contains(t, out, "Skipped")

	out, err = run(t, "list", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(out, "RAPPI"))
}

func TestImportClip(t *testing.T) {
	dir, _ := initProject(t)

	out, err := run(t, "import", "clip", "--dir", dir, "--card", "Visa",
		"Realizaste transaccion en RAPPI COLOMBIA*DL por 49,600 el 2026/02/07 19:13:48")
	require.NoError(t, err)
	assert.Contains(t, out, "Imported")
}

func TestPeriod(t *testing.T) {
	dir, _ := initProject(t)

	cfgPath := filepath.Join(dir, ConfigFileName)
	cfg, err := config.Load(cfgPath)
	require.NoError(t, err)
	cfg.Cards = []config.CardConfig{{Name: "Visa", Type: "credit", CutoffDay: 15}}
	require.NoError(t, config.Save(cfgPath, cfg))

	out, err := run(t, "period", "--dir", dir, "--card", "Visa")
	require.NoError(t, err)
	assert.Contains(t, out, "cutoff day 15")
	assert.Contains(t, out, "Balance:")
}

func TestPeriod_UnknownCard(t *testing.T) {
	dir, _ := initProject(t)
	_, err := run(t, "period", "--dir", dir, "--card", "Nope")
	require.Error(t, err)
}
