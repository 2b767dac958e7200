package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/financeflow-dev/financeflow/internal/model"
	"github.com/financeflow-dev/financeflow/internal/vault"
)

// FileName is the ledger file within the data directory.
const FileName = "transactions.csv"

// Service appends and reads transactions, encrypting amounts on the
// way in and decrypting on the way out.
type Service struct {
	dataDir string
	vault   *vault.Engine
}

// NewService creates a ledger Service rooted at dataDir.
func NewService(dataDir string, engine *vault.Engine) *Service {
	return &Service{dataDir: dataDir, vault: engine}
}

func (s *Service) path() string {
	return filepath.Join(s.dataDir, FileName)
}

// Append encrypts the parsed expense's amount for userID and appends
// the resulting transaction to the ledger, creating the file (with
// header) on first write. Returns the stored transaction with the
// plaintext amount still populated for the caller's immediate use.
func (s *Service) Append(userID uuid.UUID, p model.ParsedExpense, card string) (model.Transaction, error) {
	blob, err := s.vault.Encrypt(p.Amount, userID)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("encrypting amount: %w", err)
	}

	txType := p.Type
	if txType == "" {
		txType = model.TypeExpense
	}

	tx := model.Transaction{
		ID:              uuid.New(),
		EncryptedAmount: blob,
		Amount:          p.Amount,
		Note:            p.Note,
		Date:            p.Date,
		Type:            txType,
		Card:            card,
		SourceID:        p.SourceID,
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return model.Transaction{}, fmt.Errorf("creating data dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(s.path()); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(s.path(), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	if isNew {
		if err := WriteTransactions(f, []model.Transaction{tx}); err != nil {
			return model.Transaction{}, err
		}
		return tx, nil
	}

	if err := AppendTransactions(f, []model.Transaction{tx}); err != nil {
		return model.Transaction{}, err
	}
	return tx, nil
}

// ReadAll reads the ledger and decrypts every amount under userID's
// key. A missing ledger file reads as empty.
func (s *Service) ReadAll(userID uuid.UUID) ([]model.Transaction, error) {
	f, err := os.Open(s.path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening ledger: %w", err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f)
	if err != nil {
		return nil, err
	}

	for i := range txns {
		amt, err := s.vault.Decrypt(txns[i].EncryptedAmount, userID)
		if err != nil {
			return nil, fmt.Errorf("transaction %s: %w", txns[i].ID, err)
		}
		txns[i].Amount = amt
	}
	return txns, nil
}
