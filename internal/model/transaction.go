package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money leaving from money arriving.
type TransactionType string

const (
	TypeExpense TransactionType = "expense"
	TypeIncome  TransactionType = "income"
)

// Transaction is a persisted transaction as seen by this library.
// Amount is only populated after decryption; at the persistence
// boundary the amount travels solely as EncryptedAmount.
type Transaction struct {
	ID              uuid.UUID
	EncryptedAmount string // opaque base64 blob, see vault
	Amount          decimal.Decimal
	Note            string
	Date            time.Time
	Type            TransactionType
	Card            string
	SourceID        string // originating message id, if imported
}

// SameDay reports whether the transaction occurred on the given
// calendar day, ignoring time of day. Both sides are compared on the
// device-local day boundary.
func (t Transaction) SameDay(other time.Time) bool {
	y1, m1, d1 := t.Date.Local().Date()
	y2, m2, d2 := other.Local().Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
