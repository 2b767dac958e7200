package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ParsedExpense is the result of running one bank snippet or clipboard
// message through a parser. Immutable once produced; the caller turns
// it into a Transaction before persisting.
type ParsedExpense struct {
	Amount   decimal.Decimal
	Note     string
	Date     time.Time
	SourceID string
	Type     TransactionType
}
