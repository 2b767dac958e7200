package billing

import (
	"github.com/financeflow-dev/financeflow/internal/model"
)

// FindConflict reports whether a parsed candidate duplicates an
// existing transaction: equal amount and the same local calendar day,
// ignoring time of day. Returns the first match, or nil. When several
// existing transactions share the amount and day, later ones are not
// considered (first-match policy).
func FindConflict(candidate model.ParsedExpense, existing []model.Transaction) *model.Transaction {
	for i := range existing {
		if existing[i].Amount.Equal(candidate.Amount) && existing[i].SameDay(candidate.Date) {
			return &existing[i]
		}
	}
	return nil
}
