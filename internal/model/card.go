package model

// CardType classifies a payment card.
type CardType string

const (
	CardCredit CardType = "credit"
	CardDebit  CardType = "debit"
	CardCash   CardType = "cash"
)

// Card is a payment instrument. CutoffDay (1-31) is the day the
// billing cycle closes; only meaningful for credit cards.
type Card struct {
	Name      string
	Type      CardType
	CutoffDay int
}

// IsCredit reports whether the card accrues a billing cycle.
func (c Card) IsCredit() bool { return c.Type == CardCredit }
