// Package amount converts monetary values to and from the canonical
// textual form used as encryption plaintext. The form is locale
// independent: fixed point, '.' as the decimal mark, no grouping
// separators, so Decode(Encode(x)) == x for every amount the system
// produces.
package amount

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrInvalidFormat is returned by Decode for input that is not a
// decimal literal.
var ErrInvalidFormat = errors.New("invalid amount format")

// Encode renders an amount in canonical form, e.g. "686896.00".
func Encode(d decimal.Decimal) string {
	return d.String()
}

// Decode parses the canonical form back to an exact decimal.
func Decode(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return d, nil
}
