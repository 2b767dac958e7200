// Package bankparse extracts transactions from bank notification
// email snippets. Parsers are registered per bank; asking for a bank
// without an implementation is an explicit error, never a silent no-op.
package bankparse

import (
	"errors"
	"fmt"

	"github.com/financeflow-dev/financeflow/internal/model"
)

// Bank identifies a supported (or recognized) bank.
type Bank string

const (
	Nubank      Bank = "nubank"
	Bancolombia Bank = "bancolombia"
	Davivienda  Bank = "davivienda"
)

// KnownBanks lists every bank the registry recognizes, implemented or
// not.
var KnownBanks = []Bank{Nubank, Bancolombia, Davivienda}

// ErrUnsupportedBank is returned when no parser is implemented for the
// requested bank.
var ErrUnsupportedBank = errors.New("bank not yet supported")

// Parser extracts a transaction from one email snippet. A nil result
// means the snippet was not recognized; that is an expected outcome,
// not an error.
type Parser interface {
	Bank() Bank
	Parse(snippet, timestampHintMs, messageID string) *model.ParsedExpense
}

// Registry holds per-bank parsers.
type Registry struct {
	parsers map[Bank]Parser
}

// NewRegistry creates an empty parser registry.
func NewRegistry() *Registry {
	return &Registry{parsers: make(map[Bank]Parser)}
}

// Register adds a parser. Panics on duplicate bank.
func (r *Registry) Register(p Parser) {
	if _, ok := r.parsers[p.Bank()]; ok {
		panic("duplicate bank parser: " + string(p.Bank()))
	}
	r.parsers[p.Bank()] = p
}

// For returns the parser for bank, or ErrUnsupportedBank.
func (r *Registry) For(bank Bank) (Parser, error) {
	p, ok := r.parsers[bank]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedBank, bank)
	}
	return p, nil
}

// DefaultRegistry returns a registry with all built-in parsers.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&NubankParser{})
	return r
}
