package bankparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflow-dev/financeflow/internal/model"
	"github.com/financeflow-dev/financeflow/internal/numfmt"
)

// NubankParser parses Nu account payment notifications.
// Snippet shape: "Pagaste en: [MERCHANT] La cantidad de: $686.896,00".
type NubankParser struct{}

var (
	nubankMerchantPattern = regexp.MustCompile(`(?i)Pagaste en:\s*(.+?)\s+La cantidad de:`)
	nubankAmountPattern   = regexp.MustCompile(`(?i)La cantidad de:\s*\$?([0-9][0-9.,\s]*[0-9])`)
)

// Bank returns the bank this parser handles.
func (p *NubankParser) Bank() Bank { return Nubank }

// Parse extracts a ParsedExpense from one snippet. The amount anchor
// is mandatory; the merchant anchor is optional and its absence yields
// an empty note. Unrecognized or non-positive amounts yield nil.
func (p *NubankParser) Parse(snippet, timestampHintMs, messageID string) *model.ParsedExpense {
	m := nubankAmountPattern.FindStringSubmatch(snippet)
	if m == nil {
		return nil
	}

	amt, err := decimal.NewFromString(numfmt.NormalizeBank(m[1]))
	if err != nil || !amt.IsPositive() {
		return nil
	}

	note := ""
	if mm := nubankMerchantPattern.FindStringSubmatch(snippet); mm != nil {
		note = strings.TrimSpace(mm[1])
	}

	return &model.ParsedExpense{
		Amount:   amt,
		Note:     note,
		Date:     resolveDate(timestampHintMs),
		SourceID: messageID,
		Type:     model.TypeExpense,
	}
}

// resolveDate converts a millisecond epoch hint to a time, falling
// back to the current time when the hint is absent or unparseable.
func resolveDate(timestampHintMs string) time.Time {
	ms, err := strconv.ParseInt(timestampHintMs, 10, 64)
	if err != nil {
		return time.Now()
	}
	return time.UnixMilli(ms)
}
