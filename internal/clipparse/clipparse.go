// Package clipparse extracts a transaction from free text pasted off
// the clipboard, typically a bank SMS or push notification
// ("Realizaste transaccion en RAPPI COLOMBIA*DL por 49,600 el
// 2026/02/07 19:13:48"). Parsing is deterministic and best effort: a
// nil result means the text was not recognized.
package clipparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/financeflow-dev/financeflow/internal/model"
	"github.com/financeflow-dev/financeflow/internal/numfmt"
)

var (
	amountPattern = regexp.MustCompile(`(?i)por\s+([0-9][0-9.,\s]*[0-9])`)
	// Merchant candidates, tried in order; first match wins.
	merchantPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:transaccion|transacción)\s+en\s+(.+?)\s+por\s+`),
		regexp.MustCompile(`(?i)en\s+(.+?)\s+por\s+`),
	}
	dateTimePattern = regexp.MustCompile(`(\d{4})[/-](\d{2})[/-](\d{2})\s+(\d{1,2}):(\d{2})(?::(\d{2}))?`)
	dateOnlyPattern = regexp.MustCompile(`(\d{2})[/-](\d{2})[/-](\d{4})`)

	incomeKeywords = []string{"recibiste", "ingreso", "abono"}
)

// Parse extracts a transaction from pasted text, or nil when the text
// is not recognized as a bank message.
func Parse(text string) *model.ParsedExpense {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	m := amountPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return nil
	}
	amt, err := decimal.NewFromString(numfmt.NormalizeClipboard(m[1]))
	if err != nil || !amt.IsPositive() {
		return nil
	}

	date, ok := extractDate(trimmed)
	if !ok {
		date = time.Now()
	}

	return &model.ParsedExpense{
		Amount: amt,
		Note:   extractNote(trimmed),
		Date:   date,
		Type:   inferType(trimmed),
	}
}

func extractNote(text string) string {
	for _, p := range merchantPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// extractDate tries "YYYY-MM-DD HH:MM[:SS]" then "DD-MM-YYYY", with
// '/' accepted in place of '-'. A match with out-of-range calendar
// components is discarded rather than normalized into a different day.
func extractDate(text string) (time.Time, bool) {
	if m := dateTimePattern.FindStringSubmatch(text); m != nil {
		year, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		day, _ := strconv.Atoi(m[3])
		hour, _ := strconv.Atoi(m[4])
		minute, _ := strconv.Atoi(m[5])
		sec := 0
		if m[6] != "" {
			sec, _ = strconv.Atoi(m[6])
		}
		if validDate(year, month, day) && hour < 24 && minute < 60 && sec < 60 {
			return time.Date(year, time.Month(month), day, hour, minute, sec, 0, time.Local), true
		}
	}

	if m := dateOnlyPattern.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if validDate(year, month, day) {
			return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local), true
		}
	}

	return time.Time{}, false
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	// Last day of the month: day 0 of the next one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
	return day <= last
}

func inferType(text string) model.TransactionType {
	lower := strings.ToLower(text)
	for _, kw := range incomeKeywords {
		if strings.Contains(lower, kw) {
			return model.TypeIncome
		}
	}
	return model.TypeExpense
}
