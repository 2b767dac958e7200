// Package numfmt normalizes amounts written with Colombian-style
// punctuation ("686.896,00", "49,600") into canonical decimal strings
// ("686896.00", "49600"). The disambiguation rules form a closed
// policy table shared by the bank and clipboard parsers; the two
// variants differ only in how a lone separator is classified.
package numfmt

import "strings"

// NormalizeBank normalizes an amount from a bank notification email.
//
// Policy:
//   - spaces are stripped first
//   - both '.' and ',' present: the last-occurring mark is the decimal
//     separator, the other is grouping and is stripped
//   - a single mark kind is a decimal separator only when it occurs
//     once and is followed by exactly two digits; otherwise it is a
//     grouping separator and is stripped
func NormalizeBank(s string) string {
	s = stripSpaces(s)
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		return normalizeMixed(s)
	case hasComma:
		if isDecimalMark(s, ',') {
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case hasDot:
		if isDecimalMark(s, '.') {
			return s
		}
		return strings.ReplaceAll(s, ".", "")
	default:
		return s
	}
}

// NormalizeClipboard normalizes an amount from pasted SMS text.
//
// Simplified policy: a lone ',' is always a grouping separator; a lone
// '.' is decimal only with exactly two trailing digits. Mixed
// punctuation resolves by position as in NormalizeBank.
func NormalizeClipboard(s string) string {
	s = stripSpaces(s)
	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		return normalizeMixed(s)
	case hasComma:
		return strings.ReplaceAll(s, ",", "")
	case hasDot:
		if isDecimalMark(s, '.') {
			return s
		}
		return strings.ReplaceAll(s, ".", "")
	default:
		return s
	}
}

// normalizeMixed handles amounts containing both marks: the one that
// occurs last is the decimal separator.
func normalizeMixed(s string) string {
	if strings.LastIndex(s, ",") > strings.LastIndex(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
		return strings.Replace(s, ",", ".", 1)
	}
	return strings.ReplaceAll(s, ",", "")
}

// isDecimalMark reports whether mark occurs exactly once in s and is
// followed by exactly two digits.
func isDecimalMark(s string, mark byte) bool {
	if strings.Count(s, string(mark)) != 1 {
		return false
	}
	frac := s[strings.IndexByte(s, mark)+1:]
	if len(frac) != 2 {
		return false
	}
	return frac[0] >= '0' && frac[0] <= '9' && frac[1] >= '0' && frac[1] <= '9'
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
