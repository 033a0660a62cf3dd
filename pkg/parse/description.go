package parse

import (
	"regexp"
	"strings"
)

var (
	allLetters = regexp.MustCompile(`(?i)^[a-z]+$`)
	allDigits  = regexp.MustCompile(`^[0-9]+$`)

	// Throwaway strings users type to get past required fields.
	placeholderBlocklist = []string{"test", "abc", "nnn", "zzz", "xxx"}

	// A description must mention at least one of these to be considered a
	// real transaction description.
	accountingVocabulary = []string{
		"paid", "received", "purchase", "sale", "rent", "salary", "expense",
		"income", "revenue", "cost", "fee", "service", "product", "invoice",
		"bill", "payment", "cash", "check", "transfer", "deposit",
		"withdrawal", "refund", "discount", "supplies", "utilities",
	}
)

// IsValidDescription reports whether text is a usable transaction
// description. Used as a submission gate, not as a parsing step.
func IsValidDescription(text string) bool {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < 3 {
		return false
	}
	if allLetters.MatchString(trimmed) || allDigits.MatchString(trimmed) {
		return false
	}
	if sameRuneRepeated(trimmed) {
		return false
	}
	lower := strings.ToLower(trimmed)
	for _, placeholder := range placeholderBlocklist {
		if lower == placeholder {
			return false
		}
	}
	return containsAny(lower, accountingVocabulary)
}

// sameRuneRepeated reports whether text is a single character repeated three
// or more times ("aaa", "!!!!"). Backreferences are unavailable in RE2, so
// this is checked directly.
func sameRuneRepeated(text string) bool {
	runes := []rune(text)
	if len(runes) < 3 {
		return false
	}
	for _, r := range runes[1:] {
		if r != runes[0] {
			return false
		}
	}
	return true
}
