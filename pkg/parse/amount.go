// Package parse derives form-field candidates from free-text transaction
// descriptions. Everything here is a pure function over the input text so
// callers can re-run it to tell an auto-filled value from a manual edit.
package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const number = `([0-9][0-9,]*(?:\.[0-9]+)?)`

// amountPatterns are tried in order; the first family with a match wins and
// its first match is taken.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$\s*` + number),
	regexp.MustCompile(`(?i)` + number + `\s*dollars?\b`),
	regexp.MustCompile(`(?i)` + number + `\s*usd\b`),
	regexp.MustCompile(`(?i)amount:?\s*` + number),
	regexp.MustCompile(`(?i)paid\s+` + number),
	regexp.MustCompile(`(?i)received\s+` + number),
}

// ExtractAmount scans text for a monetary amount. A candidate is accepted
// only if it parses to a value strictly greater than zero; otherwise the
// scan falls through to the next pattern family.
func ExtractAmount(text string) (decimal.Decimal, bool) {
	for _, re := range amountPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		raw := strings.ReplaceAll(m[1], ",", "")
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			continue
		}
		if amount.IsPositive() {
			return amount, true
		}
	}
	return decimal.Decimal{}, false
}
