// Package draft holds the double-entry rules applied to an in-progress
// journal entry before it may be submitted: submission validation,
// auto-balancing, and reconciliation of parser-derived form fields with
// manual edits.
package draft

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/parse"
)

// BalanceTolerance absorbs rounding drift when comparing debit and credit
// totals.
var BalanceTolerance = decimal.NewFromFloat(0.01)

// DefaultAmountCeiling is the sanity limit above which an AI-path amount is
// rejected for manual verification.
var DefaultAmountCeiling = decimal.NewFromInt(1_000_000)

// Violation describes a single reason an entry may not be submitted.
type Violation struct {
	Field   string
	Message string
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

// Messages flattens violations into user-facing strings.
func Messages(violations []Violation) []string {
	out := make([]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, v.String())
	}
	return out
}

// IsBalanced reports whether debits equal credits within tolerance.
func IsBalanced(d *models.JournalEntryDraft) bool {
	return d.Difference().Abs().LessThanOrEqual(BalanceTolerance)
}

// ValidateManual checks a manually composed draft. Every check is evaluated
// so the caller can report all problems at once; the draft is never mutated.
func ValidateManual(d *models.JournalEntryDraft) []Violation {
	var violations []Violation

	if d.Date == "" {
		violations = append(violations, Violation{"date", "entry date is required"})
	}
	if d.Reference == "" {
		violations = append(violations, Violation{"reference", "reference is required"})
	}
	if d.Description == "" {
		violations = append(violations, Violation{"description", "description is required"})
	}

	if d.ValidLineCount() < 2 {
		violations = append(violations, Violation{
			"lines", "journal entry needs at least 2 valid entries (account plus exactly one of debit or credit)",
		})
	}

	if !IsBalanced(d) {
		violations = append(violations, Violation{
			"balance", fmt.Sprintf("debits (%s) must equal credits (%s)",
				d.TotalDebit().StringFixed(2), d.TotalCredit().StringFixed(2)),
		})
	}

	return violations
}

// ValidateAI checks the natural-language entry form. The amount may come
// from the field itself or be derived from the description; it must resolve
// to a positive value no greater than ceiling.
func ValidateAI(form *models.AiForm, ceiling decimal.Decimal) []Violation {
	var violations []Violation

	if form.Description == "" {
		violations = append(violations, Violation{"description", "description is required"})
	} else if !parse.IsValidDescription(form.Description) {
		violations = append(violations, Violation{
			"description", "description is too vague; describe the transaction (e.g. \"Paid $500 rent\")",
		})
	}

	amount, ok := ResolveAmount(form)
	switch {
	case !ok:
		violations = append(violations, Violation{
			"amount", "enter an amount or include one in the description",
		})
	case amount.GreaterThan(ceiling):
		violations = append(violations, Violation{
			"amount", fmt.Sprintf("amount %s is unusually high, please verify", amount.StringFixed(2)),
		})
	}

	return violations
}

// ResolveAmount returns the usable amount for the AI form: the explicitly
// entered value when present, otherwise whatever the description parses to.
// ok is false when neither yields a positive number.
func ResolveAmount(form *models.AiForm) (decimal.Decimal, bool) {
	if form.Amount != "" {
		amount, err := decimal.NewFromString(form.Amount)
		if err != nil || !amount.IsPositive() {
			return decimal.Decimal{}, false
		}
		return amount, true
	}
	return parse.ExtractAmount(form.Description)
}
