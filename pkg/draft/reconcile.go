package draft

import (
	"github.com/shopspring/decimal"

	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/parse"
)

// ApplyDescription records a new description on the form and re-derives the
// amount and transaction type from it, but only while the user has not
// manually diverged from an auto-filled value. A field is overwritten when
// it is empty, when it still equals what the previous description parsed
// to, or when its auto-detected flag is set.
func ApplyDescription(form *models.AiForm, text string) {
	previous := form.Description
	form.Description = text

	if amount, ok := parse.ExtractAmount(text); ok && amountOverwritable(form, previous) {
		form.Amount = amount.String()
		form.IsAutoDetected = true
	}

	if typeOverwritable(form, previous) {
		form.TransactionType = parse.ClassifyTransactionType(text)
		form.IsTransactionTypeAutoDetected = true
	}
}

// SetAmount records a manual amount edit. The auto-detected flag survives
// only if the typed value happens to equal the parser's output for the
// current description; otherwise it is cleared and later description edits
// leave the amount alone.
func SetAmount(form *models.AiForm, value string) {
	form.Amount = value
	parsed, ok := parse.ExtractAmount(form.Description)
	form.IsAutoDetected = ok && amountEquals(value, parsed)
}

// SetTransactionType records a manual transaction-type edit, clearing the
// auto-detected flag when it diverges from the classifier.
func SetTransactionType(form *models.AiForm, t models.TransactionType) {
	form.TransactionType = t
	form.IsTransactionTypeAutoDetected = t == parse.ClassifyTransactionType(form.Description)
}

func amountOverwritable(form *models.AiForm, previousText string) bool {
	if form.Amount == "" || amountEquals(form.Amount, decimal.Zero) {
		return true
	}
	if form.IsAutoDetected {
		return true
	}
	if prev, ok := parse.ExtractAmount(previousText); ok && amountEquals(form.Amount, prev) {
		return true
	}
	return false
}

func typeOverwritable(form *models.AiForm, previousText string) bool {
	if form.TransactionType == "" || form.IsTransactionTypeAutoDetected {
		return true
	}
	return form.TransactionType == parse.ClassifyTransactionType(previousText)
}

func amountEquals(field string, amount decimal.Decimal) bool {
	v, err := decimal.NewFromString(field)
	return err == nil && v.Equal(amount)
}
