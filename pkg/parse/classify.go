package parse

import (
	"strings"

	"github.com/urutiq/ledger-draft/pkg/models"
)

// Keyword groups for transaction-type classification, evaluated in the order
// laid out in Classify. First matching rule wins.
var (
	paymentWords = []string{
		"paid", "payment", "pay", "expense", "spent", "cost", "bill", "invoice",
	}
	expenseCategoryWords = []string{
		"rent", "utilities", "salary", "wage", "office", "supplies", "equipment",
		"maintenance", "insurance", "legal", "consulting", "advertising",
		"travel", "fuel", "repair",
	}
	receiptWords = []string{
		"received", "receipt", "income", "revenue", "earned", "collect",
		"deposit", "refund",
	}
	purchaseWords = []string{
		"purchase", "bought", "buy", "acquired", "order", "procurement",
	}
	saleWords = []string{
		"sale", "sold", "sell", "revenue", "invoice", "billing",
	}
	inboundHints  = []string{"from", "received", "income", "revenue"}
	outboundHints = []string{"to", "paid", "expense", "cost"}
)

// ClassifyTransactionType maps free text to one of the five transaction
// types. Total: every input, including the empty string, yields a label,
// defaulting to expense.
func ClassifyTransactionType(text string) models.TransactionType {
	t := strings.ToLower(text)
	switch {
	case containsAny(t, paymentWords):
		if containsAny(t, expenseCategoryWords) {
			return models.TypeExpense
		}
		return models.TypePayment
	case containsAny(t, receiptWords):
		return models.TypeReceipt
	case containsAny(t, purchaseWords):
		return models.TypePurchase
	case containsAny(t, saleWords):
		return models.TypeSale
	case containsAny(t, inboundHints):
		return models.TypeReceipt
	case containsAny(t, outboundHints):
		return models.TypeExpense
	default:
		return models.TypeExpense
	}
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
