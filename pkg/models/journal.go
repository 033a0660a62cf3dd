package models

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// TransactionType classifies what kind of business event an entry records.
type TransactionType string

const (
	TypeExpense  TransactionType = "expense"
	TypePayment  TransactionType = "payment"
	TypeReceipt  TransactionType = "receipt"
	TypePurchase TransactionType = "purchase"
	TypeSale     TransactionType = "sale"
)

// JournalLine is one leg of a double-entry journal entry.
type JournalLine struct {
	AccountID   string          `json:"accountId"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Description string          `json:"description,omitempty"`
}

// IsValid reports whether the line can count toward an entry: it must
// reference an account and carry exactly one of debit or credit.
func (l *JournalLine) IsValid() bool {
	if l.AccountID == "" {
		return false
	}
	return l.Debit.IsPositive() != l.Credit.IsPositive()
}

// IsEmpty reports whether both sides of the line are zero.
func (l *JournalLine) IsEmpty() bool {
	return l.Debit.IsZero() && l.Credit.IsZero()
}

// JournalEntryDraft is the in-progress entry being composed. Line order is
// preserved for display and posting but carries no other meaning.
type JournalEntryDraft struct {
	Date        string        `json:"date"`
	Reference   string        `json:"reference"`
	Description string        `json:"description"`
	Lines       []JournalLine `json:"lines"`
}

// TotalDebit sums the debit side of every line.
func (d *JournalEntryDraft) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of every line.
func (d *JournalEntryDraft) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range d.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// Difference returns TotalDebit - TotalCredit.
func (d *JournalEntryDraft) Difference() decimal.Decimal {
	return d.TotalDebit().Sub(d.TotalCredit())
}

// ValidLineCount counts the lines that satisfy JournalLine.IsValid.
func (d *JournalEntryDraft) ValidLineCount() int {
	n := 0
	for i := range d.Lines {
		if d.Lines[i].IsValid() {
			n++
		}
	}
	return n
}

// DisplayAmount renders a decimal amount as USD for terminal output.
func DisplayAmount(d decimal.Decimal) string {
	cents := d.Shift(2).Round(0).IntPart()
	return money.New(cents, money.USD).Display()
}
