package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AiForm is the ephemeral state of the natural-language entry path. The two
// auto-detected flags record whether Amount/TransactionType were derived by
// the parser; once the user diverges manually the flags are cleared and
// later description edits leave the field alone.
type AiForm struct {
	Description     string          `json:"description"`
	Amount          string          `json:"amount"`
	Category        string          `json:"category,omitempty"`
	Vendor          string          `json:"vendor,omitempty"`
	Customer        string          `json:"customer,omitempty"`
	TransactionType TransactionType `json:"transactionType,omitempty"`

	IsAutoDetected                bool `json:"isAutoDetected"`
	IsTransactionTypeAutoDetected bool `json:"isTransactionTypeAutoDetected"`
}

// CreatedLine is one leg of an entry as returned by the backend. The server
// reports the account either nested or flattened depending on the endpoint.
type CreatedLine struct {
	Account *struct {
		Name string `json:"name"`
	} `json:"account,omitempty"`
	AccountName string          `json:"accountName,omitempty"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
}

// DisplayName returns the account name regardless of response shape.
func (l *CreatedLine) DisplayName() string {
	if l.Account != nil && l.Account.Name != "" {
		return l.Account.Name
	}
	return l.AccountName
}

// CreatedEntry is a journal entry as returned by the backend after creation.
type CreatedEntry struct {
	ID          string        `json:"id"`
	Reference   string        `json:"reference"`
	Description string        `json:"description,omitempty"`
	Date        string        `json:"date,omitempty"`
	Status      string        `json:"status,omitempty"`
	Lines       []CreatedLine `json:"lines"`
}

// PrintFormatted prints the entry in a formatted way.
func (e *CreatedEntry) PrintFormatted() {
	fmt.Printf("Journal Entry %s\n", e.Reference)
	if e.ID != "" && e.ID != e.Reference {
		fmt.Printf("	ID: %s\n", e.ID)
	}
	if e.Date != "" {
		fmt.Printf("	Date: %s\n", e.Date)
	}
	if e.Description != "" {
		fmt.Printf("	Description: %s\n", e.Description)
	}
	if e.Status != "" {
		fmt.Printf("	Status: %s\n", e.Status)
	}
	for _, line := range e.Lines {
		side := "Dr"
		amount := line.Debit
		if line.Credit.IsPositive() {
			side = "Cr"
			amount = line.Credit
		}
		fmt.Printf("	%s %-30s %s\n", side, line.DisplayName(), DisplayAmount(amount))
	}
}
