package models

import "github.com/shopspring/decimal"

// Account is one entry in the chart of accounts owned by the backend.
type Account struct {
	ID          string `json:"id,omitempty"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// AccountType groups accounts in the chart (asset, liability, ...).
type AccountType struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AccountSuggestion is a server-proposed account for a free-text transaction.
type AccountSuggestion struct {
	AccountID         string  `json:"accountId,omitempty"`
	AccountCode       string  `json:"accountCode"`
	AccountName       string  `json:"accountName"`
	Confidence        float64 `json:"confidence"`
	Reasoning         string  `json:"reasoning,omitempty"`
	SuggestedCategory string  `json:"suggestedCategory,omitempty"`
}

// LedgerBalance is the backend's running balance for one account.
type LedgerBalance struct {
	AccountID   string          `json:"accountId"`
	AccountCode string          `json:"accountCode"`
	AccountName string          `json:"accountName"`
	Debit       decimal.Decimal `json:"debit"`
	Credit      decimal.Decimal `json:"credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// Anomaly is a backend-detected irregularity in the ledger.
type Anomaly struct {
	EntryID     string `json:"entryId"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
}

// JournalStats is the backend's aggregate view of the journal.
type JournalStats struct {
	TotalEntries int             `json:"totalEntries"`
	PostedCount  int             `json:"postedCount"`
	DraftCount   int             `json:"draftCount"`
	TotalDebit   decimal.Decimal `json:"totalDebit"`
	TotalCredit  decimal.Decimal `json:"totalCredit"`
}
