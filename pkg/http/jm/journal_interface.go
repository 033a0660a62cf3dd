package jm

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/urutiq/ledger-draft/pkg/models"
)

// EntryContext is the metadata sent alongside an AI-composed entry so the
// backend can audit how the amount and classification were obtained.
type EntryContext struct {
	Category            string                 `json:"category,omitempty"`
	Vendor              string                 `json:"vendor,omitempty"`
	Customer            string                 `json:"customer,omitempty"`
	TransactionType     models.TransactionType `json:"transactionType,omitempty"`
	AutoExtractedAmount bool                   `json:"autoExtractedAmount"`
	DescriptionLength   int                    `json:"descriptionLength"`
	ProcessingLevel     string                 `json:"processingLevel,omitempty"`
	ValidationPassed    bool                   `json:"validationPassed"`
	SessionID           string                 `json:"sessionId,omitempty"`
}

// EnhancedCreateRequest is the body of the AI-assisted create call. The two
// suggestion fields are only present on the "create with selected accounts"
// path; the plain path omits them entirely.
type EnhancedCreateRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CompanyID   string          `json:"companyId"`
	Context     EntryContext    `json:"context"`

	SelectedAccountSuggestions []models.AccountSuggestion `json:"selectedAccountSuggestions,omitempty"`
	UseSelectedSuggestions     bool                       `json:"useSelectedSuggestions,omitempty"`
}

// SuggestionRequest is the body of the account-suggestions call.
type SuggestionRequest struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	CompanyID   string          `json:"companyId"`
	Context     EntryContext    `json:"context"`
}

// JournalClientInterface defines the operations of the enhanced journal
// management backend used by this client.
type JournalClientInterface interface {
	CreateEnhanced(ctx context.Context, req EnhancedCreateRequest) (*models.CreatedEntry, error)
	FetchAccountSuggestions(ctx context.Context, req SuggestionRequest) ([]models.AccountSuggestion, error)
	CreateManual(ctx context.Context, draft *models.JournalEntryDraft) (*models.CreatedEntry, error)
	PostEntry(ctx context.Context, entryID, postedBy string) error
	VoidEntry(ctx context.Context, entryID, voidedBy, reason string) error
	ListEntries(ctx context.Context) ([]models.CreatedEntry, error)
	LedgerBalances(ctx context.Context) ([]models.LedgerBalance, error)
	Anomalies(ctx context.Context) ([]models.Anomaly, error)
	Stats(ctx context.Context) (*models.JournalStats, error)
	ListAccounts(ctx context.Context) ([]models.Account, error)
	CreateAccount(ctx context.Context, account models.Account) error
	CreateAccountType(ctx context.Context, accountType models.AccountType) error
}

// Ensure MockJournalClient implements JournalClientInterface
var _ JournalClientInterface = (*MockJournalClient)(nil)
