package jm

import (
	"context"

	"github.com/urutiq/ledger-draft/pkg/models"
)

// MockJournalClient is a mock implementation of the journal backend for
// testing. Call counters let tests assert an endpoint was never reached.
type MockJournalClient struct {
	// Mock data to return
	CreatedEntry *models.CreatedEntry
	Suggestions  []models.AccountSuggestion
	Entries      []models.CreatedEntry
	Balances     []models.LedgerBalance
	AnomalyList  []models.Anomaly
	StatsData    *models.JournalStats
	Accounts     []models.Account

	// Error values to return
	CreateEnhancedErr    error
	FetchSuggestionsErr  error
	CreateManualErr      error
	PostEntryErr         error
	VoidEntryErr         error
	ListEntriesErr       error
	LedgerBalancesErr    error
	AnomaliesErr         error
	StatsErr             error
	ListAccountsErr      error
	CreateAccountErr     error
	CreateAccountTypeErr error

	// Recorded calls
	CreateEnhancedCalls   []EnhancedCreateRequest
	FetchSuggestionsCalls []SuggestionRequest
	CreateManualCalls     []*models.JournalEntryDraft
	PostedEntries         []string
	VoidedEntries         []string
	CreatedAccounts       []models.Account
	CreatedAccountTypes   []models.AccountType
}

// NewMockJournalClient creates a new mock journal client
func NewMockJournalClient() *MockJournalClient {
	return &MockJournalClient{
		CreatedEntry: &models.CreatedEntry{ID: "je-1", Reference: "JE-0001"},
	}
}

func (m *MockJournalClient) CreateEnhanced(ctx context.Context, req EnhancedCreateRequest) (*models.CreatedEntry, error) {
	m.CreateEnhancedCalls = append(m.CreateEnhancedCalls, req)
	if m.CreateEnhancedErr != nil {
		return nil, m.CreateEnhancedErr
	}
	return m.CreatedEntry, nil
}

func (m *MockJournalClient) FetchAccountSuggestions(ctx context.Context, req SuggestionRequest) ([]models.AccountSuggestion, error) {
	m.FetchSuggestionsCalls = append(m.FetchSuggestionsCalls, req)
	if m.FetchSuggestionsErr != nil {
		return nil, m.FetchSuggestionsErr
	}
	return m.Suggestions, nil
}

func (m *MockJournalClient) CreateManual(ctx context.Context, draft *models.JournalEntryDraft) (*models.CreatedEntry, error) {
	m.CreateManualCalls = append(m.CreateManualCalls, draft)
	if m.CreateManualErr != nil {
		return nil, m.CreateManualErr
	}
	return m.CreatedEntry, nil
}

func (m *MockJournalClient) PostEntry(ctx context.Context, entryID, postedBy string) error {
	if m.PostEntryErr != nil {
		return m.PostEntryErr
	}
	m.PostedEntries = append(m.PostedEntries, entryID)
	return nil
}

func (m *MockJournalClient) VoidEntry(ctx context.Context, entryID, voidedBy, reason string) error {
	if m.VoidEntryErr != nil {
		return m.VoidEntryErr
	}
	m.VoidedEntries = append(m.VoidedEntries, entryID)
	return nil
}

func (m *MockJournalClient) ListEntries(ctx context.Context) ([]models.CreatedEntry, error) {
	if m.ListEntriesErr != nil {
		return nil, m.ListEntriesErr
	}
	return m.Entries, nil
}

func (m *MockJournalClient) LedgerBalances(ctx context.Context) ([]models.LedgerBalance, error) {
	if m.LedgerBalancesErr != nil {
		return nil, m.LedgerBalancesErr
	}
	return m.Balances, nil
}

func (m *MockJournalClient) Anomalies(ctx context.Context) ([]models.Anomaly, error) {
	if m.AnomaliesErr != nil {
		return nil, m.AnomaliesErr
	}
	return m.AnomalyList, nil
}

func (m *MockJournalClient) Stats(ctx context.Context) (*models.JournalStats, error) {
	if m.StatsErr != nil {
		return nil, m.StatsErr
	}
	return m.StatsData, nil
}

func (m *MockJournalClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	if m.ListAccountsErr != nil {
		return nil, m.ListAccountsErr
	}
	return m.Accounts, nil
}

func (m *MockJournalClient) CreateAccount(ctx context.Context, account models.Account) error {
	if m.CreateAccountErr != nil {
		return m.CreateAccountErr
	}
	m.CreatedAccounts = append(m.CreatedAccounts, account)
	return nil
}

func (m *MockJournalClient) CreateAccountType(ctx context.Context, accountType models.AccountType) error {
	if m.CreateAccountTypeErr != nil {
		return m.CreateAccountTypeErr
	}
	m.CreatedAccountTypes = append(m.CreatedAccountTypes, accountType)
	return nil
}
