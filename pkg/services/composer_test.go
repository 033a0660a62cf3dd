package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urutiq/ledger-draft/pkg/http/jm"
	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/suggest"
)

var errBackend = errors.New("backend exploded")

func decimalFromInt(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func newTestComposer(mock *jm.MockJournalClient) *Composer {
	return NewComposer(mock, ComposerOptions{User: "jordan"})
}

func TestCreateEntry_AutomaticPath(t *testing.T) {
	mock := jm.NewMockJournalClient()
	c := newTestComposer(mock)

	c.UpdateDescription("Paid $500 rent to ABC Properties")
	form := c.Form()
	assert.Equal(t, "500", form.Amount)
	assert.True(t, form.IsAutoDetected)
	assert.Equal(t, models.TypeExpense, form.TransactionType)

	entry, err := c.CreateEntry(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "JE-0001", entry.Reference)

	require.Len(t, mock.CreateEnhancedCalls, 1)
	req := mock.CreateEnhancedCalls[0]
	assert.Equal(t, "Paid $500 rent to ABC Properties", req.Description)
	assert.True(t, req.Amount.Equal(decimalFromInt(500)))
	assert.True(t, req.Context.AutoExtractedAmount)
	assert.Equal(t, models.TypeExpense, req.Context.TransactionType)
	assert.True(t, req.Context.ValidationPassed)
	// The plain path never carries suggestion-selection fields.
	assert.Empty(t, req.SelectedAccountSuggestions)
	assert.False(t, req.UseSelectedSuggestions)

	// Success clears the session.
	assert.Empty(t, c.Form().Description)
	assert.Equal(t, suggest.PhaseIdle, c.Selector().Phase())
}

func TestCreateEntry_ValidationBlocksNetworkCall(t *testing.T) {
	mock := jm.NewMockJournalClient()
	c := newTestComposer(mock)

	c.UpdateDescription("test")
	_, err := c.CreateEntry(context.Background())

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Violations)
	assert.Empty(t, mock.CreateEnhancedCalls, "validation failures must not reach the backend")
}

func TestCreateEntryWithSelected_EmptySelectionNeverCallsBackend(t *testing.T) {
	mock := jm.NewMockJournalClient()
	mock.Suggestions = []models.AccountSuggestion{
		{AccountCode: "5010", AccountName: "Rent Expense", Confidence: 0.92},
	}
	c := newTestComposer(mock)
	c.UpdateDescription("Paid $500 rent to ABC Properties")

	_, err := c.FetchSuggestions(context.Background())
	require.NoError(t, err)
	require.Equal(t, suggest.PhasePresented, c.Selector().Phase())

	_, err = c.CreateEntryWithSelected(context.Background())
	assert.ErrorIs(t, err, suggest.ErrNoSelection)
	assert.Empty(t, mock.CreateEnhancedCalls)
}

func TestCreateEntryWithSelected_SendsSelection(t *testing.T) {
	mock := jm.NewMockJournalClient()
	mock.Suggestions = []models.AccountSuggestion{
		{AccountCode: "5010", AccountName: "Rent Expense", Confidence: 0.92},
		{AccountCode: "1010", AccountName: "Business Checking", Confidence: 0.88},
	}
	c := newTestComposer(mock)
	c.UpdateDescription("Paid $500 rent to ABC Properties")

	_, err := c.FetchSuggestions(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.Selector().SelectAll())

	_, err = c.CreateEntryWithSelected(context.Background())
	require.NoError(t, err)

	require.Len(t, mock.CreateEnhancedCalls, 1)
	req := mock.CreateEnhancedCalls[0]
	assert.True(t, req.UseSelectedSuggestions)
	require.Len(t, req.SelectedAccountSuggestions, 2)
	assert.Equal(t, "5010", req.SelectedAccountSuggestions[0].AccountCode)

	// Success clears suggestions and selection.
	assert.Equal(t, suggest.PhaseIdle, c.Selector().Phase())
	assert.Empty(t, c.Selector().Selected())
}

func TestFetchSuggestions_FailureReturnsToIdle(t *testing.T) {
	mock := jm.NewMockJournalClient()
	mock.FetchSuggestionsErr = errBackend
	c := newTestComposer(mock)
	c.UpdateDescription("Paid $500 rent to ABC Properties")

	_, err := c.FetchSuggestions(context.Background())
	require.Error(t, err)
	assert.Equal(t, suggest.PhaseIdle, c.Selector().Phase())
	// The form is untouched so the user can correct and retry.
	assert.Equal(t, "Paid $500 rent to ABC Properties", c.Form().Description)
}

func TestFetchSuggestions_RequiresDescriptionAndAmount(t *testing.T) {
	mock := jm.NewMockJournalClient()
	c := newTestComposer(mock)

	_, err := c.FetchSuggestions(context.Background())
	assert.ErrorIs(t, err, suggest.ErrMissingInput)
	assert.Empty(t, mock.FetchSuggestionsCalls)
}

func TestMaterialEditDiscardsSuggestions(t *testing.T) {
	mock := jm.NewMockJournalClient()
	mock.Suggestions = []models.AccountSuggestion{
		{AccountCode: "5010", AccountName: "Rent Expense", Confidence: 0.92},
	}
	c := newTestComposer(mock)
	c.UpdateDescription("Paid $500 rent to ABC Properties")

	_, err := c.FetchSuggestions(context.Background())
	require.NoError(t, err)
	require.NoError(t, c.Selector().Toggle("5010"))

	c.UpdateDescription("Paid $500 rent to ABC Properties and some more words")
	assert.Equal(t, suggest.PhaseIdle, c.Selector().Phase())
	assert.Empty(t, c.Selector().Selected())
}

func TestCreateManualEntry(t *testing.T) {
	mock := jm.NewMockJournalClient()
	c := newTestComposer(mock)

	bad := &models.JournalEntryDraft{}
	_, err := c.CreateManualEntry(context.Background(), bad)
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Empty(t, mock.CreateManualCalls)

	good := &models.JournalEntryDraft{
		Date:        "2025-01-15",
		Reference:   "JE-0009",
		Description: "Office rent",
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: decimalFromInt(500)},
			{AccountID: "1010", Credit: decimalFromInt(500)},
		},
	}
	entry, err := c.CreateManualEntry(context.Background(), good)
	require.NoError(t, err)
	assert.Equal(t, "JE-0001", entry.Reference)
	require.Len(t, mock.CreateManualCalls, 1)
}

func TestVoidEntryRequiresReason(t *testing.T) {
	mock := jm.NewMockJournalClient()
	c := newTestComposer(mock)

	assert.Error(t, c.VoidEntry(context.Background(), "je-1", "   "))
	assert.Empty(t, mock.VoidedEntries)

	require.NoError(t, c.VoidEntry(context.Background(), "je-1", "duplicate"))
	assert.Equal(t, []string{"je-1"}, mock.VoidedEntries)
}
