package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	httpclient "github.com/urutiq/ledger-draft/pkg/http"
	"github.com/urutiq/ledger-draft/pkg/http/jm"
	"github.com/urutiq/ledger-draft/pkg/models"
)

func TestSeedDefaultChart_EmptyBackend(t *testing.T) {
	mock := jm.NewMockJournalClient()

	SeedDefaultChart(context.Background(), mock)

	assert.Len(t, mock.CreatedAccountTypes, len(DefaultAccountTypes()))
	assert.Len(t, mock.CreatedAccounts, len(DefaultAccounts()))
}

func TestSeedDefaultChart_SkipsExistingChart(t *testing.T) {
	mock := jm.NewMockJournalClient()
	mock.Accounts = []models.Account{{Code: "1010", Name: "Business Checking"}}

	SeedDefaultChart(context.Background(), mock)

	assert.Empty(t, mock.CreatedAccountTypes)
	assert.Empty(t, mock.CreatedAccounts)
}

func TestSeedDefaultChart_ToleratesAlreadyExists(t *testing.T) {
	mock := jm.NewMockJournalClient()
	mock.CreateAccountErr = &httpclient.APIError{StatusCode: 409, Message: "account already exists"}
	mock.CreateAccountTypeErr = &httpclient.APIError{StatusCode: 409, Message: "account type already exists"}

	// Must not panic or fail; duplicates are expected on re-runs.
	SeedDefaultChart(context.Background(), mock)

	assert.Empty(t, mock.CreatedAccounts)
}

func TestDefaultChartShape(t *testing.T) {
	types := make(map[string]bool)
	for _, at := range DefaultAccountTypes() {
		types[at.Category] = true
	}

	for _, a := range DefaultAccounts() {
		assert.True(t, types[a.Type], "account %s has unknown type %s", a.Code, a.Type)
		assert.NotEmpty(t, a.Code)
		assert.NotEmpty(t, a.Name)
	}
}
