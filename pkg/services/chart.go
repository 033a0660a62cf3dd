package services

import (
	"context"

	"github.com/rs/zerolog/log"

	httpclient "github.com/urutiq/ledger-draft/pkg/http"
	"github.com/urutiq/ledger-draft/pkg/http/jm"
	"github.com/urutiq/ledger-draft/pkg/models"
)

// DefaultAccountTypes returns the account-type groups seeded into an empty
// backend.
func DefaultAccountTypes() []models.AccountType {
	return []models.AccountType{
		{Name: "Asset", Category: "asset"},
		{Name: "Liability", Category: "liability"},
		{Name: "Equity", Category: "equity"},
		{Name: "Revenue", Category: "revenue"},
		{Name: "Expense", Category: "expense"},
	}
}

// DefaultAccounts returns the minimal default chart seeded into an empty
// backend so balances and suggestions have something to reference.
func DefaultAccounts() []models.Account {
	return []models.Account{
		{Code: "1010", Name: "Business Checking", Type: "asset", Description: "Primary checking account"},
		{Code: "1020", Name: "Business Savings", Type: "asset", Description: "Savings account"},
		{Code: "1200", Name: "Accounts Receivable", Type: "asset"},
		{Code: "2010", Name: "Credit Card", Type: "liability", Description: "Business credit card"},
		{Code: "2100", Name: "Accounts Payable", Type: "liability"},
		{Code: "3010", Name: "Owner's Equity", Type: "equity"},
		{Code: "4010", Name: "Service Revenue", Type: "revenue"},
		{Code: "4020", Name: "Product Revenue", Type: "revenue"},
		{Code: "5010", Name: "Rent Expense", Type: "expense", Description: "Office and facility rent"},
		{Code: "5020", Name: "Utilities Expense", Type: "expense"},
		{Code: "5030", Name: "Office Supplies", Type: "expense", Description: "Office supplies and expenses"},
		{Code: "5040", Name: "Professional Services", Type: "expense", Description: "Legal, accounting, consulting"},
		{Code: "5050", Name: "Salaries & Wages", Type: "expense"},
	}
}

// SeedDefaultChart opportunistically creates the default account types and
// accounts. "already exists" responses are expected and skipped silently;
// other failures are logged but never block the caller, since the chart may
// already be serviceable.
func SeedDefaultChart(ctx context.Context, client jm.JournalClientInterface) {
	existing, err := client.ListAccounts(ctx)
	if err == nil && len(existing) > 0 {
		return
	}
	if err != nil {
		log.Warn().Err(err).Msg("Could not list accounts before seeding")
	}

	for _, accountType := range DefaultAccountTypes() {
		if err := client.CreateAccountType(ctx, accountType); err != nil && !httpclient.IsAlreadyExists(err) {
			log.Warn().Err(err).Str("accountType", accountType.Name).Msg("Failed to seed account type")
		}
	}
	for _, account := range DefaultAccounts() {
		if err := client.CreateAccount(ctx, account); err != nil && !httpclient.IsAlreadyExists(err) {
			log.Warn().Err(err).Str("account", account.Code).Msg("Failed to seed account")
		}
	}
}
