package draft

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urutiq/ledger-draft/pkg/models"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func balancedDraft(debit, credit string) *models.JournalEntryDraft {
	return &models.JournalEntryDraft{
		Date:        "2025-01-15",
		Reference:   "JE-0001",
		Description: "Office rent for January",
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec(debit)},
			{AccountID: "1010", Credit: dec(credit)},
		},
	}
}

func TestValidateManual_Balanced(t *testing.T) {
	violations := ValidateManual(balancedDraft("500.00", "500.00"))
	assert.Empty(t, violations)
}

func TestValidateManual_ToleranceBoundary(t *testing.T) {
	// 0.01 difference is within tolerance, 0.02 is not.
	assert.Empty(t, ValidateManual(balancedDraft("500.00", "499.99")))

	violations := ValidateManual(balancedDraft("500.00", "499.98"))
	require.Len(t, violations, 1)
	assert.Equal(t, "balance", violations[0].Field)
}

func TestValidateManual_NeedsTwoValidLines(t *testing.T) {
	d := &models.JournalEntryDraft{
		Date:        "2025-01-15",
		Reference:   "JE-0002",
		Description: "Incomplete entry",
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("100.00")},
			{}, // empty trailing line
		},
	}

	violations := ValidateManual(d)
	var found bool
	for _, v := range violations {
		if strings.Contains(v.Message, "at least 2 valid entries") {
			found = true
		}
	}
	assert.True(t, found, "expected a minimum-lines violation, got %v", violations)
}

func TestValidateManual_ReportsAllProblems(t *testing.T) {
	// Every check runs; nothing short-circuits.
	violations := ValidateManual(&models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("100.00")},
		},
	})

	fields := make(map[string]bool)
	for _, v := range violations {
		fields[v.Field] = true
	}
	assert.True(t, fields["date"])
	assert.True(t, fields["reference"])
	assert.True(t, fields["description"])
	assert.True(t, fields["lines"])
	assert.True(t, fields["balance"])
}

func TestValidateManual_LineValidity(t *testing.T) {
	// A line with both sides set, or no account, does not count as valid.
	bothSides := models.JournalLine{AccountID: "1010", Debit: dec("50"), Credit: dec("50")}
	assert.False(t, bothSides.IsValid())

	noAccount := models.JournalLine{Debit: dec("50")}
	assert.False(t, noAccount.IsValid())

	valid := models.JournalLine{AccountID: "1010", Credit: dec("50")}
	assert.True(t, valid.IsValid())
}

func TestValidateAI_HappyPath(t *testing.T) {
	form := &models.AiForm{
		Description: "Paid $500 rent for office",
		Amount:      "500",
	}
	assert.Empty(t, ValidateAI(form, DefaultAmountCeiling))
}

func TestValidateAI_AmountFromDescription(t *testing.T) {
	form := &models.AiForm{Description: "Paid $500 rent for office"}
	assert.Empty(t, ValidateAI(form, DefaultAmountCeiling))
}

func TestValidateAI_MissingAmount(t *testing.T) {
	form := &models.AiForm{Description: "Paid rent for office"}
	violations := ValidateAI(form, DefaultAmountCeiling)
	require.Len(t, violations, 1)
	assert.Equal(t, "amount", violations[0].Field)
}

func TestValidateAI_AmountCeiling(t *testing.T) {
	form := &models.AiForm{
		Description: "Paid rent for office",
		Amount:      "1500000",
	}
	violations := ValidateAI(form, DefaultAmountCeiling)
	require.Len(t, violations, 1)
	assert.Contains(t, violations[0].Message, "unusually high")

	// At the ceiling is still fine.
	form.Amount = "1000000"
	assert.Empty(t, ValidateAI(form, DefaultAmountCeiling))
}

func TestValidateAI_VagueDescription(t *testing.T) {
	form := &models.AiForm{Description: "test", Amount: "100"}
	violations := ValidateAI(form, DefaultAmountCeiling)
	require.Len(t, violations, 1)
	assert.Equal(t, "description", violations[0].Field)
}
