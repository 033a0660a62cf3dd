package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urutiq/ledger-draft/pkg/models"
)

func TestApplyDescription_AutoFillsEmptyForm(t *testing.T) {
	form := &models.AiForm{}
	ApplyDescription(form, "Paid $500 rent to ABC Properties")

	assert.Equal(t, "500", form.Amount)
	assert.True(t, form.IsAutoDetected)
	assert.Equal(t, models.TypeExpense, form.TransactionType)
	assert.True(t, form.IsTransactionTypeAutoDetected)
}

func TestManualAmountSurvivesDescriptionEdits(t *testing.T) {
	// The end-to-end override scenario: auto-fill, manual divergence, then a
	// re-edit that still parses to the old value must not reclaim the field.
	form := &models.AiForm{}
	ApplyDescription(form, "Paid $500 rent to ABC Properties")
	require.Equal(t, "500", form.Amount)
	require.True(t, form.IsAutoDetected)

	SetAmount(form, "750")
	assert.False(t, form.IsAutoDetected)

	ApplyDescription(form, "Paid $500 rent to ABC Props")
	assert.Equal(t, "750", form.Amount)
	assert.False(t, form.IsAutoDetected)
}

func TestApplyDescription_TracksWhileUndiverged(t *testing.T) {
	// While the displayed amount still equals what the previous text parsed
	// to, a fresh parse may overwrite it.
	form := &models.AiForm{}
	ApplyDescription(form, "Paid $500 rent")
	require.Equal(t, "500", form.Amount)

	// Clear the flag but keep the value equal to the old parse.
	form.IsAutoDetected = false
	ApplyDescription(form, "Paid $650 rent")
	assert.Equal(t, "650", form.Amount)
	assert.True(t, form.IsAutoDetected)
}

func TestSetAmount_MatchingParserKeepsFlag(t *testing.T) {
	form := &models.AiForm{}
	ApplyDescription(form, "Paid $500 rent")

	// Typing the very value the parser produced re-earns the flag.
	SetAmount(form, "500")
	assert.True(t, form.IsAutoDetected)

	SetAmount(form, "500.50")
	assert.False(t, form.IsAutoDetected)
}

func TestTransactionTypeReconciliation(t *testing.T) {
	form := &models.AiForm{}
	ApplyDescription(form, "Received $2000 from customer")
	require.Equal(t, models.TypeReceipt, form.TransactionType)
	require.True(t, form.IsTransactionTypeAutoDetected)

	SetTransactionType(form, models.TypeSale)
	assert.False(t, form.IsTransactionTypeAutoDetected)

	// The manual type holds through further description edits.
	ApplyDescription(form, "Received $2000 from customer for April invoice")
	assert.Equal(t, models.TypeSale, form.TransactionType)
}

func TestApplyDescription_NoAmountLeavesFieldAlone(t *testing.T) {
	form := &models.AiForm{}
	ApplyDescription(form, "Paid rent for office")
	assert.Empty(t, form.Amount)
	assert.False(t, form.IsAutoDetected)
	assert.Equal(t, models.TypeExpense, form.TransactionType)
}
