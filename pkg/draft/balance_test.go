package draft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urutiq/ledger-draft/pkg/models"
)

func TestAutoBalance_FillsCreditShortfall(t *testing.T) {
	d := &models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("750.00")},
			{AccountID: "1010", Credit: dec("500.00")},
			{AccountID: "1020"}, // open line
		},
	}

	require.True(t, AutoBalance(d))
	assert.True(t, IsBalanced(d))
	assert.True(t, d.Lines[2].Credit.Equal(dec("250.00")))
	assert.True(t, d.Lines[2].Debit.IsZero())
}

func TestAutoBalance_FillsDebitShortfall(t *testing.T) {
	d := &models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "1010"},
			{AccountID: "4010", Credit: dec("900.00")},
			{AccountID: "5010", Debit: dec("600.00")},
		},
	}

	require.True(t, AutoBalance(d))
	assert.True(t, IsBalanced(d))
	// The first open line in display order is the target.
	assert.True(t, d.Lines[0].Debit.Equal(dec("300.00")))
}

func TestAutoBalance_Idempotent(t *testing.T) {
	d := &models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("100.00")},
			{AccountID: "1010"},
			{AccountID: "1020"},
		},
	}

	require.True(t, AutoBalance(d))
	require.True(t, IsBalanced(d))

	before := append([]models.JournalLine(nil), d.Lines...)
	assert.False(t, AutoBalance(d))
	assert.Equal(t, before, d.Lines)
}

func TestAutoBalance_NoOpWhenBalanced(t *testing.T) {
	d := &models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("100.00")},
			{AccountID: "1010", Credit: dec("100.00")},
			{AccountID: "1020"},
		},
	}
	assert.False(t, AutoBalance(d))
	assert.True(t, d.Lines[2].IsEmpty())
}

func TestAutoBalance_NoOpWithoutOpenLine(t *testing.T) {
	d := &models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("100.00")},
			{AccountID: "1010", Credit: dec("60.00")},
		},
	}
	assert.False(t, AutoBalance(d))
	assert.False(t, IsBalanced(d))
}

func TestAutoBalance_WithinToleranceIsBalanced(t *testing.T) {
	d := &models.JournalEntryDraft{
		Lines: []models.JournalLine{
			{AccountID: "5010", Debit: dec("100.00")},
			{AccountID: "1010", Credit: dec("99.99")},
			{AccountID: "1020"},
		},
	}
	// 0.01 off is within tolerance; nothing to do.
	assert.False(t, AutoBalance(d))
}
