package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/urutiq/ledger-draft/pkg/models"
)

func TestDecodeList_Shapes(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "bare array", body: `[{"accountCode":"5010","accountName":"Rent Expense","confidence":0.9}]`},
		{name: "data envelope", body: `{"data":[{"accountCode":"5010","accountName":"Rent Expense","confidence":0.9}]}`},
		{name: "flat envelope", body: `{"flat":[{"accountCode":"5010","accountName":"Rent Expense","confidence":0.9}]}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var suggestions []models.AccountSuggestion
			require.NoError(t, decodeList([]byte(tc.body), &suggestions))
			require.Len(t, suggestions, 1)
			assert.Equal(t, "5010", suggestions[0].AccountCode)
		})
	}
}

func TestDecodeList_EmptyVariants(t *testing.T) {
	for _, body := range []string{"", "[]", `{"data":[]}`, `{"data":null}`, `{}`} {
		var out []models.AccountSuggestion
		require.NoError(t, decodeList([]byte(body), &out), "body %q", body)
		assert.Empty(t, out)
	}
}

func TestDecodeList_RejectsNonList(t *testing.T) {
	var out []models.AccountSuggestion
	assert.Error(t, decodeList([]byte(`"nope"`), &out))
}

func TestDecodeObject(t *testing.T) {
	bare := `{"totalEntries":3,"postedCount":2,"draftCount":1}`
	wrapped := `{"data":{"totalEntries":3,"postedCount":2,"draftCount":1}}`

	for _, body := range []string{bare, wrapped} {
		var stats models.JournalStats
		require.NoError(t, decodeObject([]byte(body), &stats))
		assert.Equal(t, 3, stats.TotalEntries)
		assert.Equal(t, 2, stats.PostedCount)
	}
}
