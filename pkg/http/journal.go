package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/urutiq/ledger-draft/pkg/http/jm"
	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/utils"
)

const journalPathPrefix = "/enhanced-journal-management"

// JournalClient talks to the enhanced journal management backend. It never
// retries: a failed call surfaces an error and leaves client-side draft
// state untouched so the user can correct input and resubmit.
type JournalClient struct {
	client    *http.Client
	baseURL   string
	companyID string
}

// NewJournalClient creates a client against the given base URL (scheme and
// host, no trailing slash) scoped to one company.
func NewJournalClient(baseURL, companyID string) *JournalClient {
	return &JournalClient{
		client:    &http.Client{},
		baseURL:   strings.TrimRight(baseURL, "/"),
		companyID: companyID,
	}
}

// CompanyID returns the company this client is scoped to.
func (c *JournalClient) CompanyID() string { return c.companyID }

// EnableDebug dumps every request and response to stdout.
func (c *JournalClient) EnableDebug() {
	c.client.Transport = utils.DebugRoundTripper()
}

func (c *JournalClient) CreateEnhanced(ctx context.Context, req jm.EnhancedCreateRequest) (*models.CreatedEntry, error) {
	if req.CompanyID == "" {
		req.CompanyID = c.companyID
	}
	body, err := c.doJSON(ctx, http.MethodPost, journalPathPrefix+"/create", req)
	if err != nil {
		return nil, err
	}
	var entry models.CreatedEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse created entry: %w", err)
	}
	return &entry, nil
}

func (c *JournalClient) FetchAccountSuggestions(ctx context.Context, req jm.SuggestionRequest) ([]models.AccountSuggestion, error) {
	if req.CompanyID == "" {
		req.CompanyID = c.companyID
	}
	body, err := c.doJSON(ctx, http.MethodPost, journalPathPrefix+"/account-suggestions", req)
	if err != nil {
		return nil, err
	}
	var suggestions []models.AccountSuggestion
	if err := decodeList(body, &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse account suggestions: %w", err)
	}
	return suggestions, nil
}

func (c *JournalClient) CreateManual(ctx context.Context, draft *models.JournalEntryDraft) (*models.CreatedEntry, error) {
	payload := struct {
		Date        string               `json:"date"`
		Reference   string               `json:"reference"`
		Description string               `json:"description"`
		CompanyID   string               `json:"companyId"`
		Entries     []models.JournalLine `json:"entries"`
	}{
		Date:        draft.Date,
		Reference:   draft.Reference,
		Description: draft.Description,
		CompanyID:   c.companyID,
		Entries:     draft.Lines,
	}
	body, err := c.doJSON(ctx, http.MethodPost, journalPathPrefix+"/manual", payload)
	if err != nil {
		return nil, err
	}
	var entry models.CreatedEntry
	if err := json.Unmarshal(body, &entry); err != nil {
		return nil, fmt.Errorf("failed to parse created entry: %w", err)
	}
	return &entry, nil
}

func (c *JournalClient) PostEntry(ctx context.Context, entryID, postedBy string) error {
	payload := struct {
		PostedBy string `json:"postedBy"`
	}{PostedBy: postedBy}
	_, err := c.doJSON(ctx, http.MethodPost, journalPathPrefix+"/post/"+entryID, payload)
	return err
}

func (c *JournalClient) VoidEntry(ctx context.Context, entryID, voidedBy, reason string) error {
	payload := struct {
		VoidedBy string `json:"voidedBy"`
		Reason   string `json:"reason"`
	}{VoidedBy: voidedBy, Reason: reason}
	_, err := c.doJSON(ctx, http.MethodPost, journalPathPrefix+"/void/"+entryID, payload)
	return err
}

func (c *JournalClient) ListEntries(ctx context.Context) ([]models.CreatedEntry, error) {
	body, err := c.doJSON(ctx, http.MethodGet, journalPathPrefix+"/entries/"+c.companyID, nil)
	if err != nil {
		return nil, err
	}
	var entries []models.CreatedEntry
	if err := decodeList(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to parse entries: %w", err)
	}
	return entries, nil
}

func (c *JournalClient) LedgerBalances(ctx context.Context) ([]models.LedgerBalance, error) {
	body, err := c.doJSON(ctx, http.MethodGet, journalPathPrefix+"/ledger-balances/"+c.companyID, nil)
	if err != nil {
		return nil, err
	}
	var balances []models.LedgerBalance
	if err := decodeList(body, &balances); err != nil {
		return nil, fmt.Errorf("failed to parse ledger balances: %w", err)
	}
	return balances, nil
}

func (c *JournalClient) Anomalies(ctx context.Context) ([]models.Anomaly, error) {
	body, err := c.doJSON(ctx, http.MethodGet, journalPathPrefix+"/anomalies/"+c.companyID, nil)
	if err != nil {
		return nil, err
	}
	var anomalies []models.Anomaly
	if err := decodeList(body, &anomalies); err != nil {
		return nil, fmt.Errorf("failed to parse anomalies: %w", err)
	}
	return anomalies, nil
}

func (c *JournalClient) Stats(ctx context.Context) (*models.JournalStats, error) {
	body, err := c.doJSON(ctx, http.MethodGet, journalPathPrefix+"/stats/"+c.companyID, nil)
	if err != nil {
		return nil, err
	}
	var stats models.JournalStats
	if err := decodeObject(body, &stats); err != nil {
		return nil, fmt.Errorf("failed to parse stats: %w", err)
	}
	return &stats, nil
}

func (c *JournalClient) ListAccounts(ctx context.Context) ([]models.Account, error) {
	body, err := c.doJSON(ctx, http.MethodGet, "/accounts", nil)
	if err != nil {
		return nil, err
	}
	var accounts []models.Account
	if err := decodeList(body, &accounts); err != nil {
		return nil, fmt.Errorf("failed to parse accounts: %w", err)
	}
	return accounts, nil
}

func (c *JournalClient) CreateAccount(ctx context.Context, account models.Account) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/accounts", account)
	return err
}

func (c *JournalClient) CreateAccountType(ctx context.Context, accountType models.AccountType) error {
	_, err := c.doJSON(ctx, http.MethodPost, "/account-types", accountType)
	return err
}

func (c *JournalClient) doJSON(ctx context.Context, method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("network error calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response from %s: %w", path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
	}
	return body, nil
}

// serverMessage pulls the human-readable error text out of a failure body,
// falling back to the raw body when it is not the usual JSON envelope.
func serverMessage(body []byte) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return strings.TrimSpace(string(body))
}
