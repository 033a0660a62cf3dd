package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/urutiq/ledger-draft/pkg/draft"
	"github.com/urutiq/ledger-draft/pkg/http/jm"
	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/suggest"
)

// ValidationError carries the full list of violations that blocked a
// submission, so callers can report every problem at once.
type ValidationError struct {
	Violations []draft.Violation
}

func (e *ValidationError) Error() string {
	return "entry not ready for submission: " + strings.Join(draft.Messages(e.Violations), "; ")
}

// ComposerOptions configures one entry-composition session.
type ComposerOptions struct {
	User          string
	AmountCeiling decimal.Decimal
	Thresholds    suggest.Thresholds
}

// Composer owns one natural-language entry-composition session: the form
// state, the suggestion selector, and the submit paths. All validation runs
// client-side before any network call is made.
type Composer struct {
	client   jm.JournalClientInterface
	selector *suggest.Selector
	form     models.AiForm

	user      string
	ceiling   decimal.Decimal
	sessionID string
}

// NewComposer creates a composer backed by the given journal client.
func NewComposer(client jm.JournalClientInterface, opts ComposerOptions) *Composer {
	ceiling := opts.AmountCeiling
	if ceiling.IsZero() {
		ceiling = draft.DefaultAmountCeiling
	}
	thresholds := opts.Thresholds
	if thresholds.DescriptionDelta == 0 && thresholds.AmountChangeRatio == 0 {
		thresholds = suggest.DefaultThresholds()
	}
	return &Composer{
		client:    client,
		selector:  suggest.New(thresholds),
		user:      opts.User,
		ceiling:   ceiling,
		sessionID: uuid.NewString(),
	}
}

// Form exposes the current form state for rendering.
func (c *Composer) Form() *models.AiForm { return &c.form }

// Selector exposes the suggestion selector for rendering and toggling.
func (c *Composer) Selector() *suggest.Selector { return c.selector }

// SessionID identifies this composition session in logs and payloads.
func (c *Composer) SessionID() string { return c.sessionID }

// UpdateDescription records a description edit, re-deriving auto-detected
// fields where the user has not overridden them and discarding stale
// suggestions.
func (c *Composer) UpdateDescription(text string) {
	draft.ApplyDescription(&c.form, text)
	c.observeSelector()
}

// UpdateAmount records a manual amount edit.
func (c *Composer) UpdateAmount(value string) {
	draft.SetAmount(&c.form, value)
	c.observeSelector()
}

// UpdateTransactionType records a manual transaction-type edit.
func (c *Composer) UpdateTransactionType(t models.TransactionType) {
	draft.SetTransactionType(&c.form, t)
}

// SetCategory, SetVendor and SetCustomer record plain context fields.
func (c *Composer) SetCategory(v string) { c.form.Category = v }
func (c *Composer) SetVendor(v string)   { c.form.Vendor = v }
func (c *Composer) SetCustomer(v string) { c.form.Customer = v }

func (c *Composer) observeSelector() {
	amount, _ := draft.ResolveAmount(&c.form)
	c.selector.ObserveInput(c.form.Description, amount)
}

// Validate returns everything currently blocking submission.
func (c *Composer) Validate() []draft.Violation {
	return draft.ValidateAI(&c.form, c.ceiling)
}

// FetchSuggestions asks the backend for account suggestions for the current
// description and amount. A failed fetch returns the selector to idle and
// leaves the form untouched.
func (c *Composer) FetchSuggestions(ctx context.Context) ([]models.AccountSuggestion, error) {
	amount, ok := draft.ResolveAmount(&c.form)
	if !ok {
		return nil, suggest.ErrMissingInput
	}
	if err := c.selector.BeginFetch(c.form.Description, amount); err != nil {
		return nil, err
	}

	suggestions, err := c.client.FetchAccountSuggestions(ctx, jm.SuggestionRequest{
		Description: c.form.Description,
		Amount:      amount,
		Context:     c.entryContext(true),
	})
	if err != nil {
		c.selector.Abort()
		return nil, err
	}

	c.selector.Present(suggestions)
	return suggestions, nil
}

// CreateEntry submits the form letting the backend choose all accounts.
func (c *Composer) CreateEntry(ctx context.Context) (*models.CreatedEntry, error) {
	return c.create(ctx, nil)
}

// CreateEntryWithSelected submits the form using the suggestions the user
// picked. It never falls back to automatic selection: an empty selection is
// an error before any network call.
func (c *Composer) CreateEntryWithSelected(ctx context.Context) (*models.CreatedEntry, error) {
	selected, err := c.selector.SelectedForCreate()
	if err != nil {
		return nil, err
	}
	return c.create(ctx, selected)
}

func (c *Composer) create(ctx context.Context, selected []models.AccountSuggestion) (*models.CreatedEntry, error) {
	if violations := c.Validate(); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}

	amount, _ := draft.ResolveAmount(&c.form)
	req := jm.EnhancedCreateRequest{
		Description: c.form.Description,
		Amount:      amount,
		Context:     c.entryContext(true),
	}
	if len(selected) > 0 {
		req.SelectedAccountSuggestions = selected
		req.UseSelectedSuggestions = true
		log.Debug().
			Strs("accounts", lo.Map(selected, func(s models.AccountSuggestion, _ int) string {
				return s.AccountCode
			})).
			Msg("Creating entry with selected accounts")
	}

	entry, err := c.client.CreateEnhanced(ctx, req)
	if err != nil {
		return nil, err
	}

	c.resetSession()
	return entry, nil
}

// CreateManualEntry validates and submits a manually composed draft.
func (c *Composer) CreateManualEntry(ctx context.Context, d *models.JournalEntryDraft) (*models.CreatedEntry, error) {
	if violations := draft.ValidateManual(d); len(violations) > 0 {
		return nil, &ValidationError{Violations: violations}
	}
	return c.client.CreateManual(ctx, d)
}

// PostEntry transitions an entry toward posted status.
func (c *Composer) PostEntry(ctx context.Context, entryID string) error {
	return c.client.PostEntry(ctx, entryID, c.user)
}

// VoidEntry voids an entry; the reason is mandatory.
func (c *Composer) VoidEntry(ctx context.Context, entryID, reason string) error {
	if strings.TrimSpace(reason) == "" {
		return fmt.Errorf("a reason is required to void an entry")
	}
	return c.client.VoidEntry(ctx, entryID, c.user, reason)
}

func (c *Composer) entryContext(validationPassed bool) jm.EntryContext {
	return jm.EntryContext{
		Category:            c.form.Category,
		Vendor:              c.form.Vendor,
		Customer:            c.form.Customer,
		TransactionType:     c.form.TransactionType,
		AutoExtractedAmount: c.form.IsAutoDetected,
		DescriptionLength:   len(c.form.Description),
		ProcessingLevel:     "enhanced",
		ValidationPassed:    validationPassed,
		SessionID:           c.sessionID,
	}
}

// resetSession clears form and suggestion state after a successful create,
// starting a fresh session.
func (c *Composer) resetSession() {
	c.form = models.AiForm{}
	c.selector.Reset()
	c.sessionID = uuid.NewString()
}
