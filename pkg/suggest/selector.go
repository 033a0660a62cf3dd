// Package suggest tracks the user's choice among server-proposed account
// suggestions for an AI-composed entry. The selector is an explicit state
// machine so a non-empty selection can never exist outside the Presented
// phase.
package suggest

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/urutiq/ledger-draft/pkg/models"
)

// Phase is the selector's position in the suggestion lifecycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhasePresented
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhasePresented:
		return "presented"
	default:
		return "idle"
	}
}

var (
	// ErrNoSelection rejects "create with selected accounts" when nothing is
	// selected; the user asked to pick accounts, so silently falling back to
	// automatic selection would be wrong.
	ErrNoSelection = errors.New("no account suggestions selected")

	// ErrMissingInput rejects a fetch before both description and amount exist.
	ErrMissingInput = errors.New("description and amount are required before fetching suggestions")

	// ErrNotPresented rejects selection operations outside the Presented phase.
	ErrNotPresented = errors.New("no suggestions are currently presented")
)

// Thresholds controls when an input edit is material enough to discard the
// presented suggestions.
type Thresholds struct {
	// DescriptionDelta is the description length change, in characters,
	// beyond which suggestions are stale.
	DescriptionDelta int
	// AmountChangeRatio is the relative amount change beyond which
	// suggestions are stale.
	AmountChangeRatio float64
}

// DefaultThresholds matches the behaviour of the production UI.
func DefaultThresholds() Thresholds {
	return Thresholds{DescriptionDelta: 5, AmountChangeRatio: 0.10}
}

// Selector owns suggestion state for one entry-composition session.
type Selector struct {
	phase      Phase
	thresholds Thresholds

	description string
	amount      decimal.Decimal

	suggestions []models.AccountSuggestion
	selected    map[string]struct{}
}

// New returns an idle selector.
func New(thresholds Thresholds) *Selector {
	return &Selector{
		phase:      PhaseIdle,
		thresholds: thresholds,
		selected:   make(map[string]struct{}),
	}
}

func (s *Selector) Phase() Phase { return s.phase }

// Suggestions returns the presented suggestions in server order.
func (s *Selector) Suggestions() []models.AccountSuggestion { return s.suggestions }

// BeginFetch transitions Idle -> Loading, recording the inputs the
// suggestions will be fetched for.
func (s *Selector) BeginFetch(description string, amount decimal.Decimal) error {
	if description == "" || !amount.IsPositive() {
		return ErrMissingInput
	}
	s.phase = PhaseLoading
	s.description = description
	s.amount = amount
	return nil
}

// Present transitions Loading -> Presented with an empty selection. An empty
// suggestion list is still Presented; the user can only defer to automatic
// selection from there.
func (s *Selector) Present(suggestions []models.AccountSuggestion) {
	s.phase = PhasePresented
	s.suggestions = suggestions
	s.selected = make(map[string]struct{})
}

// Abort returns a Loading selector to Idle after a failed fetch.
func (s *Selector) Abort() {
	if s.phase == PhaseLoading {
		s.Reset()
	}
}

// Toggle flips membership of the suggestion with the given account code in
// the selection set. Toggling twice restores the original state.
func (s *Selector) Toggle(accountCode string) error {
	if s.phase != PhasePresented {
		return ErrNotPresented
	}
	if _, ok := s.selected[accountCode]; ok {
		delete(s.selected, accountCode)
	} else {
		s.selected[accountCode] = struct{}{}
	}
	return nil
}

// SelectAll puts every presented suggestion into the selection set.
func (s *Selector) SelectAll() error {
	if s.phase != PhasePresented {
		return ErrNotPresented
	}
	for _, sg := range s.suggestions {
		s.selected[sg.AccountCode] = struct{}{}
	}
	return nil
}

// ClearAll empties the selection set.
func (s *Selector) ClearAll() error {
	if s.phase != PhasePresented {
		return ErrNotPresented
	}
	s.selected = make(map[string]struct{})
	return nil
}

// IsSelected reports whether the account code is in the selection set.
func (s *Selector) IsSelected(accountCode string) bool {
	_, ok := s.selected[accountCode]
	return ok
}

// Selected returns the chosen suggestions in presentation order.
func (s *Selector) Selected() []models.AccountSuggestion {
	out := make([]models.AccountSuggestion, 0, len(s.selected))
	for _, sg := range s.suggestions {
		if s.IsSelected(sg.AccountCode) {
			out = append(out, sg)
		}
	}
	return out
}

// SelectedForCreate returns the selection for the "create with selected
// accounts" path, rejecting an empty set.
func (s *Selector) SelectedForCreate() ([]models.AccountSuggestion, error) {
	selected := s.Selected()
	if len(selected) == 0 {
		return nil, ErrNoSelection
	}
	return selected, nil
}

// ObserveInput discards presented suggestions when the description or amount
// has changed materially since they were fetched.
func (s *Selector) ObserveInput(description string, amount decimal.Decimal) {
	if s.phase != PhasePresented {
		return
	}
	if s.materialChange(description, amount) {
		s.Reset()
	}
}

func (s *Selector) materialChange(description string, amount decimal.Decimal) bool {
	delta := len(description) - len(s.description)
	if delta < 0 {
		delta = -delta
	}
	if delta > s.thresholds.DescriptionDelta {
		return true
	}
	if s.amount.IsPositive() {
		limit := s.amount.Mul(decimal.NewFromFloat(s.thresholds.AmountChangeRatio))
		if amount.Sub(s.amount).Abs().GreaterThan(limit) {
			return true
		}
	}
	return false
}

// Reset clears all suggestion state back to Idle.
func (s *Selector) Reset() {
	s.phase = PhaseIdle
	s.description = ""
	s.amount = decimal.Decimal{}
	s.suggestions = nil
	s.selected = make(map[string]struct{})
}
