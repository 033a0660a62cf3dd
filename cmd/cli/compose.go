package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urutiq/ledger-draft/pkg/http"
	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/services"
	"github.com/urutiq/ledger-draft/pkg/suggest"
	"github.com/urutiq/ledger-draft/pkg/utils"
)

func (r *replState) processFormCommand(trimmedLine string) {
	cmd, rest, _ := strings.Cut(trimmedLine, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "describe":
		if rest == "" {
			fmt.Println("Usage: describe <text>")
			return
		}
		r.composer.UpdateDescription(rest)
		form := r.composer.Form()
		if form.IsAutoDetected {
			fmt.Printf("Auto-detected amount: %s\n", form.Amount)
		}
		if form.IsTransactionTypeAutoDetected {
			fmt.Printf("Auto-detected type: %s\n", form.TransactionType)
		}
	case "amount":
		if rest == "" {
			fmt.Println("Usage: amount <value>")
			return
		}
		r.composer.UpdateAmount(rest)
	case "type":
		t := models.TransactionType(rest)
		switch t {
		case models.TypeExpense, models.TypePayment, models.TypeReceipt,
			models.TypePurchase, models.TypeSale:
			r.composer.UpdateTransactionType(t)
		default:
			fmt.Println("Valid types: expense, payment, receipt, purchase, sale")
		}
	case "vendor":
		r.composer.SetVendor(rest)
	case "customer":
		r.composer.SetCustomer(rest)
	case "category":
		r.composer.SetCategory(rest)
	case "form":
		r.printForm()
	}
}

func (r *replState) printForm() {
	form := r.composer.Form()
	fmt.Printf("Description: %s\n", form.Description)
	fmt.Printf("Amount:      %s", form.Amount)
	if form.IsAutoDetected {
		fmt.Print(" (auto-detected)")
	}
	fmt.Println()
	fmt.Printf("Type:        %s", form.TransactionType)
	if form.IsTransactionTypeAutoDetected {
		fmt.Print(" (auto-detected)")
	}
	fmt.Println()
	if form.Vendor != "" {
		fmt.Printf("Vendor:      %s\n", form.Vendor)
	}
	if form.Customer != "" {
		fmt.Printf("Customer:    %s\n", form.Customer)
	}
	if form.Category != "" {
		fmt.Printf("Category:    %s\n", form.Category)
	}
	if violations := r.composer.Validate(); len(violations) > 0 {
		fmt.Println("Not ready for submission:")
		for _, v := range violations {
			fmt.Printf("  - %s\n", v)
		}
	} else {
		fmt.Println("Ready for submission.")
	}
}

func (r *replState) processSuggestionCommand(trimmedLine string) {
	cmd, rest, _ := strings.Cut(trimmedLine, " ")
	rest = strings.TrimSpace(rest)

	switch cmd {
	case "suggest":
		suggestions, err := r.composer.FetchSuggestions(context.Background())
		if err != nil {
			if errors.Is(err, suggest.ErrMissingInput) {
				fmt.Println(err)
			} else {
				fmt.Println(http.FriendlyMessage(err))
			}
			return
		}
		if len(suggestions) == 0 {
			fmt.Println("No suggestions returned; use 'create' to let the backend choose accounts.")
			return
		}
		r.printSuggestions()
	case "pick":
		selector := r.composer.Selector()
		switch rest {
		case "":
			fmt.Println("Usage: pick <accountCode> | pick all | pick none")
			return
		case "all":
			if err := selector.SelectAll(); err != nil {
				fmt.Println(err)
				return
			}
		case "none":
			if err := selector.ClearAll(); err != nil {
				fmt.Println(err)
				return
			}
		default:
			if err := selector.Toggle(rest); err != nil {
				fmt.Println(err)
				return
			}
		}
		r.printSuggestions()
	}
}

func (r *replState) printSuggestions() {
	selector := r.composer.Selector()
	for _, s := range selector.Suggestions() {
		marker := " "
		if selector.IsSelected(s.AccountCode) {
			marker = "x"
		}
		fmt.Printf("[%s] %-6s %-30s %3.0f%%  %s\n",
			marker, s.AccountCode, utils.Capitalize(s.AccountName), s.Confidence*100, s.Reasoning)
	}
}

func (r *replState) processCreate(trimmedLine string) {
	ctx := context.Background()

	var entry *models.CreatedEntry
	var err error
	if strings.TrimSpace(trimmedLine) == "create selected" {
		entry, err = r.composer.CreateEntryWithSelected(ctx)
	} else {
		entry, err = r.composer.CreateEntry(ctx)
	}
	if err != nil {
		if errors.Is(err, suggest.ErrNoSelection) {
			fmt.Println("No suggestions are selected. Pick accounts first or use plain 'create'.")
			return
		}
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Println("Entry not ready:")
			for _, v := range validationErr.Violations {
				fmt.Printf("  - %s\n", v)
			}
			return
		}
		fmt.Println(http.FriendlyMessage(err))
		return
	}

	fmt.Println("Created:")
	entry.PrintFormatted()
}
