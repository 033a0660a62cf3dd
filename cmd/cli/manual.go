package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/urutiq/ledger-draft/pkg/draft"
	"github.com/urutiq/ledger-draft/pkg/http"
	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/services"
)

func (r *replState) processDraftCommand(trimmedLine string) {
	rest := strings.TrimSpace(strings.TrimPrefix(trimmedLine, "draft"))
	cmd, arg, _ := strings.Cut(rest, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "date":
		r.draft.Date = arg
	case "ref":
		r.draft.Reference = arg
	case "memo":
		r.draft.Description = arg
	case "line":
		r.addDraftLine(arg)
	case "show":
		r.printDraft()
	case "check":
		r.checkDraft()
	case "balance":
		if draft.AutoBalance(r.draft) {
			fmt.Println("Filled the first open line to balance the entry.")
		} else if draft.IsBalanced(r.draft) {
			fmt.Println("Entry is already balanced.")
		} else {
			fmt.Println("No open line to balance into; add an empty line first.")
		}
		r.printDraft()
	case "clear":
		r.draft = &models.JournalEntryDraft{}
	case "submit":
		r.submitDraft()
	default:
		fmt.Println("Usage: draft date|ref|memo <v> | draft line <accountId> debit|credit <amount> [memo] | draft show|check|balance|clear|submit")
	}
}

// addDraftLine parses "1010 debit 250.00 office chairs". An empty line for
// auto-balance is added with "draft line <accountId>" alone.
func (r *replState) addDraftLine(arg string) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		fmt.Println("Usage: draft line <accountId> [debit|credit <amount> [memo]]")
		return
	}

	line := models.JournalLine{AccountID: fields[0]}
	if len(fields) >= 3 {
		amount, err := decimal.NewFromString(fields[2])
		if err != nil || amount.IsNegative() {
			fmt.Printf("Invalid amount %q\n", fields[2])
			return
		}
		switch fields[1] {
		case "debit", "dr":
			line.Debit = amount
		case "credit", "cr":
			line.Credit = amount
		default:
			fmt.Println("Side must be debit or credit")
			return
		}
		line.Description = strings.Join(fields[3:], " ")
	}

	r.draft.Lines = append(r.draft.Lines, line)
	r.printDraft()
}

func (r *replState) printDraft() {
	fmt.Printf("Date: %s  Ref: %s  Memo: %s\n", r.draft.Date, r.draft.Reference, r.draft.Description)
	for i, line := range r.draft.Lines {
		fmt.Printf("  %d. %-8s Dr %-12s Cr %-12s %s\n", i+1, line.AccountID,
			line.Debit.StringFixed(2), line.Credit.StringFixed(2), line.Description)
	}
	fmt.Printf("Totals: Dr %s / Cr %s\n",
		models.DisplayAmount(r.draft.TotalDebit()), models.DisplayAmount(r.draft.TotalCredit()))
}

func (r *replState) checkDraft() {
	violations := draft.ValidateManual(r.draft)
	if len(violations) == 0 {
		fmt.Println("Draft is ready for submission.")
		return
	}
	fmt.Println("Draft not ready:")
	for _, v := range violations {
		fmt.Printf("  - %s\n", v)
	}
}

func (r *replState) submitDraft() {
	entry, err := r.composer.CreateManualEntry(context.Background(), r.draft)
	if err != nil {
		var validationErr *services.ValidationError
		if errors.As(err, &validationErr) {
			fmt.Println("Draft not ready:")
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
	r.draft = &models.JournalEntryDraft{}
}

func (r *replState) processStatusChange(trimmedLine string) {
	parts := strings.Fields(trimmedLine)
	if len(parts) != 2 {
		fmt.Printf("Usage: %s <entryId>\n", parts[0])
		return
	}
	entryID := parts[1]

	switch parts[0] {
	case "post":
		if err := r.composer.PostEntry(context.Background(), entryID); err != nil {
			printRemoteError(err)
			return
		}
		fmt.Printf("Entry %s posted.\n", entryID)
	case "void":
		reason := r.promptLine("Reason for voiding: ")
		if strings.TrimSpace(reason) == "" {
			fmt.Println("A reason is required to void an entry.")
			return
		}
		if err := r.composer.VoidEntry(context.Background(), entryID, reason); err != nil {
			printRemoteError(err)
			return
		}
		fmt.Printf("Entry %s voided.\n", entryID)
	}
}

// printRemoteError shows the friendly category message when the failure
// matches a known category, otherwise the server's own text.
func printRemoteError(err error) {
	if http.Categorize(err) != http.CategoryGeneric {
		fmt.Println(http.FriendlyMessage(err))
		return
	}
	fmt.Println(err)
}
