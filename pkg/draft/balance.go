package draft

import "github.com/urutiq/ledger-draft/pkg/models"

// AutoBalance writes the debit/credit shortfall into the first line whose
// debit and credit are both empty. Already-balanced drafts and drafts with
// no empty line are left untouched, which makes the operation idempotent.
// Returns true when a line was filled.
func AutoBalance(d *models.JournalEntryDraft) bool {
	difference := d.Difference()
	if difference.Abs().LessThanOrEqual(BalanceTolerance) {
		return false
	}
	for i := range d.Lines {
		if !d.Lines[i].IsEmpty() {
			continue
		}
		if difference.IsPositive() {
			d.Lines[i].Credit = difference
		} else {
			d.Lines[i].Debit = difference.Neg()
		}
		return true
	}
	return false
}
