package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/services"
	"github.com/urutiq/ledger-draft/pkg/utils"
)

func (r *replState) processDashboard(trimmedLine string) {
	ctx := context.Background()

	switch trimmedLine {
	case "entries":
		entries, err := r.client.ListEntries(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error fetching entries")
			return
		}
		if len(entries) == 0 {
			fmt.Println("No entries yet.")
			return
		}
		for i := range entries {
			entries[i].PrintFormatted()
			fmt.Println()
		}
	case "balances":
		// The backend may be empty on first use; seed the default chart so
		// balances have accounts to report against.
		services.SeedDefaultChart(ctx, r.client)
		balances, err := r.client.LedgerBalances(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error fetching ledger balances")
			return
		}
		for _, b := range balances {
			fmt.Printf("%-6s %-30s Dr %-14s Cr %-14s Balance %s\n",
				b.AccountCode, utils.Capitalize(b.AccountName),
				models.DisplayAmount(b.Debit), models.DisplayAmount(b.Credit),
				models.DisplayAmount(b.Balance))
		}
	case "anomalies":
		anomalies, err := r.client.Anomalies(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error fetching anomalies")
			return
		}
		if len(anomalies) == 0 {
			fmt.Println("No anomalies detected.")
			return
		}
		for _, a := range anomalies {
			fmt.Printf("[%s] entry %s: %s\n", a.Severity, a.EntryID, a.Description)
		}
	case "stats":
		stats, err := r.client.Stats(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Error fetching stats")
			return
		}
		fmt.Printf("Entries: %d (%d posted, %d draft)\n",
			stats.TotalEntries, stats.PostedCount, stats.DraftCount)
		fmt.Printf("Totals: Dr %s / Cr %s\n",
			models.DisplayAmount(stats.TotalDebit), models.DisplayAmount(stats.TotalCredit))
	}
}
