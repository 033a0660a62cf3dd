package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/urutiq/ledger-draft/pkg/config"
	"github.com/urutiq/ledger-draft/pkg/http"
	"github.com/urutiq/ledger-draft/pkg/models"
	"github.com/urutiq/ledger-draft/pkg/services"
	"github.com/urutiq/ledger-draft/pkg/suggest"
)

var (
	debug   bool
	rootCmd *cobra.Command
)

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Initialize configuration
	if err := config.InitGlobalConfig("config.yaml"); err != nil {
		// Only print a warning if the file doesn't exist, as GetConfig will create it later
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("Failed to load configuration")
			log.Warn().Msg("A default configuration will be used")
		}
	}

	rootCmd = &cobra.Command{
		Use:   "ledger-draft",
		Short: "Compose and submit double-entry journal entries",
		Long:  `A CLI client for the enhanced journal management backend: compose journal entries manually or from natural-language descriptions, validate and auto-balance them, and review ledger dashboards.`,
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Dump HTTP requests and responses")

	replCmd := &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive REPL",
		Long:  `Start an interactive REPL for composing and submitting journal entries.`,
		Run: func(cmd *cobra.Command, args []string) {
			runREPL(initReplState())
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show the current configuration",
		Long:  `Show the current configuration loaded from config.yaml.`,
		Run: func(cmd *cobra.Command, args []string) {
			showConfig()
		},
	}

	rootCmd.AddCommand(replCmd, configCmd)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

type replState struct {
	client   *http.JournalClient
	composer *services.Composer
	draft    *models.JournalEntryDraft
	reader   *bufio.Scanner
}

func initReplState() *replState {
	backend, err := config.GetBackendOptions()
	if err != nil {
		log.Error().Err(err).Msg("Error getting backend options from config")
		log.Error().Msg("Please set backend.baseUrl and backend.companyId in config.yaml")
		os.Exit(1)
	}

	suggestionOpts, err := config.GetSuggestionOptions()
	if err != nil {
		log.Error().Err(err).Msg("Error getting suggestion options from config")
		os.Exit(1)
	}

	ceiling, err := config.GetAmountCeiling()
	if err != nil {
		log.Error().Err(err).Msg("Error getting amount ceiling from config")
		os.Exit(1)
	}

	client := http.NewJournalClient(backend.BaseURL, backend.CompanyID)
	if debug {
		client.EnableDebug()
	}

	composer := services.NewComposer(client, services.ComposerOptions{
		User:          backend.User,
		AmountCeiling: ceiling,
		Thresholds: suggest.Thresholds{
			DescriptionDelta:  suggestionOpts.DescriptionDelta,
			AmountChangeRatio: suggestionOpts.AmountChangeRatio,
		},
	})

	return &replState{
		client:   client,
		composer: composer,
		draft:    &models.JournalEntryDraft{},
		reader:   bufio.NewScanner(os.Stdin),
	}
}

func runREPL(state *replState) {
	fmt.Println("Welcome to the ledger-draft REPL!")
	fmt.Println("Type 'exit' or 'quit' to exit, 'help' for commands.")
	fmt.Println()

	for {
		fmt.Print("> ")

		if !state.reader.Scan() {
			break
		}

		line := state.reader.Text()
		trimmedLine := strings.TrimSpace(line)

		if trimmedLine == "" {
			continue
		}

		if trimmedLine == "exit" || trimmedLine == "quit" {
			break
		}

		if trimmedLine == "help" {
			printHelp()
			continue
		}

		if trimmedLine == "config" {
			showConfig()
			continue
		}

		if strings.HasPrefix(trimmedLine, "describe") ||
			strings.HasPrefix(trimmedLine, "amount") ||
			strings.HasPrefix(trimmedLine, "type") ||
			strings.HasPrefix(trimmedLine, "vendor") ||
			strings.HasPrefix(trimmedLine, "customer") ||
			strings.HasPrefix(trimmedLine, "category") ||
			trimmedLine == "form" {
			state.processFormCommand(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "suggest") || strings.HasPrefix(trimmedLine, "pick") {
			state.processSuggestionCommand(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "create") {
			state.processCreate(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "draft") {
			state.processDraftCommand(trimmedLine)
			continue
		}

		if strings.HasPrefix(trimmedLine, "post") || strings.HasPrefix(trimmedLine, "void") {
			state.processStatusChange(trimmedLine)
			continue
		}

		if trimmedLine == "entries" || trimmedLine == "balances" ||
			trimmedLine == "anomalies" || trimmedLine == "stats" {
			state.processDashboard(trimmedLine)
			continue
		}

		fmt.Println("Unknown command. Type 'help' for the command list.")
	}

	if err := state.reader.Err(); err != nil {
		log.Error().Err(err).Msg("Error reading input")
	}
}

func printHelp() {
	fmt.Println("Natural-language entry:")
	fmt.Println("  describe <text>     Set the description (auto-fills amount/type)")
	fmt.Println("  amount <value>      Set the amount manually")
	fmt.Println("  type <t>            Set the transaction type (expense, payment, receipt, purchase, sale)")
	fmt.Println("  vendor|customer|category <v>")
	fmt.Println("  form                Show the current form")
	fmt.Println("  suggest             Fetch account suggestions")
	fmt.Println("  pick <code>         Toggle a suggestion; 'pick all' / 'pick none'")
	fmt.Println("  create              Create the entry, backend chooses accounts")
	fmt.Println("  create selected     Create the entry with the picked accounts")
	fmt.Println()
	fmt.Println("Manual entry:")
	fmt.Println("  draft date|ref|memo <v>")
	fmt.Println("  draft line <accountId> debit|credit <amount> [memo]")
	fmt.Println("  draft show | check | balance | clear | submit")
	fmt.Println()
	fmt.Println("Entries and dashboards:")
	fmt.Println("  post <entryId>      Post an entry")
	fmt.Println("  void <entryId>      Void an entry (asks for a reason)")
	fmt.Println("  entries | balances | anomalies | stats")
}

func showConfig() {
	cfg, err := config.GetConfig()
	if err != nil {
		log.Error().Err(err).Msg("Error loading configuration")
		return
	}
	fmt.Printf("Backend URL:     %s\n", cfg.Backend.BaseURL)
	fmt.Printf("Company ID:      %s\n", cfg.Backend.CompanyID)
	fmt.Printf("User:            %s\n", cfg.Backend.User)
	fmt.Printf("Amount ceiling:  %s\n", cfg.AmountCeiling)
	fmt.Printf("Suggestion staleness: %d chars / %.0f%% amount change\n",
		cfg.Suggestions.DescriptionDelta, cfg.Suggestions.AmountChangeRatio*100)
}

// promptLine asks for one line of input, used for blocking prompts like the
// void reason.
func (r *replState) promptLine(prompt string) string {
	fmt.Print(prompt)
	if !r.reader.Scan() {
		return ""
	}
	return strings.TrimSpace(r.reader.Text())
}
