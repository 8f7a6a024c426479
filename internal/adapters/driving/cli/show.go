package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

var (
	showSearch string
	showLimit  int
	showJSON   bool
	showRuns   bool
)

var showCmd = &cobra.Command{
	Use:   "show [NAME]",
	Short: "Print the persisted lexicon",
	Long: `Prints the lexicon written by the last build, or the entry for NAME.

--search keeps entries whose disease or symptoms contain the text,
ignoring case. --runs lists recent builds when the lexicon is stored in
SQLite.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showSearch, "search", "s", "", "only entries containing this text")
	showCmd.Flags().IntVarP(&showLimit, "limit", "n", 0, "maximum number of entries (0 = all)")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	showCmd.Flags().BoolVar(&showRuns, "runs", false, "list recent builds instead of entries")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	catalogue, err := requireCatalogue()
	if err != nil {
		return err
	}

	if showRuns {
		return showRunHistory(cmd, catalogue)
	}

	var entries []domain.SymptomEntry
	if len(args) == 1 {
		entry, err := catalogue.Get(cmd.Context(), args[0])
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%q is not in the lexicon", args[0])
		}
		if err != nil {
			return fmt.Errorf("show failed: %w", err)
		}
		entries = []domain.SymptomEntry{*entry}
	} else {
		entries, err = catalogue.Search(cmd.Context(), showSearch, showLimit)
		if err != nil {
			return fmt.Errorf("show failed: %w", err)
		}
	}

	if showJSON {
		return outputEntriesJSON(cmd, entries)
	}
	outputEntries(cmd, outputStyles(cmd), entries)
	return nil
}

func outputEntriesJSON(cmd *cobra.Command, entries []domain.SymptomEntry) error {
	data, err := json.MarshalIndent(domain.SymptomRecordFromEntries(entries), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal entries: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputEntries(cmd *cobra.Command, st *styles.Styles, entries []domain.SymptomEntry) {
	if len(entries) == 0 {
		cmd.Println("No entries found.")
		return
	}
	for _, e := range entries {
		cmd.Printf("%s: %s\n", st.Disease.Render(e.Disease), st.Symptoms.Render(e.Symptoms))
	}
	cmd.Println()
	cmd.Printf("%d entries\n", len(entries))
}

func showRunHistory(cmd *cobra.Command, catalogue driving.LexiconCatalogue) error {
	limit := showLimit
	if limit <= 0 {
		limit = 10
	}
	runs, err := catalogue.Runs(cmd.Context(), limit)
	if err != nil {
		return fmt.Errorf("listing runs failed: %w", err)
	}
	if len(runs) == 0 {
		cmd.Println("No build history recorded.")
		return nil
	}

	for _, r := range runs {
		took := "-"
		if !r.FinishedAt.IsZero() {
			took = r.FinishedAt.Sub(r.StartedAt).Round(time.Second).String()
		}
		cmd.Printf("%s  %s  names=%d resolved=%d kept=%d failures=%d  (%s)\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"), r.ID,
			r.UniqueNames, r.Resolved, r.Kept, r.Failures, took)
	}
	return nil
}
