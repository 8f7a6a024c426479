package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/symptomlex/internal/core/domain"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup NAME",
	Short: "Resolve the symptoms of one disease",
	Long: `Searches the web for the disease and reads the symptoms from the first
encyclopedia infobox that lists them. Nothing is written to disk.

Quote names that contain spaces:
  symptomlex lookup "Yellow fever"`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	builder, err := requireBuilder()
	if err != nil {
		return err
	}

	res, err := builder.Lookup(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("lookup failed: %w", err)
	}

	st := outputStyles(cmd)
	cmd.Println(st.Disease.Render(res.Disease))

	switch res.Outcome.Status {
	case domain.OutcomeFailed:
		if res.Outcome.Err != nil {
			return fmt.Errorf("lookup failed: %w", res.Outcome.Err)
		}
		return fmt.Errorf("lookup failed: %s", res.Outcome.Reason)
	case domain.OutcomeSucceeded:
		cmd.Printf("  Symptoms: %s\n", st.Symptoms.Render(res.Symptoms))
		cmd.Printf("  Source:   %s\n", st.Muted.Render(res.Source))
	default:
		cmd.Printf("  %s\n", st.Warning.Render("No symptoms found"))
		if res.Outcome.Reason != "" {
			cmd.Printf("  Reason:   %s\n", res.Outcome.Reason)
		}
	}
	cmd.Printf("  Pages scanned: %d\n", res.CandidatesScanned)
	return nil
}
