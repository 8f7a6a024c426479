package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/symptomlex/internal/core/domain"
	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

var (
	buildArchive string
	buildOutput  string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the symptom lexicon",
	Long: `Harvests disease names from the directory, merges them with the local
archive, resolves symptoms for every name and writes the lexicon with
duplicate symptom descriptions removed.

Pages or diseases that fail are reported and skipped. The command only
fails when the lexicon cannot be written.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildArchive, "archive", "", "name archive to merge (overrides paths.archive)")
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "lexicon output file (overrides paths.output)")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, _ []string) error {
	builder, err := requireBuilder()
	if err != nil {
		return err
	}

	result, err := builder.Build(cmd.Context(), driving.BuildOptions{
		ArchivePath: buildArchive,
		OutputPath:  buildOutput,
	})
	if result != nil {
		printBuildReport(cmd, outputStyles(cmd), result)
	}
	if err != nil {
		return fmt.Errorf("build failed: %w", err)
	}
	return nil
}

func printBuildReport(cmd *cobra.Command, st *styles.Styles, result *domain.BuildResult) {
	cmd.Println(st.Title.Render("Build summary"))
	printStages(cmd, st, result.Report.Stages())

	cmd.Println()
	cmd.Printf("Unique names:     %d\n", result.Summary.UniqueNames)
	cmd.Printf("Resolved:         %d\n", result.Summary.Resolved)
	cmd.Printf("Kept after dedup: %s\n", st.Success.Render(fmt.Sprint(result.Summary.Kept)))
	if result.Summary.Failures > 0 {
		cmd.Printf("Failures:         %s\n", st.Error.Render(fmt.Sprint(result.Summary.Failures)))
	}
}

// printStages writes one line per stage, then every failed item.
func printStages(cmd *cobra.Command, st *styles.Styles, stages []domain.StageReport) {
	var failed []string
	for _, stage := range stages {
		if stage.Stage == "" {
			continue
		}
		cmd.Printf("  %-9s %s\n", stage.Stage, stageCounts(st, stage))
		for _, o := range stage.Filter(domain.OutcomeFailed) {
			failed = append(failed, fmt.Sprintf("%s %s: %s", stage.Stage, o.Key, o.Reason))
		}
	}

	if len(failed) == 0 {
		return
	}
	cmd.Println()
	cmd.Println(st.Subtitle.Render("Failed items"))
	for _, line := range failed {
		cmd.Println("  " + st.Error.Render(line))
	}
}

func stageCounts(st *styles.Styles, stage domain.StageReport) string {
	parts := []string{
		st.Success.Render(fmt.Sprintf("%d succeeded", stage.Count(domain.OutcomeSucceeded))),
		st.Warning.Render(fmt.Sprintf("%d skipped", stage.Count(domain.OutcomeSkipped))),
	}
	if n := stage.Count(domain.OutcomeFailed); n > 0 {
		parts = append(parts, st.Error.Render(fmt.Sprintf("%d failed", n)))
	}
	return strings.Join(parts, ", ")
}
