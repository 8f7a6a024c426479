package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/symptomlex/internal/core/ports/driving"
)

var (
	namesArchive string
	namesExport  string
	namesQuiet   bool
)

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "List the unified disease names",
	Long: `Harvests the directory and loads the archive, then prints the sorted,
de-duplicated union of both. No symptoms are looked up.

Use --export to save the names as an archive for later builds. The format
follows the file extension: .json, .toml or plain text.`,
	Args: cobra.NoArgs,
	RunE: runNames,
}

func init() {
	namesCmd.Flags().StringVar(&namesArchive, "archive", "", "name archive to merge (overrides paths.archive)")
	namesCmd.Flags().StringVar(&namesExport, "export", "", "write the names to this archive file")
	namesCmd.Flags().BoolVarP(&namesQuiet, "quiet", "q", false, "do not print the names")
	rootCmd.AddCommand(namesCmd)
}

func runNames(cmd *cobra.Command, _ []string) error {
	builder, err := requireBuilder()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	names, report, err := builder.Names(ctx, driving.BuildOptions{ArchivePath: namesArchive})
	if err != nil {
		return fmt.Errorf("collecting names failed: %w", err)
	}

	if !namesQuiet {
		for _, name := range names.Names() {
			cmd.Println(name)
		}
	}

	st := outputStyles(cmd)
	cmd.Println()
	printStages(cmd, st, report.Stages())
	cmd.Printf("Total unique diseases: %d\n", names.Len())

	if namesExport == "" {
		return nil
	}
	if err := builder.ExportNames(ctx, namesExport, names); err != nil {
		return err
	}
	cmd.Printf("Exported %d names to %s\n", names.Len(), namesExport)
	return nil
}
