package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui"
)

// errNotTerminal is returned when browse is started without a terminal.
var errNotTerminal = errors.New("browse needs an interactive terminal; use show instead")

// isTerminal reports whether stdin and stdout are terminals.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the lexicon interactively",
	Long: `Opens a terminal browser over the persisted lexicon.

Controls:
  ↑/k, ↓/j  - Move
  /         - Filter by disease or symptom
  Enter     - Show the full entry
  Esc       - Clear filter / close help
  ?         - Toggle help
  q         - Quit`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, _ []string) error {
	catalogue, err := requireCatalogue()
	if err != nil {
		return err
	}
	if !isTerminal() {
		return errNotTerminal
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(catalogue))
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}
	app.WithContext(cmd.Context())

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
