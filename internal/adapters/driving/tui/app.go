package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/symptomlex/internal/adapters/driving/tui/styles"
)

// App is the lexicon browser following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keys   *keymap.KeyMap

	filter *input.FilterInput
	list   *list.EntryList
	bar    *status.Bar

	// expanded shows the selected entry's full text below the list.
	expanded bool

	// showHelp replaces the list with the key reference.
	showHelp bool

	err error

	width  int
	height int
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a browser over the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keys:   km,
		filter: input.NewFilterInput(s),
		list:   list.NewEntryList(s),
		bar:    status.NewBar(s, km),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It loads the lexicon.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("symptomlex - Lexicon"),
		a.loadEntries(),
	)
}

func (a *App) loadEntries() tea.Cmd {
	catalogue := a.ports.Catalogue
	ctx := a.ctx
	return func() tea.Msg {
		entries, err := catalogue.List(ctx)
		return messages.EntriesLoaded{Entries: entries, Err: err}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case messages.EntriesLoaded:
		if msg.Err != nil {
			a.err = msg.Err
			a.bar.SetState(status.StateError)
			a.bar.SetMessage(msg.Err.Error())
			return a, nil
		}
		a.err = nil
		a.list.SetEntries(msg.Entries)
		a.bar.SetState(status.StateReady)
		a.syncCounts()
		return a, nil

	case messages.FilterChanged:
		a.list.SetFilter(msg.Text)
		a.syncCounts()
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	if keyStr == "ctrl+c" {
		return a, tea.Quit
	}

	if a.filter.Focused() {
		return a.handleFilterKey(msg)
	}

	switch {
	case keymap.Matches(keyStr, a.keys.Quit):
		return a, tea.Quit
	case keymap.Matches(keyStr, a.keys.Help):
		a.showHelp = !a.showHelp
	case keymap.Matches(keyStr, a.keys.Filter):
		a.showHelp = false
		a.bar.SetState(status.StateFiltering)
		return a, a.filter.Focus()
	case keymap.Matches(keyStr, a.keys.Clear):
		if a.showHelp {
			a.showHelp = false
		} else if a.filter.Value() != "" {
			a.filter.Reset()
			return a.Update(messages.FilterChanged{Text: ""})
		}
	case keymap.Matches(keyStr, a.keys.Up):
		a.list.MoveUp()
	case keymap.Matches(keyStr, a.keys.Down):
		a.list.MoveDown()
	case keymap.Matches(keyStr, a.keys.PageUp):
		a.list.PageUp()
	case keymap.Matches(keyStr, a.keys.PageDown):
		a.list.PageDown()
	case keymap.Matches(keyStr, a.keys.Expand):
		a.expanded = !a.expanded
	}
	return a, nil
}

func (a *App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type { //nolint:exhaustive // remaining keys go to the input
	case tea.KeyEsc, tea.KeyEnter:
		a.filter.Blur()
		a.bar.SetState(status.StateReady)
		return a, nil
	case tea.KeyUp:
		a.list.MoveUp()
		return a, nil
	case tea.KeyDown:
		a.list.MoveDown()
		return a, nil
	}

	before := a.filter.Value()
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(msg)
	if after := a.filter.Value(); after != before {
		_, _ = a.Update(messages.FilterChanged{Text: after})
	}
	return a, cmd
}

func (a *App) syncCounts() {
	a.bar.SetCounts(a.list.Count(), a.list.Total())
}

// View implements tea.Model.
func (a *App) View() string {
	sections := []string{
		a.styles.Title.Render("symptomlex"),
		a.filter.View(),
	}

	switch {
	case a.err != nil:
		sections = append(sections, a.styles.Error.Render("Could not load lexicon: "+a.err.Error()))
	case a.showHelp:
		sections = append(sections, a.helpView())
	default:
		sections = append(sections, a.list.View())
		if a.expanded {
			if entry := a.list.SelectedEntry(); entry != nil {
				detail := a.styles.Disease.Render(entry.Disease) + "\n" +
					a.styles.Symptoms.Render(entry.Symptoms)
				sections = append(sections, a.styles.Detail.Width(max(a.width-4, 20)).Render(detail))
			}
		}
	}

	sections = append(sections, a.bar.View())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) helpView() string {
	var lines []string
	for _, group := range a.keys.FullHelp() {
		for _, b := range group {
			h := b.Help()
			lines = append(lines, fmt.Sprintf("  %-8s %s", h.Key, h.Desc))
		}
		lines = append(lines, "")
	}
	return a.styles.Subtitle.Render("Keys") + "\n\n" + strings.Join(lines, "\n")
}

// SetDimensions sizes every component to the terminal.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.filter.SetWidth(width)
	a.bar.SetWidth(width)
	// Title, filter box (three rows), status bar and a detail panel.
	a.list.SetDimensions(width, max(height-10, 3))
}

// Entries returns the number of visible entries.
func (a *App) Entries() int {
	return a.list.Count()
}

// Selected returns the disease under the cursor, or "" if none.
func (a *App) Selected() string {
	if entry := a.list.SelectedEntry(); entry != nil {
		return entry.Disease
	}
	return ""
}

// Filtering reports whether the filter input has focus.
func (a *App) Filtering() bool {
	return a.filter.Focused()
}

// Err returns the last load error.
func (a *App) Err() error {
	return a.err
}
