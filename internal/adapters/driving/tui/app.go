// Package tui provides an interactive chat picker for the terminal.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qispark/chatpick/internal/adapters/driving/tui/components/input"
	"github.com/qispark/chatpick/internal/adapters/driving/tui/components/list"
	"github.com/qispark/chatpick/internal/adapters/driving/tui/messages"
	"github.com/qispark/chatpick/internal/adapters/driving/tui/styles"
	"github.com/qispark/chatpick/internal/core/domain"
	"github.com/qispark/chatpick/internal/core/ports/driving"
)

// App is the interactive picker following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// options derives the option lists displayed by the picker.
	options driving.OptionsService

	// session identifies the current user.
	session domain.Session

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// queryInput is the search query component.
	queryInput *input.QueryInput

	// optionList is the result list component.
	optionList *list.OptionList

	// chosen is the option the user picked, if any.
	chosen *domain.Option

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a picker backed by the given options service and session.
func NewApp(options driving.OptionsService, session domain.Session) (*App, error) {
	if options == nil {
		return nil, fmt.Errorf("creating app: %w", ErrMissingOptionsService)
	}

	s := styles.DefaultStyles()

	return &App{
		options:    options,
		session:    session,
		ctx:        context.Background(),
		styles:     s,
		queryInput: input.New(s),
		optionList: list.New(s),
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.SetWindowTitle("chatpick"),
		a.queryInput.Init(),
		a.loadOptions(""),
	)
}

// loadOptions derives options for the query off the update loop.
func (a *App) loadOptions(query string) tea.Cmd {
	return func() tea.Msg {
		result, err := a.options.SearchOptions(a.ctx, a.session, query)
		if err != nil {
			return messages.ErrMsg{Err: err}
		}
		return messages.OptionsLoadedMsg{Query: query, List: &result}
	}
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.queryInput.SetWidth(msg.Width - 6)
		a.optionList.SetSize(msg.Width, msg.Height-6)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "up", "down", "ctrl+p", "ctrl+n", "enter":
			var cmd tea.Cmd
			a.optionList, cmd = a.optionList.Update(msg)
			return a, cmd
		}

		var cmd tea.Cmd
		a.queryInput, cmd = a.queryInput.Update(msg)
		return a, cmd

	case messages.QueryChangedMsg:
		a.err = nil
		return a, a.loadOptions(msg.Query)

	case messages.OptionsLoadedMsg:
		// Drop stale results from queries the user has since revised.
		if msg.Query != a.queryInput.Value() {
			return a, nil
		}
		a.optionList.SetOptions(msg.List)
		return a, nil

	case messages.OptionChosenMsg:
		chosen := msg.Option
		a.chosen = &chosen
		return a, tea.Quit

	case messages.ErrMsg:
		a.err = msg.Err
		return a, nil
	}

	var cmd tea.Cmd
	a.queryInput, cmd = a.queryInput.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	header := a.styles.Title.Render("chatpick") +
		a.styles.Muted.Render("  "+a.session.CurrentUserLogin)

	body := a.optionList.View()
	if a.err != nil {
		body = a.styles.Error.Render("Error: " + a.err.Error())
	}

	help := a.styles.Help.Render("↑/↓ navigate · enter select · esc quit")

	return header + "\n\n" + a.queryInput.View() + "\n\n" + body + "\n\n" + help
}

// Chosen returns the option the user picked, or nil if they quit without
// selecting.
func (a *App) Chosen() *domain.Option {
	return a.chosen
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// SetDimensions sets the terminal dimensions. Primarily used in tests.
func (a *App) SetDimensions(width, height int) {
	a.Update(tea.WindowSizeMsg{Width: width, Height: height})
}

// Run starts the picker and blocks until it exits. It returns the chosen
// option, or nil if the user quit without selecting.
func (a *App) Run() (*domain.Option, error) {
	p := tea.NewProgram(a, tea.WithAltScreen())
	model, err := p.Run()
	if err != nil {
		return nil, err
	}
	if final, ok := model.(*App); ok {
		return final.Chosen(), nil
	}
	return a.Chosen(), nil
}
