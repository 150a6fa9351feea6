// Package input provides the query input component for the picker.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/qispark/chatpick/internal/adapters/driving/tui/messages"
	"github.com/qispark/chatpick/internal/adapters/driving/tui/styles"
)

// QueryInput wraps a text input for typing search queries.
type QueryInput struct {
	input  textinput.Model
	styles *styles.Styles
}

// New creates a query input component.
func New(s *styles.Styles) *QueryInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Search chats and contacts..."
	ti.CharLimit = 256
	ti.Prompt = "> "
	ti.Focus()

	return &QueryInput{
		input:  ti,
		styles: s,
	}
}

// Init implements tea.Model.
func (q *QueryInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and emits QueryChangedMsg when the text changes.
func (q *QueryInput) Update(msg tea.Msg) (*QueryInput, tea.Cmd) {
	before := q.input.Value()

	var cmd tea.Cmd
	q.input, cmd = q.input.Update(msg)

	if q.input.Value() != before {
		query := q.input.Value()
		return q, tea.Batch(cmd, func() tea.Msg {
			return messages.QueryChangedMsg{Query: query}
		})
	}

	return q, cmd
}

// View renders the input field.
func (q *QueryInput) View() string {
	return q.styles.InputField.Render(q.input.View())
}

// Value returns the current query text.
func (q *QueryInput) Value() string {
	return q.input.Value()
}

// SetValue replaces the query text.
func (q *QueryInput) SetValue(value string) {
	q.input.SetValue(value)
}

// Reset clears the query text.
func (q *QueryInput) Reset() {
	q.input.Reset()
}

// SetWidth sets the input width.
func (q *QueryInput) SetWidth(width int) {
	q.input.Width = width
}
