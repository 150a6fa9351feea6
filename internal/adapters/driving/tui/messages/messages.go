// Package messages defines bubbletea messages shared across TUI components.
package messages

import (
	"github.com/qispark/chatpick/internal/core/domain"
)

// QueryChangedMsg signals that the search query changed and results
// should be refreshed.
type QueryChangedMsg struct {
	Query string
}

// OptionsLoadedMsg carries freshly derived options for the current query.
type OptionsLoadedMsg struct {
	Query string
	List  *domain.OptionList
}

// OptionChosenMsg signals that the user picked an option.
type OptionChosenMsg struct {
	Option domain.Option
}

// ErrMsg carries an error to display.
type ErrMsg struct {
	Err error
}

// Error implements the error interface.
func (e ErrMsg) Error() string {
	return e.Err.Error()
}
