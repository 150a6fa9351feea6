// Package list provides the option list component for the picker.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/qispark/chatpick/internal/adapters/driving/tui/messages"
	"github.com/qispark/chatpick/internal/adapters/driving/tui/styles"
	"github.com/qispark/chatpick/internal/core/domain"
)

// row is one selectable entry, flattened across sections.
type row struct {
	option  domain.Option
	section string
	invite  bool
}

// OptionList renders a categorised option list with a movable cursor.
type OptionList struct {
	rows    []row
	cursor  int
	height  int
	width   int
	styles  *styles.Styles
	focused bool
}

// New creates an option list component.
func New(s *styles.Styles) *OptionList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &OptionList{
		styles:  s,
		height:  20,
		focused: true,
	}
}

// SetOptions replaces the displayed options and resets the cursor.
func (l *OptionList) SetOptions(options *domain.OptionList) {
	l.rows = l.rows[:0]

	if options == nil {
		l.cursor = 0
		return
	}

	for _, opt := range options.RecentReports {
		l.rows = append(l.rows, row{option: opt, section: "Recent chats"})
	}
	for _, opt := range options.PersonalDetails {
		l.rows = append(l.rows, row{option: opt, section: "Contacts"})
	}
	if options.UserToInvite != nil {
		l.rows = append(l.rows, row{option: *options.UserToInvite, section: "Invite", invite: true})
	}

	if l.cursor >= len(l.rows) {
		l.cursor = 0
	}
}

// Update handles navigation keys.
func (l *OptionList) Update(msg tea.Msg) (*OptionList, tea.Cmd) {
	if !l.focused {
		return l, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return l, nil
	}

	switch keyMsg.String() {
	case "up", "ctrl+p":
		if l.cursor > 0 {
			l.cursor--
		}
	case "down", "ctrl+n":
		if l.cursor < len(l.rows)-1 {
			l.cursor++
		}
	case "enter":
		if l.cursor < len(l.rows) {
			chosen := l.rows[l.cursor].option
			return l, func() tea.Msg {
				return messages.OptionChosenMsg{Option: chosen}
			}
		}
	}

	return l, nil
}

// View renders the list with section headers.
func (l *OptionList) View() string {
	if len(l.rows) == 0 {
		return l.styles.Muted.Render("No results found.")
	}

	var b strings.Builder
	lastSection := ""

	for i, r := range l.rows {
		if r.section != lastSection {
			if lastSection != "" {
				b.WriteString("\n")
			}
			b.WriteString(l.styles.Section.Render(r.section + ":"))
			b.WriteString("\n")
			lastSection = r.section
		}

		b.WriteString(l.renderRow(r, i == l.cursor))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// renderRow renders one option line with its status markers.
func (l *OptionList) renderRow(r row, selected bool) string {
	text := r.option.Text

	markers := rowMarkers(r.option)
	if len(markers) > 0 {
		text += " " + strings.Join(markers, " ")
	}

	var line string
	if selected {
		line = l.styles.Selected.Render("> " + text)
	} else {
		line = l.styles.Normal.Render("  " + text)
	}

	if alt := r.option.AlternateText; alt != "" && alt != r.option.Text {
		line += l.styles.Muted.Render("  " + alt)
	}

	return line
}

// rowMarkers returns the status markers for an option.
func rowMarkers(opt domain.Option) []string {
	var markers []string
	if opt.IsPinned {
		markers = append(markers, "[pinned]")
	}
	if opt.IsUnread {
		markers = append(markers, "[unread]")
	}
	if opt.HasDraftComment {
		markers = append(markers, "[draft]")
	}
	if opt.HasOutstandingIOU && !opt.IsIOUReportOwner {
		markers = append(markers, fmt.Sprintf("[owes %d]", opt.IOUReportAmount))
	}
	if opt.IsArchivedRoom {
		markers = append(markers, "[archived]")
	}
	if opt.BrickRoadIndicator {
		markers = append(markers, "[error]")
	}
	return markers
}

// Selected returns the option under the cursor, or nil when empty.
func (l *OptionList) Selected() *domain.Option {
	if l.cursor >= len(l.rows) {
		return nil
	}
	opt := l.rows[l.cursor].option
	return &opt
}

// Len returns the number of selectable rows.
func (l *OptionList) Len() int {
	return len(l.rows)
}

// Cursor returns the cursor position.
func (l *OptionList) Cursor() int {
	return l.cursor
}

// SetSize sets the render dimensions.
func (l *OptionList) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// Focus enables navigation.
func (l *OptionList) Focus() {
	l.focused = true
}

// Blur disables navigation.
func (l *OptionList) Blur() {
	l.focused = false
}
