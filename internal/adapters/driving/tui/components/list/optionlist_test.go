package list

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qispark/chatpick/internal/adapters/driving/tui/messages"
	"github.com/qispark/chatpick/internal/core/domain"
)

func sampleOptions() *domain.OptionList {
	return &domain.OptionList{
		RecentReports: []domain.Option{
			{Text: "Alice", Login: "a@x.com", KeyForList: "1"},
			{Text: "Bob", Login: "b@x.com", KeyForList: "2", IsPinned: true},
		},
		PersonalDetails: []domain.Option{
			{Text: "Carol", Login: "c@x.com", KeyForList: "c@x.com"},
		},
		UserToInvite: &domain.Option{Text: "new@x.com", Login: "new@x.com", KeyForList: "new@x.com"},
	}
}

func TestOptionList_EmptyShowsNoResults(t *testing.T) {
	l := New(nil)

	l.SetOptions(&domain.OptionList{})

	assert.Contains(t, l.View(), "No results found.")
	assert.Zero(t, l.Len())
	assert.Nil(t, l.Selected())
}

func TestOptionList_RendersSections(t *testing.T) {
	l := New(nil)

	l.SetOptions(sampleOptions())

	view := l.View()
	assert.Contains(t, view, "Recent chats:")
	assert.Contains(t, view, "Contacts:")
	assert.Contains(t, view, "Invite:")
	assert.Contains(t, view, "Alice")
	assert.Contains(t, view, "Carol")
	assert.Contains(t, view, "new@x.com")
	assert.Equal(t, 4, l.Len())
}

func TestOptionList_RendersMarkers(t *testing.T) {
	l := New(nil)
	l.SetOptions(&domain.OptionList{
		RecentReports: []domain.Option{
			{Text: "Bob", KeyForList: "1", IsPinned: true, IsUnread: true},
			{Text: "Dana", KeyForList: "2", HasOutstandingIOU: true, IOUReportAmount: 1250},
		},
	})

	view := l.View()
	assert.Contains(t, view, "[pinned]")
	assert.Contains(t, view, "[unread]")
	assert.Contains(t, view, "[owes 1250]")
}

func TestOptionList_OwnerDoesNotShowOwes(t *testing.T) {
	l := New(nil)
	l.SetOptions(&domain.OptionList{
		RecentReports: []domain.Option{
			{Text: "Dana", KeyForList: "1", HasOutstandingIOU: true,
				IsIOUReportOwner: true, IOUReportAmount: 1250},
		},
	})

	assert.NotContains(t, l.View(), "[owes")
}

func TestOptionList_Navigation(t *testing.T) {
	l := New(nil)
	l.SetOptions(sampleOptions())

	require.Equal(t, 0, l.Cursor())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, l.Cursor())
	assert.Equal(t, "Bob", l.Selected().Text)

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Cursor())

	// Cursor clamps at the top.
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, l.Cursor())
}

func TestOptionList_CursorClampsAtBottom(t *testing.T) {
	l := New(nil)
	l.SetOptions(sampleOptions())

	for i := 0; i < 10; i++ {
		l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	}

	assert.Equal(t, 3, l.Cursor())
	assert.Equal(t, "new@x.com", l.Selected().Text)
}

func TestOptionList_EnterEmitsChosen(t *testing.T) {
	l := New(nil)
	l.SetOptions(sampleOptions())

	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := l.Update(tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	msg, ok := cmd().(messages.OptionChosenMsg)
	require.True(t, ok)
	assert.Equal(t, "b@x.com", msg.Option.Login)
}

func TestOptionList_BlurIgnoresKeys(t *testing.T) {
	l := New(nil)
	l.SetOptions(sampleOptions())
	l.Blur()

	l, cmd := l.Update(tea.KeyMsg{Type: tea.KeyDown})

	assert.Nil(t, cmd)
	assert.Equal(t, 0, l.Cursor())
}

func TestOptionList_ResetOnNewOptions(t *testing.T) {
	l := New(nil)
	l.SetOptions(sampleOptions())
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})
	l, _ = l.Update(tea.KeyMsg{Type: tea.KeyDown})

	l.SetOptions(&domain.OptionList{
		RecentReports: []domain.Option{{Text: "Only", KeyForList: "9"}},
	})

	assert.Equal(t, 0, l.Cursor())
	assert.Equal(t, "Only", l.Selected().Text)
}
