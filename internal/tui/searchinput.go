package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchInput is a text field that tracks focus. OnFocusEnter and
// OnFocusExit fire once per focus and blur transition. The focused and
// filled flags only drive the icon tint.
type SearchInput struct {
	input  textinput.Model
	filled bool

	OnFocusEnter func()
	OnFocusExit  func()
}

// NewSearchInput creates an unfocused input with a placeholder
func NewSearchInput(placeholder string) SearchInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 64
	ti.Width = 40

	return SearchInput{input: ti}
}

// Focus gives the input focus. Focusing a focused input does nothing.
func (s *SearchInput) Focus() tea.Cmd {
	if s.input.Focused() {
		return nil
	}

	cmd := s.input.Focus()
	if s.OnFocusEnter != nil {
		s.OnFocusEnter()
	}
	return cmd
}

// Blur removes focus and records whether the input holds text
func (s *SearchInput) Blur() {
	if !s.input.Focused() {
		return
	}

	s.input.Blur()
	s.filled = s.input.Value() != ""
	if s.OnFocusExit != nil {
		s.OnFocusExit()
	}
}

func (s *SearchInput) Focused() bool { return s.input.Focused() }

// Filled reports whether the input held text when it last lost focus
func (s *SearchInput) Filled() bool { return s.filled }

func (s *SearchInput) Value() string { return s.input.Value() }

func (s *SearchInput) SetValue(v string) { s.input.SetValue(v) }

func (s *SearchInput) SetWidth(w int) { s.input.Width = w }

// IconColor is the active tint while focused or filled
func (s *SearchInput) IconColor() lipgloss.Color {
	if s.input.Focused() || s.filled {
		return colorPrimary
	}
	return colorInactive
}

// Update forwards key input to the text field while focused
func (s *SearchInput) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

func (s *SearchInput) View() string {
	icon := lipgloss.NewStyle().Foreground(s.IconColor()).Render("⌕")
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(s.IconColor()).
		Padding(0, 1)
	return border.Render(icon + " " + s.input.View())
}
