// Package tui renders the app screens in the terminal with bubbletea.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Component is one screen of the terminal UI.
// Each component owns its screen state, handles the messages meant for it
// and renders its own view.
type Component interface {
	// Init returns the commands that load the screen.
	Init() tea.Cmd

	// Update handles messages and returns the updated component and command.
	Update(msg tea.Msg) (Component, tea.Cmd)

	// View renders the component to a string.
	View() string

	// SetSize updates the component's dimensions.
	SetSize(width, height int)
}
