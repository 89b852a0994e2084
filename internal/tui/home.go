package tui

import (
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type homeView struct {
	width  int
	height int
}

func newHomeView() *homeView { return &homeView{} }

func (h *homeView) Init() tea.Cmd { return nil }

func (h *homeView) Update(msg tea.Msg) (Component, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", " ":
			return h, navigate(screens.Route{Name: screens.RouteDashboard})
		case "q", "esc":
			return h, tea.Quit
		}
	}
	return h, nil
}

func (h *homeView) View() string {
	body := lipgloss.JoinVertical(lipgloss.Center,
		headerStyle.Render("GoRestaurant"),
		titleStyle.Render("Uma verdadeira experiência Italiana."),
		mutedStyle.Render("Aproveite o melhor da culinária italiana de forma rápida e prática."),
		helpStyle.Render("enter: entrar no restaurante • q: sair"),
	)
	if h.width == 0 || h.height == 0 {
		return body
	}
	return lipgloss.Place(h.width, h.height, lipgloss.Center, lipgloss.Center, body)
}

func (h *homeView) SetSize(width, height int) {
	h.width, h.height = width, height
}
