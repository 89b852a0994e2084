package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardView struct {
	ctx    context.Context
	state  *screens.Dashboard
	search SearchInput

	categoryCursor int
	foodCursor     int
	width          int
	height         int
}

func newDashboardView(ctx context.Context, catalog screens.Catalog, format *money.Formatter, log *slog.Logger) *dashboardView {
	state := screens.NewDashboard(catalog, format, log)

	v := &dashboardView{
		ctx:    ctx,
		state:  state,
		search: NewSearchInput("Qual comida você procura?"),
	}
	v.search.OnFocusEnter = func() { state.SetTyping(true) }
	v.search.OnFocusExit = func() { state.SetTyping(false) }
	return v
}

func (v *dashboardView) Init() tea.Cmd {
	return tea.Batch(v.loadCategories(), v.fetchFoods())
}

func (v *dashboardView) loadCategories() tea.Cmd {
	return func() tea.Msg {
		categories, err := v.state.FetchCategories(v.ctx)
		return categoriesLoadedMsg{categories: categories, err: err}
	}
}

// fetchFoods starts a fetch for the current filter, superseding the one in flight
func (v *dashboardView) fetchFoods() tea.Cmd {
	fetch := v.state.BeginFoodsFetch(v.ctx)
	return func() tea.Msg {
		foods, err := v.state.FetchFoods(fetch)
		return foodsLoadedMsg{seq: fetch.Seq, foods: foods, err: err}
	}
}

func (v *dashboardView) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case categoriesLoadedMsg:
		v.state.ApplyCategories(msg.categories, msg.err)
		return v, nil

	case foodsLoadedMsg:
		if v.state.ApplyFoods(msg.seq, msg.foods, msg.err) {
			v.foodCursor = clamp(v.foodCursor, len(v.state.Foods()))
		}
		return v, nil

	case tea.KeyMsg:
		if v.search.Focused() {
			return v, v.updateSearch(msg)
		}
		return v, v.handleKey(msg)
	}

	if v.search.Focused() {
		return v, v.search.Update(msg)
	}
	return v, nil
}

func (v *dashboardView) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "tab":
		v.search.Blur()
		return nil
	}

	before := v.search.Value()
	cmd := v.search.Update(msg)
	if v.search.Value() == before {
		return cmd
	}

	v.state.SetSearch(v.search.Value())
	return tea.Batch(cmd, v.fetchFoods())
}

func (v *dashboardView) handleKey(msg tea.KeyMsg) tea.Cmd {
	categories := v.state.Categories()
	foods := v.state.Foods()

	switch msg.String() {
	case "/", "s":
		return v.search.Focus()
	case "left", "h":
		if v.categoryCursor > 0 {
			v.categoryCursor--
		}
	case "right", "l":
		if v.categoryCursor < len(categories)-1 {
			v.categoryCursor++
		}
	case " ", "c":
		if len(categories) == 0 {
			return nil
		}
		v.state.SelectCategory(categories[v.categoryCursor].ID)
		return v.fetchFoods()
	case "up", "k":
		if v.foodCursor > 0 {
			v.foodCursor--
		}
	case "down", "j":
		if v.foodCursor < len(foods)-1 {
			v.foodCursor++
		}
	case "enter":
		if len(foods) == 0 {
			return nil
		}
		food := foods[clamp(v.foodCursor, len(foods))]
		return navigate(screens.Route{Name: screens.RouteFoodDetails, FoodID: food.ID})
	case "o":
		return navigate(screens.Route{Name: screens.RouteOrders})
	case "q", "x":
		return navigate(screens.Route{Name: screens.RouteHome})
	}
	return nil
}

func (v *dashboardView) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("GoRestaurant"))
	b.WriteString(mutedStyle.Render("  q: sair"))
	b.WriteString("\n\n")
	b.WriteString(v.search.View())
	b.WriteString("\n")

	if !v.state.Typing() {
		b.WriteString(titleStyle.Render("Categorias"))
		b.WriteString("\n")
		b.WriteString(v.categoriesView())
		b.WriteString("\n")
	}

	b.WriteString(titleStyle.Render("Pratos"))
	b.WriteString("\n")

	foods := v.state.Foods()
	if len(foods) == 0 {
		b.WriteString(mutedStyle.Render("Nenhum prato encontrado"))
		b.WriteString("\n")
	}
	for i, food := range foods {
		cursor := "  "
		name := food.Name
		if i == v.foodCursor {
			cursor = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s%s  %s\n", cursor, name, priceStyle.Render(food.FormattedPrice))
		if food.Description != "" {
			fmt.Fprintf(&b, "    %s\n", mutedStyle.Render(truncate(food.Description, v.width-4)))
		}
	}

	if err := v.state.Err(); err != nil {
		b.WriteString(errorStyle.Render("Não foi possível carregar: " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("/: buscar • ←/→ espaço: categoria • ↑/↓ enter: detalhes • o: meus pedidos"))
	return b.String()
}

func (v *dashboardView) categoriesView() string {
	categories := v.state.Categories()
	if len(categories) == 0 {
		return mutedStyle.Render("...")
	}

	selected, hasSelected := v.state.SelectedCategory()
	cells := make([]string, 0, len(categories))
	for i, category := range categories {
		style := categoryStyle
		if hasSelected && category.ID == selected {
			style = activeCategoryStyle
		}
		title := category.Title
		if i == v.categoryCursor {
			title = "› " + title
		}
		cells = append(cells, style.Render(title))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (v *dashboardView) SetSize(width, height int) {
	v.width, v.height = width, height
	if width > 10 {
		v.search.SetWidth(width - 10)
	}
}

// Close cancels the foods fetch in flight
func (v *dashboardView) Close() {
	v.state.Close()
}

func clamp(i, n int) int {
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	return i
}

func truncate(s string, width int) string {
	if width <= 3 {
		return s
	}
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
