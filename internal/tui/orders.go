package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	tea "github.com/charmbracelet/bubbletea"
)

type ordersView struct {
	ctx     context.Context
	state   *screens.Orders
	loading bool
	cursor  int
	width   int
	height  int
}

func newOrdersView(ctx context.Context, lister screens.OrderLister, format *money.Formatter, log *slog.Logger) *ordersView {
	return &ordersView{
		ctx:     ctx,
		state:   screens.NewOrders(lister, format, log),
		loading: true,
	}
}

func (v *ordersView) Init() tea.Cmd {
	return func() tea.Msg {
		orders, err := v.state.Fetch(v.ctx)
		return ordersLoadedMsg{orders: orders, err: err}
	}
}

func (v *ordersView) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case ordersLoadedMsg:
		v.loading = false
		v.state.Apply(msg.orders, msg.err)
		v.cursor = clamp(v.cursor, len(v.state.Items()))

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "backspace", "q":
			return v, goBack
		case "up", "k":
			if v.cursor > 0 {
				v.cursor--
			}
		case "down", "j":
			if v.cursor < len(v.state.Items())-1 {
				v.cursor++
			}
		}
	}
	return v, nil
}

func (v *ordersView) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Meus pedidos"))
	b.WriteString("\n\n")

	items := v.state.Items()
	switch {
	case v.loading:
		b.WriteString(mutedStyle.Render("Carregando..."))
		b.WriteString("\n")
	case len(items) == 0:
		b.WriteString(mutedStyle.Render("Nenhum pedido ainda"))
		b.WriteString("\n")
	}

	for i, item := range items {
		marker := "  "
		name := item.Name
		if i == v.cursor {
			marker = selectedStyle.Render("> ")
			name = selectedStyle.Render(name)
		}
		fmt.Fprintf(&b, "%s#%d %s  %s\n", marker, item.ID, name, priceStyle.Render(item.FormattedPrice))
		if item.Description != "" {
			fmt.Fprintf(&b, "    %s\n", mutedStyle.Render(truncate(item.Description, v.width-4)))
		}
	}

	if err := v.state.Err(); err != nil {
		b.WriteString(errorStyle.Render("Não foi possível carregar os pedidos: " + err.Error()))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: navegar • esc: voltar"))
	return b.String()
}

func (v *ordersView) SetSize(width, height int) {
	v.width, v.height = width, height
}
