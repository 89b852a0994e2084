package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type detailsView struct {
	ctx   context.Context
	state *screens.FoodDetails

	// cursor walks the extras; len(extras) is the food quantity row
	cursor     int
	submitting bool
	width      int
	height     int
}

func newDetailsView(ctx context.Context, foodAPI screens.FoodAPI, format *money.Formatter, log *slog.Logger, foodID int64) *detailsView {
	return &detailsView{
		ctx:   ctx,
		state: screens.NewFoodDetails(foodAPI, format, log, foodID),
	}
}

func (v *detailsView) Init() tea.Cmd {
	return func() tea.Msg {
		food, err := v.state.FetchFood(v.ctx)
		return foodLoadedMsg{food: food, err: err}
	}
}

func (v *detailsView) checkFavorite() tea.Cmd {
	return func() tea.Msg {
		return favoriteCheckedMsg{err: v.state.FetchFavorite(v.ctx)}
	}
}

func (v *detailsView) Update(msg tea.Msg) (Component, tea.Cmd) {
	switch msg := msg.(type) {
	case foodLoadedMsg:
		v.state.ApplyFood(msg.food, msg.err)
		if msg.err != nil {
			return v, nil
		}
		return v, v.checkFavorite()

	case favoriteCheckedMsg:
		v.state.ApplyFavoriteCheck(msg.err)
		return v, nil

	case favoriteToggledMsg:
		v.state.FinishFavoriteToggle(msg.toggle, msg.err)
		return v, nil

	case orderPlacedMsg:
		v.submitting = false
		v.state.ApplyOrderResult(msg.order, msg.err)
		if msg.err != nil {
			return v, nil
		}
		return v, tea.Tick(screens.ConfirmationDelay, func(time.Time) tea.Msg { return goBackMsg{} })

	case tea.KeyMsg:
		return v, v.handleKey(msg)
	}
	return v, nil
}

func (v *detailsView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if v.state.Alert() != nil {
		switch msg.String() {
		case "enter", "esc", " ":
			v.state.DismissAlert()
		}
		return nil
	}

	// the confirmation is up until the timer navigates back
	if v.state.OrderCreated() {
		return nil
	}

	extras := v.state.Extras()

	switch msg.String() {
	case "esc", "backspace":
		return goBack
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(extras) {
			v.cursor++
		}
	case "+", "=", "right", "l":
		if v.cursor < len(extras) {
			v.state.IncrementExtra(extras[v.cursor].ID)
		} else {
			v.state.IncrementQuantity()
		}
	case "-", "left", "h":
		if v.cursor < len(extras) {
			v.state.DecrementExtra(extras[v.cursor].ID)
		} else {
			v.state.DecrementQuantity()
		}
	case "f":
		toggle, err := v.state.BeginFavoriteToggle()
		if err != nil {
			return nil
		}
		return func() tea.Msg {
			return favoriteToggledMsg{toggle: toggle, err: v.state.CommitFavoriteToggle(v.ctx, toggle)}
		}
	case "enter":
		if v.submitting {
			return nil
		}
		draft, err := v.state.OrderDraft()
		if err != nil {
			return nil
		}
		v.submitting = true
		return func() tea.Msg {
			order, err := v.state.PlaceOrder(v.ctx, draft)
			return orderPlacedMsg{order: order, err: err}
		}
	}
	return nil
}

func (v *detailsView) View() string {
	if v.state.OrderCreated() {
		return v.place(confirmationStyle.Render("✓ " + screens.OrderConfirmedText))
	}
	if alert := v.state.Alert(); alert != nil {
		return v.place(alertStyle.Render(
			lipgloss.JoinVertical(lipgloss.Left,
				errorStyle.Bold(true).Render(alert.Title),
				alert.Message,
				helpStyle.Render("enter: ok"),
			),
		))
	}

	var b strings.Builder

	b.WriteString(headerStyle.Render("← Prato"))
	b.WriteString("  ")
	b.WriteString(v.favoriteView())
	b.WriteString("\n")

	food := v.state.Food()
	if food == nil {
		if err := v.state.LoadErr(); err != nil {
			b.WriteString(errorStyle.Render("Não foi possível carregar o prato: " + err.Error()))
		} else {
			b.WriteString(mutedStyle.Render("Carregando..."))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: voltar"))
		return b.String()
	}

	b.WriteString(titleStyle.Render(food.Name))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(food.Description))
	b.WriteString("\n")
	b.WriteString(priceStyle.Render(v.state.FormattedPrice()))
	b.WriteString("\n")

	extras := v.state.Extras()
	b.WriteString(titleStyle.Render("Adicionais"))
	b.WriteString("\n")
	if len(extras) == 0 {
		b.WriteString(mutedStyle.Render("Nenhum adicional"))
		b.WriteString("\n")
	}
	for i, extra := range extras {
		fmt.Fprintf(&b, "%s%-20s %s  %s\n",
			v.marker(i),
			extra.Name,
			mutedStyle.Render(v.state.FormatValue(extra.Value)),
			stepper(extra.Quantity),
		)
	}

	b.WriteString(titleStyle.Render("Total do pedido"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s%s  %s\n",
		v.marker(len(extras)),
		priceStyle.Render(v.state.TotalText()),
		stepper(v.state.Quantity()),
	)

	if v.submitting {
		b.WriteString(mutedStyle.Render("Enviando pedido..."))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: item • +/-: quantidade • f: favorito • enter: confirmar pedido • esc: voltar"))
	return b.String()
}

func (v *detailsView) favoriteView() string {
	icon := "♡"
	if v.state.FavoriteIcon() == "favorite" {
		icon = "♥"
	}

	switch v.state.FavoriteState() {
	case screens.FavoritePending:
		icon += mutedStyle.Render(" ...")
	case screens.FavoriteFailed:
		icon += errorStyle.Render(" !")
	}
	return favoriteStyle.Render(icon)
}

func (v *detailsView) marker(row int) string {
	if row == v.cursor {
		return selectedStyle.Render("> ")
	}
	return "  "
}

func (v *detailsView) place(s string) string {
	if v.width == 0 || v.height == 0 {
		return s
	}
	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, s)
}

func (v *detailsView) SetSize(width, height int) {
	v.width, v.height = width, height
}

func stepper(n int) string {
	return fmt.Sprintf("[-] %s [+]", selectedStyle.Render(strconv.Itoa(n)))
}
