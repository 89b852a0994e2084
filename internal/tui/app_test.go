package tui

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/api"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/config"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/handlers"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/pkg/logger"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
)

func newTestApp(t *testing.T) *App {
	t.Helper()

	catalog, err := repository.LoadCatalog("")
	if err != nil {
		t.Fatalf("failed to load catalog: %v", err)
	}
	srv := httptest.NewServer(handlers.NewRouter(
		repository.NewInMemoryStore(catalog),
		config.AuthConfig{APIKeys: []string{"apitest"}},
		logger.Discard(),
	))
	t.Cleanup(srv.Close)

	client, err := api.NewClient(srv.URL, api.WithAPIKey("apitest"))
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	format, err := money.NewFormatter("pt-BR", "BRL")
	if err != nil {
		t.Fatalf("NewFormatter() error = %v", err)
	}

	return NewApp(context.Background(), client, format, logger.Discard())
}

// runCmd executes cmd and flattens batches. Commands that wait, such as
// cursor blinks and the confirmation timer, are skipped.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, runCmd(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

// send delivers msg and every message its commands produce
func send(a *App, msg tea.Msg) {
	queue := []tea.Msg{msg}
	for i := 0; len(queue) > 0 && i < 100; i++ {
		next := queue[0]
		queue = queue[1:]
		_, cmd := a.Update(next)
		queue = append(queue, runCmd(cmd)...)
	}
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(a *App, text string) {
	for _, r := range text {
		send(a, key(string(r)))
	}
}

func TestApp_OrderFlow(t *testing.T) {
	a := newTestApp(t)
	if a.Route().Name != screens.RouteHome {
		t.Fatalf("start route = %v, want Home", a.Route())
	}

	send(a, key("enter"))
	if a.Route().Name != screens.RouteDashboard {
		t.Fatalf("route = %v, want Dashboard", a.Route())
	}
	dash := a.current().(*dashboardView)
	if len(dash.state.Foods()) != 5 || len(dash.state.Categories()) != 3 {
		t.Fatalf("dashboard not loaded: %d foods, %d categories", len(dash.state.Foods()), len(dash.state.Categories()))
	}

	send(a, key("/"))
	if !dash.state.Typing() {
		t.Error("focusing the search should set typing")
	}
	typeText(a, "veg")
	if foods := dash.state.Foods(); len(foods) != 1 || foods[0].Name != "Veggie" {
		t.Fatalf("search results = %+v", foods)
	}
	send(a, key("esc"))
	if dash.state.Typing() || !dash.search.Filled() {
		t.Errorf("after blur: typing = %v filled = %v", dash.state.Typing(), dash.search.Filled())
	}

	send(a, key("enter"))
	if route := a.Route(); route.Name != screens.RouteFoodDetails || route.FoodID != 2 {
		t.Fatalf("route = %v, want FoodDetails(2)", route)
	}
	details := a.current().(*detailsView)
	if details.state.Food() == nil {
		t.Fatal("food not loaded")
	}

	send(a, key("+"))
	send(a, key("down"))
	send(a, key("+"))
	// (21.9 + 2.5) * 2
	if !details.state.Total().Equal(mustDecimal(t, "48.8")) {
		t.Errorf("total = %s, want 48.8", details.state.Total())
	}

	send(a, key("f"))
	if !details.state.IsFavorite() || details.state.FavoriteState() != screens.FavoriteConfirmed {
		t.Errorf("favorite = %v state = %v", details.state.IsFavorite(), details.state.FavoriteState())
	}
	if !strings.Contains(details.View(), "♥") {
		t.Error("view does not show the favorite icon")
	}

	send(a, key("enter"))
	if !details.state.OrderCreated() {
		t.Fatalf("order not created, alert = %+v", details.state.Alert())
	}
	if !strings.Contains(details.View(), screens.OrderConfirmedText) {
		t.Error("view does not show the confirmation")
	}

	// the confirmation timer fires goBackMsg
	send(a, goBackMsg{})
	if a.Route().Name != screens.RouteDashboard || a.current() != Component(dash) {
		t.Fatalf("route = %v, want the same Dashboard", a.Route())
	}
	if dash.search.Value() != "veg" {
		t.Errorf("dashboard lost its search text: %q", dash.search.Value())
	}

	send(a, key("o"))
	if a.Route().Name != screens.RouteOrders {
		t.Fatalf("route = %v, want Orders", a.Route())
	}
	orders := a.current().(*ordersView)
	items := orders.state.Items()
	if len(items) != 1 || items[0].Name != "Veggie" {
		t.Fatalf("orders = %+v", items)
	}
	if !strings.Contains(orders.View(), "Veggie") {
		t.Error("orders view does not list the order")
	}

	send(a, key("esc"))
	send(a, key("q"))
	if a.Route().Name != screens.RouteHome || a.stack.Depth() != 1 {
		t.Errorf("logout: route = %v depth = %d", a.Route(), a.stack.Depth())
	}
}

func TestApp_CategoryToggle(t *testing.T) {
	a := newTestApp(t)
	send(a, key("enter"))
	dash := a.current().(*dashboardView)

	send(a, key("l"))
	send(a, key(" "))
	if id, ok := dash.state.SelectedCategory(); !ok || id != 2 {
		t.Fatalf("selected = (%d, %v), want (2, true)", id, ok)
	}
	if foods := dash.state.Foods(); len(foods) != 1 || foods[0].Name != "Margherita" {
		t.Errorf("foods = %+v", foods)
	}

	send(a, key(" "))
	if _, ok := dash.state.SelectedCategory(); ok {
		t.Error("selecting twice should clear the category")
	}
	if len(dash.state.Foods()) != 5 {
		t.Errorf("got %d foods, want 5", len(dash.state.Foods()))
	}
}

func TestDashboardView_DropsStaleFoods(t *testing.T) {
	a := newTestApp(t)
	send(a, key("enter"))
	dash := a.current().(*dashboardView)

	stale := foodsLoadedMsg{seq: 0, foods: []models.Food{{ID: 9, Name: "Stale"}}}
	send(a, stale)

	for _, food := range dash.state.Foods() {
		if food.Name == "Stale" {
			t.Fatal("stale foods message was applied")
		}
	}
}

func TestDetailsView_OrderFailureShowsAlert(t *testing.T) {
	a := newTestApp(t)
	send(a, key("enter"))
	send(a, key("enter"))
	details := a.current().(*detailsView)

	send(a, orderPlacedMsg{err: api.ErrTransport})
	if details.state.OrderCreated() {
		t.Error("OrderCreated() = true after failure")
	}
	if !strings.Contains(details.View(), screens.OrderFailedTitle) {
		t.Error("view does not show the alert")
	}

	send(a, key("enter"))
	if details.state.Alert() != nil {
		t.Error("enter should dismiss the alert")
	}
	if a.Route().Name != screens.RouteFoodDetails {
		t.Errorf("route = %v, want FoodDetails", a.Route())
	}
}

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	v, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return v
}
