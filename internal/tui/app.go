package tui

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/money"
	"github.com/Lixing-Zhang/kart-challenge/frontend-challenge/internal/screens"
	tea "github.com/charmbracelet/bubbletea"
)

// Backend is everything the screens need from the API
type Backend interface {
	screens.Catalog
	screens.FoodAPI
	screens.OrderLister
}

// App routes between screens. It keeps one component per entry of the
// navigation stack so going back returns to the screen as it was left.
type App struct {
	ctx     context.Context
	backend Backend
	format  *money.Formatter
	log     *slog.Logger

	stack      *screens.Stack
	components []Component
	width      int
	height     int
}

// NewApp creates the terminal app positioned at the Home screen
func NewApp(ctx context.Context, backend Backend, format *money.Formatter, log *slog.Logger) *App {
	a := &App{
		ctx:     ctx,
		backend: backend,
		format:  format,
		log:     log,
		stack:   screens.NewStack(screens.Route{Name: screens.RouteHome}),
	}
	a.components = []Component{a.build(a.stack.Current())}
	return a
}

// Run starts the program and blocks until the user quits
func Run(ctx context.Context, backend Backend, format *money.Formatter, log *slog.Logger) error {
	p := tea.NewProgram(NewApp(ctx, backend, format, log), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal ui failed: %w", err)
	}
	return nil
}

func (a *App) build(route screens.Route) Component {
	var c Component
	switch route.Name {
	case screens.RouteDashboard:
		c = newDashboardView(a.ctx, a.backend, a.format, a.log)
	case screens.RouteFoodDetails:
		c = newDetailsView(a.ctx, a.backend, a.format, a.log, route.FoodID)
	case screens.RouteOrders:
		c = newOrdersView(a.ctx, a.backend, a.format, a.log)
	default:
		c = newHomeView()
	}
	c.SetSize(a.width, a.height)
	return c
}

// Route returns the current route
func (a *App) Route() screens.Route {
	return a.stack.Current()
}

func (a *App) current() Component {
	return a.components[len(a.components)-1]
}

func (a *App) Init() tea.Cmd {
	return a.current().Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		for _, c := range a.components {
			c.SetSize(msg.Width, msg.Height)
		}
		return a, nil

	case navigateMsg:
		a.log.Debug("navigate", "route", msg.route.String())
		a.stack.Navigate(msg.route)
		c := a.build(msg.route)
		if msg.route.Name == screens.RouteHome {
			a.closeAll()
			a.components = []Component{c}
		} else {
			a.components = append(a.components, c)
		}
		return a, c.Init()

	case goBackMsg:
		if !a.stack.GoBack() {
			return a, nil
		}
		closeComponent(a.current())
		a.components = a.components[:len(a.components)-1]
		a.log.Debug("go back", "route", a.stack.Current().String())
		return a, nil
	}

	updated, cmd := a.current().Update(msg)
	a.components[len(a.components)-1] = updated
	return a, cmd
}

func (a *App) View() string {
	return a.current().View()
}

func (a *App) closeAll() {
	for _, c := range a.components {
		closeComponent(c)
	}
}

// closer is implemented by components holding requests in flight
type closer interface {
	Close()
}

func closeComponent(c Component) {
	if cl, ok := c.(closer); ok {
		cl.Close()
	}
}

func navigate(route screens.Route) tea.Cmd {
	return func() tea.Msg { return navigateMsg{route: route} }
}

func goBack() tea.Msg { return goBackMsg{} }
