package screens

import (
	"fmt"
	"sync"
)

// RouteName identifies a screen
type RouteName string

const (
	RouteHome        RouteName = "Home"
	RouteDashboard   RouteName = "Dashboard"
	RouteFoodDetails RouteName = "FoodDetails"
	RouteOrders      RouteName = "Orders"
)

// Route is a screen plus its parameters. FoodID is only set for FoodDetails.
type Route struct {
	Name   RouteName
	FoodID int64
}

func (r Route) String() string {
	if r.Name == RouteFoodDetails {
		return fmt.Sprintf("%s(%d)", r.Name, r.FoodID)
	}
	return string(r.Name)
}

// Stack is a navigation history. The zero value starts at Home.
type Stack struct {
	mu     sync.Mutex
	routes []Route
}

// NewStack creates a stack positioned at start
func NewStack(start Route) *Stack {
	return &Stack{routes: []Route{start}}
}

// Navigate pushes route. Navigating Home clears the history, which is how
// logging out works.
func (s *Stack) Navigate(route Route) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if route.Name == RouteHome {
		s.routes = []Route{route}
		return
	}
	if len(s.routes) == 0 {
		s.routes = []Route{{Name: RouteHome}}
	}
	s.routes = append(s.routes, route)
}

// GoBack pops the current route. It reports false when there is nowhere to go.
func (s *Stack) GoBack() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.routes) <= 1 {
		return false
	}
	s.routes = s.routes[:len(s.routes)-1]
	return true
}

// Current returns the route on top of the stack
func (s *Stack) Current() Route {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.routes) == 0 {
		return Route{Name: RouteHome}
	}
	return s.routes[len(s.routes)-1]
}

// Depth returns the number of routes in the history
func (s *Stack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.routes) == 0 {
		return 1
	}
	return len(s.routes)
}
