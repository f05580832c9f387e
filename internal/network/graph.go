// Package network holds the station graph and the shortest-path cache used
// by the dispatch engine.
package network

import (
	"fmt"
	"freight-dispatch-service/internal/domain"
)

type edge struct {
	to    int
	route int
}

// Graph is an immutable weighted undirected graph of stations.
type Graph struct {
	stations []domain.Station
	routes   []domain.Route
	index    map[string]int
	adj      [][]edge                    // neighbours in route input order
	byPair   map[int]map[int]domain.Route // u -> v -> route
}

// NewGraph builds a Graph from station names and route rows, returning an
// error if any name is duplicated, a route loops on one station, has a
// non-positive cost, or references a missing station.
//
// These checks do not rely on services.ValidateInput having run: a Graph
// built directly from rows never holds a looping, unpriced or dangling route.
func NewGraph(stations []string, routes []domain.RouteRow) (*Graph, error) {
	if len(stations) == 0 {
		return nil, fmt.Errorf("new graph: no station defined: %w", domain.ErrEmptyInput)
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("new graph: no route defined between stations: %w", domain.ErrEmptyInput)
	}

	g := &Graph{
		stations: make([]domain.Station, 0, len(stations)),
		index:    make(map[string]int, len(stations)),
		adj:      make([][]edge, len(stations)),
		byPair:   make(map[int]map[int]domain.Route),
	}
	for i, name := range stations {
		if _, exists := g.index[name]; exists {
			return nil, fmt.Errorf("new graph: station %q: %w", name, domain.ErrDuplicateName)
		}
		g.index[name] = i
		g.stations = append(g.stations, domain.Station{Index: i, Name: name})
	}

	names := make(map[string]struct{}, len(routes))
	for _, r := range routes {
		if err := g.addRoute(r, names); err != nil {
			return nil, fmt.Errorf("new graph: %w", err)
		}
	}
	return g, nil
}

func (g *Graph) addRoute(r domain.RouteRow, names map[string]struct{}) error {
	if r.StationA == r.StationB {
		return fmt.Errorf("route %q at station %q: %w", r.Name, r.StationA, domain.ErrSelfLoopRoute)
	}
	if _, exists := names[r.Name]; exists {
		return fmt.Errorf("route %q: %w", r.Name, domain.ErrDuplicateName)
	}
	names[r.Name] = struct{}{}
	if r.Cost <= 0 {
		return fmt.Errorf("route %q time cost=%d: %w", r.Name, r.Cost, domain.ErrNonPositiveValue)
	}
	a, ok := g.index[r.StationA]
	if !ok {
		return fmt.Errorf("route %q station %q: %w", r.Name, r.StationA, domain.ErrUnknownStation)
	}
	b, ok := g.index[r.StationB]
	if !ok {
		return fmt.Errorf("route %q station %q: %w", r.Name, r.StationB, domain.ErrUnknownStation)
	}

	route := domain.Route{Name: r.Name, A: a, B: b, Cost: r.Cost}
	id := len(g.routes)
	g.routes = append(g.routes, route)

	// A parallel route between the same pair only wins when it is cheaper.
	if prev, ok := g.byPair[a][b]; ok && prev.Cost <= route.Cost {
		return nil
	}
	if g.byPair[a] == nil {
		g.byPair[a] = make(map[int]domain.Route)
	}
	if g.byPair[b] == nil {
		g.byPair[b] = make(map[int]domain.Route)
	}
	g.byPair[a][b] = route
	g.byPair[b][a] = route
	g.adj[a] = setEdge(g.adj[a], edge{to: b, route: id})
	g.adj[b] = setEdge(g.adj[b], edge{to: a, route: id})
	return nil
}

func setEdge(edges []edge, e edge) []edge {
	for i := range edges {
		if edges[i].to == e.to {
			edges[i] = e
			return edges
		}
	}
	return append(edges, e)
}

// Len returns the number of stations.
func (g *Graph) Len() int { return len(g.stations) }

// Index looks up a station by name.
func (g *Graph) Index(name string) (int, error) {
	i, ok := g.index[name]
	if !ok {
		return 0, fmt.Errorf("station %q: %w", name, domain.ErrUnknownStation)
	}
	return i, nil
}

// Name returns the name of the station at index i.
func (g *Graph) Name(i int) string { return g.stations[i].Name }

// Names maps a sequence of station indices to their names.
func (g *Graph) Names(path []int) []string {
	out := make([]string, len(path))
	for i, s := range path {
		out[i] = g.Name(s)
	}
	return out
}

// Route returns the route connecting two adjacent stations.
func (g *Graph) Route(u, v int) (domain.Route, error) {
	if m, ok := g.byPair[u]; ok {
		if r, ok := m[v]; ok {
			return r, nil
		}
	}
	return domain.Route{}, fmt.Errorf("no route from %q to %q", g.Name(u), g.Name(v))
}

// Weight returns the time cost of the route between adjacent stations.
func (g *Graph) Weight(u, v int) (int, error) {
	r, err := g.Route(u, v)
	if err != nil {
		return 0, err
	}
	return r.Cost, nil
}

// RouteName returns the name of the route between adjacent stations.
func (g *Graph) RouteName(u, v int) (string, error) {
	r, err := g.Route(u, v)
	if err != nil {
		return "", err
	}
	return r.Name, nil
}

// Neighbors calls fn for every station adjacent to u, in route input order.
func (g *Graph) Neighbors(u int, fn func(v int, cost int)) {
	for _, e := range g.adj[u] {
		fn(e.to, g.routes[e.route].Cost)
	}
}
