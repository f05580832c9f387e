package network

import (
	"container/heap"
	"fmt"
	"freight-dispatch-service/internal/domain"
	"math"
	"slices"
)

// Path is the result of a shortest-path computation.
type Path struct {
	Cost     int
	Stations []int // ordered station indices from start to end
}

type pairKey struct{ from, to int }

// PathCache memoizes shortest paths over an immutable Graph.
// Entries are stored for both directions at once, the reverse entry holding
// the reversed station sequence. Unreachable pairs are never cached.
type PathCache struct {
	graph *Graph
	paths map[pairKey]Path
}

func NewPathCache(g *Graph) *PathCache {
	return &PathCache{graph: g, paths: make(map[pairKey]Path)}
}

// Lookup returns the cheapest path from u to v, computing it on first use.
func (c *PathCache) Lookup(u, v int) (Path, error) {
	if p, ok := c.paths[pairKey{u, v}]; ok {
		return p, nil
	}
	if u == v {
		p := Path{Cost: 0, Stations: []int{u}}
		c.paths[pairKey{u, u}] = p
		return p, nil
	}

	dist, prev := c.dijkstra(u)
	if dist[v] == math.MaxInt {
		return Path{}, fmt.Errorf(
			"shortest path from %q to %q: %w",
			c.graph.Name(u), c.graph.Name(v), domain.ErrUnreachable,
		)
	}

	stations := []int{v}
	for s := v; s != u; {
		s = prev[s]
		stations = append(stations, s)
	}
	slices.Reverse(stations)

	p := Path{Cost: dist[v], Stations: stations}
	c.store(u, v, p)
	return p, nil
}

// Cached reports whether the pair has already been resolved.
func (c *PathCache) Cached(u, v int) bool {
	_, ok := c.paths[pairKey{u, v}]
	return ok
}

func (c *PathCache) store(u, v int, p Path) {
	c.paths[pairKey{u, v}] = p
	reversed := slices.Clone(p.Stations)
	slices.Reverse(reversed)
	c.paths[pairKey{v, u}] = Path{Cost: p.Cost, Stations: reversed}
}

// dijkstra computes single-source distances from src. Unreached stations
// keep math.MaxInt. Heap ties are broken by station index and distances only
// improve on strictly shorter paths, which keeps the chosen path stable for
// a given graph.
func (c *PathCache) dijkstra(src int) (dist []int, prev []int) {
	n := c.graph.Len()
	dist = make([]int, n)
	prev = make([]int, n)
	for i := range dist {
		dist[i] = math.MaxInt
		prev[i] = -1
	}
	dist[src] = 0

	visited := make([]bool, n)
	pq := &stationPQ{{station: src, dist: 0}}
	for pq.Len() > 0 {
		item := heap.Pop(pq).(pqItem)
		u := item.station
		if visited[u] || item.dist > dist[u] {
			continue
		}
		visited[u] = true
		c.graph.Neighbors(u, func(v int, cost int) {
			if visited[v] {
				return
			}
			if d := dist[u] + cost; d < dist[v] {
				dist[v] = d
				prev[v] = u
				heap.Push(pq, pqItem{station: v, dist: d})
			}
		})
	}
	return dist, prev
}

type pqItem struct {
	station int
	dist    int
}

// stationPQ is a min-heap on (dist, station).
type stationPQ []pqItem

func (pq stationPQ) Len() int { return len(pq) }

func (pq stationPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].station < pq[j].station
}

func (pq stationPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *stationPQ) Push(x any) { *pq = append(*pq, x.(pqItem)) }

func (pq *stationPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}
