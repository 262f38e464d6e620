package topology

import (
	"fmt"
	"sort"
	"strings"
)

// Graph is a plain adjacency-set implementation of Topology: each vertex
// maps to the set of vertices it is connected to. It has no locking of its
// own — like migration.Store, it is read-only during evolution and
// mutated only by the archipelago coordinator while idle (spec §5), so
// there is nothing for it to protect internally.
type Graph struct {
	adj []map[int]struct{} // adj[v] is v's neighbor set
}

// NewGraph returns an empty graph with n unconnected vertices.
func NewGraph(n int) *Graph {
	g := &Graph{adj: make([]map[int]struct{}, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]struct{})
	}
	return g
}

// Clone returns a deep copy.
func (g *Graph) Clone() Topology {
	out := &Graph{adj: make([]map[int]struct{}, len(g.adj))}
	for i, set := range g.adj {
		cp := make(map[int]struct{}, len(set))
		for v := range set {
			cp[v] = struct{}{}
		}
		out.adj[i] = cp
	}
	return out
}

// PushVertex adds a new unconnected vertex at index len(adj).
func (g *Graph) PushVertex() {
	g.adj = append(g.adj, make(map[int]struct{}))
}

// Connect adds an undirected edge between u and v.
func (g *Graph) Connect(u, v int) {
	g.adj[u][v] = struct{}{}
	g.adj[v][u] = struct{}{}
}

// Neighbors returns the set of vertices adjacent to v.
func (g *Graph) Neighbors(v int) map[int]struct{} {
	out := make(map[int]struct{}, len(g.adj[v]))
	for u := range g.adj[v] {
		out[u] = struct{}{}
	}
	return out
}

// NumVertices returns the current vertex count.
func (g *Graph) NumVertices() int { return len(g.adj) }

// HumanReadable renders one line per vertex listing its sorted neighbors.
func (g *Graph) HumanReadable() string {
	var b strings.Builder
	fmt.Fprintf(&b, "topology: %d vertices\n", len(g.adj))
	for v := 0; v < len(g.adj); v++ {
		neighbors := SortedNeighbors(g, v)
		strs := make([]string, len(neighbors))
		for i, n := range neighbors {
			strs[i] = fmt.Sprintf("%d", n)
		}
		fmt.Fprintf(&b, "  %d -> [%s]\n", v, strings.Join(strs, ", "))
	}
	return b.String()
}

// SortedNeighbors returns v's neighbors, read through the Topology
// interface, as an ascending slice. Used wherever deterministic iteration
// order matters (history ordering should depend only on the
// archipelago's RNG, never on Go's map iteration order).
func SortedNeighbors(t Topology, v int) []int {
	set := t.Neighbors(v)
	out := make([]int, 0, len(set))
	for u := range set {
		out = append(out, u)
	}
	sort.Ints(out)
	return out
}
