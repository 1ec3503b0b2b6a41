// Package network holds the undirected interaction graph built from an
// InteractionTable. Graph satisfies gonum's graph.Undirected so the gonum
// traversal and network algorithms run on it directly.
package network

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/agenthands/ppinet/internal/core/model"
)

// Graph is an undirected, unweighted graph keyed by symbol. Node ids are
// dense and follow first-appearance order. Parallel edges collapse into one;
// self-loops are kept.
type Graph struct {
	ids     map[string]int64
	symbols []string
	nbrs    [][]int64
	adj     []map[int64]struct{}
	edges   []model.GraphEdge
}

func New() *Graph {
	return &Graph{ids: make(map[string]int64)}
}

// AddNode returns the id for symbol, creating the node if needed.
func (g *Graph) AddNode(symbol string) int64 {
	if id, ok := g.ids[symbol]; ok {
		return id
	}
	id := int64(len(g.symbols))
	g.ids[symbol] = id
	g.symbols = append(g.symbols, symbol)
	g.nbrs = append(g.nbrs, nil)
	g.adj = append(g.adj, make(map[int64]struct{}))
	return id
}

// AddEdge links a and b. It reports false when the edge already existed.
func (g *Graph) AddEdge(a, b string) bool {
	u := g.AddNode(a)
	v := g.AddNode(b)
	if _, ok := g.adj[u][v]; ok {
		return false
	}
	g.adj[u][v] = struct{}{}
	g.nbrs[u] = append(g.nbrs[u], v)
	if u != v {
		g.adj[v][u] = struct{}{}
		g.nbrs[v] = append(g.nbrs[v], u)
	}
	g.edges = append(g.edges, model.GraphEdge{Source: a, Target: b})
	return true
}

func (g *Graph) NodeCount() int { return len(g.symbols) }

func (g *Graph) EdgeCount() int { return len(g.edges) }

// Symbols returns node symbols in insertion order.
func (g *Graph) Symbols() []string {
	out := make([]string, len(g.symbols))
	copy(out, g.symbols)
	return out
}

// EdgeList returns edges in insertion order, as first written.
func (g *Graph) EdgeList() []model.GraphEdge {
	out := make([]model.GraphEdge, len(g.edges))
	copy(out, g.edges)
	return out
}

func (g *Graph) Symbol(id int64) string { return g.symbols[id] }

func (g *Graph) ID(symbol string) (int64, bool) {
	id, ok := g.ids[symbol]
	return id, ok
}

// Neighbors returns the neighbour ids of id, including id itself for a self-loop.
func (g *Graph) Neighbors(id int64) []int64 {
	return g.nbrs[id]
}

func (g *Graph) HasSelfLoop(id int64) bool {
	_, ok := g.adj[id][id]
	return ok
}

// Degree counts a self-loop twice.
func (g *Graph) Degree(id int64) int {
	d := len(g.nbrs[id])
	if g.HasSelfLoop(id) {
		d++
	}
	return d
}

func (g *Graph) has(id int64) bool {
	return id >= 0 && id < int64(len(g.symbols))
}

// Node implements graph.Graph.
func (g *Graph) Node(id int64) graph.Node {
	if !g.has(id) {
		return nil
	}
	return simple.Node(id)
}

// Nodes implements graph.Graph.
func (g *Graph) Nodes() graph.Nodes {
	if len(g.symbols) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(g.symbols))
	for i := range g.symbols {
		nodes[i] = simple.Node(i)
	}
	return iterator.NewOrderedNodes(nodes)
}

// From implements graph.Graph.
func (g *Graph) From(id int64) graph.Nodes {
	if !g.has(id) || len(g.nbrs[id]) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(g.nbrs[id]))
	for i, v := range g.nbrs[id] {
		nodes[i] = simple.Node(v)
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween implements graph.Graph.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	if !g.has(xid) || !g.has(yid) {
		return false
	}
	_, ok := g.adj[xid][yid]
	return ok
}

// Edge implements graph.Graph.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	return g.EdgeBetween(uid, vid)
}

// EdgeBetween implements graph.Undirected.
func (g *Graph) EdgeBetween(xid, yid int64) graph.Edge {
	if !g.HasEdgeBetween(xid, yid) {
		return nil
	}
	return simple.Edge{F: simple.Node(xid), T: simple.Node(yid)}
}

// Directed returns the symmetric directed view of g, where every undirected
// edge is a pair of opposite arcs and a self-loop is a single arc.
func (g *Graph) Directed() graph.Directed {
	return symmetric{g}
}

type symmetric struct {
	*Graph
}

func (s symmetric) HasEdgeFromTo(uid, vid int64) bool {
	return s.HasEdgeBetween(uid, vid)
}

func (s symmetric) To(id int64) graph.Nodes {
	return s.From(id)
}

var (
	_ graph.Undirected = (*Graph)(nil)
	_ graph.Directed   = symmetric{}
)
