package community

import (
	"github.com/agenthands/ppinet/internal/core/network"
)

// CommunityDetector groups node symbols of an interaction graph.
type CommunityDetector interface {
	Detect(g *network.Graph) ([][]string, error)
}

// ComponentDetector returns connected components, largest first.
type ComponentDetector struct {
	MinSize int
}

func NewComponentDetector() *ComponentDetector {
	return &ComponentDetector{MinSize: 1}
}

func (d *ComponentDetector) Detect(g *network.Graph) ([][]string, error) {
	n := g.NodeCount()
	visited := make([]bool, n)
	var components [][]string

	for id := 0; id < n; id++ {
		if visited[id] {
			continue
		}
		var members []int64
		d.dfs(g, int64(id), visited, &members)
		if len(members) < d.MinSize {
			continue
		}
		component := make([]string, len(members))
		for i, m := range members {
			component[i] = g.Symbol(m)
		}
		components = append(components, component)
	}

	sortBySize(components)
	return components, nil
}

func (d *ComponentDetector) dfs(g *network.Graph, u int64, visited []bool, component *[]int64) {
	visited[u] = true
	*component = append(*component, u)
	for _, v := range g.Neighbors(u) {
		if !visited[v] {
			d.dfs(g, v, visited, component)
		}
	}
}

// Sizes returns the member count of each group.
func Sizes(groups [][]string) []int {
	sizes := make([]int, len(groups))
	for i, c := range groups {
		sizes[i] = len(c)
	}
	return sizes
}

// Membership maps each symbol to the index of its group.
func Membership(groups [][]string) map[string]int {
	m := make(map[string]int)
	for i, c := range groups {
		for _, s := range c {
			m[s] = i
		}
	}
	return m
}
