package network

import "github.com/agenthands/ppinet/internal/core/model"

// Build treats the first column as source and the second as target. An empty
// table gives an empty graph.
func Build(table model.InteractionTable) *Graph {
	g := New()
	for _, r := range table.Records {
		g.AddEdge(r.SymbolA, r.SymbolB)
	}
	return g
}
