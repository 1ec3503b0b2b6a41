// Package dedupe reports row-level redundancy in an interaction table. Rows
// are never removed; the graph collapses repeated pairs on its own.
package dedupe

import "github.com/agenthands/ppinet/internal/core/model"

type pairKey struct {
	a, b string
}

// key is orientation-free: (A,B) and (B,A) are the same interaction.
func key(r model.InteractionRecord) pairKey {
	if r.SymbolA <= r.SymbolB {
		return pairKey{r.SymbolA, r.SymbolB}
	}
	return pairKey{r.SymbolB, r.SymbolA}
}

func Stats(table model.InteractionTable) model.TableStats {
	seen := make(map[pairKey]struct{}, table.Len())
	stats := model.TableStats{Rows: table.Len()}
	for _, r := range table.Records {
		if r.SymbolA == r.SymbolB {
			stats.SelfLoops++
		}
		k := key(r)
		if _, ok := seen[k]; ok {
			stats.DuplicateRows++
			continue
		}
		seen[k] = struct{}{}
	}
	stats.DistinctPairs = len(seen)
	return stats
}
