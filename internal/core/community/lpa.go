package community

import (
	"sort"

	"github.com/agenthands/ppinet/internal/core/network"
)

// LabelPropagationDetector implements community detection using Label Propagation Algorithm (LPA).
type LabelPropagationDetector struct {
	MaxIterations int
	MinSize       int
}

func NewLabelPropagationDetector() *LabelPropagationDetector {
	return &LabelPropagationDetector{
		MaxIterations: 20,
		MinSize:       1,
	}
}

func (d *LabelPropagationDetector) Detect(g *network.Graph) ([][]string, error) {
	n := g.NodeCount()
	if n == 0 {
		return nil, nil
	}

	// Every node starts with its own symbol as label.
	labels := make([]string, n)
	for id := range labels {
		labels[id] = g.Symbol(int64(id))
	}

	for iter := 0; iter < d.MaxIterations; iter++ {
		changeCount := 0

		for u := 0; u < n; u++ {
			counts := make(map[string]int)
			maxCount := 0
			for _, v := range g.Neighbors(int64(u)) {
				if v == int64(u) {
					continue
				}
				label := labels[v]
				counts[label]++
				if counts[label] > maxCount {
					maxCount = counts[label]
				}
			}
			if maxCount == 0 {
				continue
			}

			var candidates []string
			for label, count := range counts {
				if count == maxCount {
					candidates = append(candidates, label)
				}
			}

			// Lexicographically largest label wins a tie.
			sort.Strings(candidates)
			best := candidates[len(candidates)-1]

			if labels[u] != best {
				labels[u] = best
				changeCount++
			}
		}

		if changeCount == 0 {
			break
		}
	}

	// Group in first-seen order so results are stable across runs.
	index := make(map[string]int)
	var communities [][]string
	for id, label := range labels {
		i, ok := index[label]
		if !ok {
			i = len(communities)
			index[label] = i
			communities = append(communities, nil)
		}
		communities[i] = append(communities[i], g.Symbol(int64(id)))
	}

	kept := communities[:0]
	for _, c := range communities {
		if len(c) >= d.MinSize {
			kept = append(kept, c)
		}
	}

	sortBySize(kept)
	return kept, nil
}

func sortBySize(groups [][]string) {
	sort.SliceStable(groups, func(i, j int) bool {
		return len(groups[i]) > len(groups[j])
	})
}
