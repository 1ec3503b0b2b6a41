package centrality

import (
	"sort"

	"github.com/agenthands/ppinet/internal/core/model"
)

// Top returns the n highest scores. Ties keep the order given by order.
func Top(scores map[string]float64, order []string, n int) []model.RankedNode {
	ranked := make([]model.RankedNode, 0, len(order))
	for _, s := range order {
		ranked = append(ranked, model.RankedNode{Symbol: s, Score: scores[s]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if n >= 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// Rankings returns the top-n list of every metric present in the report.
func Rankings(report *model.CentralityReport, n int) []model.Ranking {
	if report == nil {
		return nil
	}
	out := make([]model.Ranking, 0, len(report.Metrics))
	for _, m := range report.Metrics {
		out = append(out, model.Ranking{
			Metric:  m.Metric,
			Entries: Top(m.Scores, report.Order, n),
		})
	}
	return out
}
