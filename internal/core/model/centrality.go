package model

// Metric names, in the order they are computed and displayed.
const (
	MetricDegree      = "Degree Centrality"
	MetricCloseness   = "Closeness Centrality"
	MetricBetweenness = "Betweenness Centrality"
	MetricEigenvector = "Eigenvector Centrality"
	MetricPageRank    = "PageRank Centrality"
)

var Metrics = []string{
	MetricDegree,
	MetricCloseness,
	MetricBetweenness,
	MetricEigenvector,
	MetricPageRank,
}

// MetricScores maps node symbol to score for a single metric.
type MetricScores struct {
	Metric string             `json:"metric"`
	Scores map[string]float64 `json:"scores"`
}

// CentralityReport holds every metric that could be computed for a graph.
// Order is the node insertion order of the graph and drives tie-breaking.
type CentralityReport struct {
	Order   []string       `json:"order"`
	Metrics []MetricScores `json:"metrics"`
}

func (r *CentralityReport) Scores(metric string) (map[string]float64, bool) {
	for _, m := range r.Metrics {
		if m.Metric == metric {
			return m.Scores, true
		}
	}
	return nil, false
}

type RankedNode struct {
	Symbol string  `json:"symbol"`
	Score  float64 `json:"score"`
}

type Ranking struct {
	Metric  string       `json:"metric"`
	Entries []RankedNode `json:"entries"`
}
