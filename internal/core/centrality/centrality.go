// Package centrality scores nodes of an interaction graph by degree,
// closeness, betweenness, eigenvector and PageRank centrality, and ranks
// them per metric.
package centrality

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/traverse"

	"github.com/agenthands/ppinet/internal/core/model"
	ppi "github.com/agenthands/ppinet/internal/core/network"
)

var ErrEmptyGraph = errors.New("centrality: graph has no nodes")

// ConvergenceError is returned when a power iteration does not settle
// within its iteration cap.
type ConvergenceError struct {
	Metric     string
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("%s failed to converge in %d iterations", e.Metric, e.Iterations)
}

type Analyzer struct {
	EigenvectorMaxIter int
	EigenvectorTol     float64
	Damping            float64
	PageRankTol        float64
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		EigenvectorMaxIter: 1000,
		EigenvectorTol:     1e-6,
		Damping:            0.85,
		PageRankTol:        1e-6,
	}
}

// Analyze computes all five metrics over the whole graph. If eigenvector
// centrality does not converge the report omits it and a *ConvergenceError
// is returned alongside the remaining four metrics.
func (a *Analyzer) Analyze(g *ppi.Graph) (*model.CentralityReport, error) {
	if g.NodeCount() == 0 {
		return nil, ErrEmptyGraph
	}

	report := &model.CentralityReport{Order: g.Symbols()}
	add := func(metric string, values []float64) {
		scores := make(map[string]float64, len(values))
		for id, v := range values {
			scores[g.Symbol(int64(id))] = v
		}
		report.Metrics = append(report.Metrics, model.MetricScores{Metric: metric, Scores: scores})
	}

	add(model.MetricDegree, Degree(g))
	add(model.MetricCloseness, Closeness(g))
	add(model.MetricBetweenness, Betweenness(g))

	eig, eigErr := Eigenvector(g, a.EigenvectorMaxIter, a.EigenvectorTol)
	if eigErr == nil {
		add(model.MetricEigenvector, eig)
	}

	add(model.MetricPageRank, PageRank(g, a.Damping, a.PageRankTol))

	return report, eigErr
}

// Degree is the fraction of other nodes each node touches. A self-loop
// counts twice, so values above 1 are possible for looped nodes.
func Degree(g *ppi.Graph) []float64 {
	n := g.NodeCount()
	c := make([]float64, n)
	if n == 1 {
		c[0] = 1
		return c
	}
	s := 1 / float64(n-1)
	for id := range c {
		c[id] = float64(g.Degree(int64(id))) * s
	}
	return c
}

// Closeness uses shortest-path distances inside each node's component,
// scaled by the fraction of the graph that component covers.
func Closeness(g *ppi.Graph) []float64 {
	n := g.NodeCount()
	c := make([]float64, n)
	if n <= 1 {
		return c
	}
	for id := range c {
		var total, reached int
		var bf traverse.BreadthFirst
		bf.Walk(g, simple.Node(id), func(_ graph.Node, depth int) bool {
			total += depth
			reached++
			return false
		})
		if total == 0 {
			continue
		}
		r := float64(reached - 1)
		c[id] = (r / float64(total)) * (r / float64(n-1))
	}
	return c
}

// Betweenness is Brandes' betweenness normalised by (n-1)(n-2). gonum counts
// every unordered pair twice on undirected graphs, which this normalisation
// expects.
func Betweenness(g *ppi.Graph) []float64 {
	n := g.NodeCount()
	c := make([]float64, n)
	if n <= 2 {
		return c
	}
	scale := 1 / float64((n-1)*(n-2))
	for id, v := range network.Betweenness(g) {
		c[id] = v * scale
	}
	return c
}

// Eigenvector runs power iteration on A+I from a uniform start, L2-normalising
// every step. It stops when the L1 change drops below n*tol.
func Eigenvector(g *ppi.Graph, maxIter int, tol float64) ([]float64, error) {
	n := g.NodeCount()
	x := make([]float64, n)
	for i := range x {
		x[i] = 1 / float64(n)
	}
	last := make([]float64, n)
	for iter := 0; iter < maxIter; iter++ {
		copy(last, x)
		for u := range last {
			for _, v := range g.Neighbors(int64(u)) {
				x[v] += last[u]
			}
		}
		norm := floats.Norm(x, 2)
		if norm == 0 {
			norm = 1
		}
		floats.Scale(1/norm, x)
		if floats.Distance(x, last, 1) < float64(n)*tol {
			return x, nil
		}
	}
	return nil, &ConvergenceError{Metric: model.MetricEigenvector, Iterations: maxIter}
}

// PageRank runs gonum's sparse PageRank over the symmetric directed view of g.
func PageRank(g *ppi.Graph, damping, tol float64) []float64 {
	c := make([]float64, g.NodeCount())
	for id, v := range network.PageRankSparse(g.Directed(), damping, tol) {
		c[id] = v
	}
	// renormalise to a probability distribution
	if sum := floats.Sum(c); sum > 0 {
		floats.Scale(1/sum, c)
	}
	return c
}
