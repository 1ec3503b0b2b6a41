// Package layout places interaction graph nodes in the plane with a
// Fruchterman-Reingold spring model.
package layout

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/core/network"
)

type Spring struct {
	Seed       int64
	K          float64 // optimal node distance; <= 0 means 1/sqrt(n)
	Iterations int
	Threshold  float64
}

func NewSpring() *Spring {
	return &Spring{
		Seed:       42,
		K:          0.15,
		Iterations: 50,
		Threshold:  1e-4,
	}
}

// Layout returns a position for every node, centred on the origin and
// scaled so the largest coordinate magnitude is 1. The same seed always
// gives the same drawing.
func (s *Spring) Layout(g *network.Graph) map[string]model.Point {
	n := g.NodeCount()
	out := make(map[string]model.Point, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[g.Symbol(0)] = model.Point{}
		return out
	}

	rng := rand.New(rand.NewSource(s.Seed))
	pos := make([]r2.Vec, n)
	for i := range pos {
		pos[i] = r2.Vec{X: rng.Float64(), Y: rng.Float64()}
	}

	k := s.K
	if k <= 0 {
		k = math.Sqrt(1 / float64(n))
	}

	temp := 0.1 * spread(pos)
	cool := temp / float64(s.Iterations+1)

	disp := make([]r2.Vec, n)
	for iter := 0; iter < s.Iterations; iter++ {
		for i := range pos {
			disp[i] = r2.Vec{}
			for j := range pos {
				if i == j {
					continue
				}
				delta := r2.Sub(pos[i], pos[j])
				dist := math.Max(r2.Norm(delta), 0.01)
				force := k * k / (dist * dist)
				if g.HasEdgeBetween(int64(i), int64(j)) {
					force -= dist / k
				}
				disp[i] = r2.Add(disp[i], r2.Scale(force, delta))
			}
		}

		var moved float64
		for i := range pos {
			length := r2.Norm(disp[i])
			if length < 0.01 {
				length = 0.1
			}
			step := r2.Scale(temp/length, disp[i])
			pos[i] = r2.Add(pos[i], step)
			moved += r2.Norm2(step)
		}
		temp -= cool
		if math.Sqrt(moved)/float64(n) < s.Threshold {
			break
		}
	}

	rescale(pos)
	for i, p := range pos {
		out[g.Symbol(int64(i))] = model.Point{X: p.X, Y: p.Y}
	}
	return out
}

// spread is the larger of the x and y extents.
func spread(pos []r2.Vec) float64 {
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	return math.Max(maxX-minX, maxY-minY)
}

func rescale(pos []r2.Vec) {
	var mean r2.Vec
	for _, p := range pos {
		mean = r2.Add(mean, p)
	}
	mean = r2.Scale(1/float64(len(pos)), mean)

	var lim float64
	for i := range pos {
		pos[i] = r2.Sub(pos[i], mean)
		lim = math.Max(lim, math.Max(math.Abs(pos[i].X), math.Abs(pos[i].Y)))
	}
	if lim == 0 {
		return
	}
	for i := range pos {
		pos[i] = r2.Scale(1/lim, pos[i])
	}
}
