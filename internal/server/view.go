package server

import (
	"fmt"

	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/provider"
)

var palette = []string{
	"#4c72b0", "#dd8452", "#55a868", "#c44e52", "#8172b3",
	"#937860", "#da8bc3", "#8c8c8c", "#ccb974", "#64b5cd",
}

type svgNode struct {
	Symbol string
	X, Y   float64
	Color  string
}

type svgEdge struct {
	X1, Y1, X2, Y2 float64
}

type drawing struct {
	Width, Height int
	Nodes         []svgNode
	Edges         []svgEdge
}

type pageView struct {
	Options  []provider.Option
	Protein  string
	Provider string
	Analysis *model.Analysis
	Drawing  *drawing
}

const margin = 24.0

// newDrawing maps layout coordinates in [-1,1] onto a width x height canvas.
func newDrawing(a *model.Analysis, width, height int) *drawing {
	if a == nil || !a.HasGraph() {
		return nil
	}
	d := &drawing{Width: width, Height: height}
	project := func(p model.Point) (float64, float64) {
		x := margin + (p.X+1)/2*(float64(width)-2*margin)
		y := margin + (1-(p.Y+1)/2)*(float64(height)-2*margin)
		return x, y
	}

	for _, e := range a.Edges {
		x1, y1 := project(a.Layout[e.Source])
		x2, y2 := project(a.Layout[e.Target])
		d.Edges = append(d.Edges, svgEdge{X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	for _, s := range a.Nodes {
		x, y := project(a.Layout[s])
		d.Nodes = append(d.Nodes, svgNode{
			Symbol: s,
			X:      x,
			Y:      y,
			Color:  palette[a.Communities[s]%len(palette)],
		})
	}
	return d
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.4f", v)
}

func formatCoord(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

func invalidRequest(req AnalysisRequest) *model.Analysis {
	a := &model.Analysis{Protein: req.Protein, Provider: req.Provider}
	a.AddNotice(model.LevelError, fmt.Sprintf("Unknown provider %q; choose BioGRID or STRING.", req.Provider))
	return a
}
