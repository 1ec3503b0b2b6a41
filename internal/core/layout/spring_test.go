package layout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/core/network"
)

func star() *network.Graph {
	t := model.NewInteractionTable("A", "B")
	for _, leaf := range []string{"MDM2", "EP300", "ATM", "CHEK2", "BRCA1"} {
		t.Append("TP53", leaf)
	}
	return network.Build(t)
}

func TestLayout_Empty(t *testing.T) {
	assert.Empty(t, NewSpring().Layout(network.New()))
}

func TestLayout_SingleNode(t *testing.T) {
	t1 := model.NewInteractionTable("A", "B")
	t1.Append("TP53", "TP53")

	pos := NewSpring().Layout(network.Build(t1))

	assert.Equal(t, map[string]model.Point{"TP53": {}}, pos)
}

func TestLayout_Deterministic(t *testing.T) {
	g := star()

	first := NewSpring().Layout(g)
	second := NewSpring().Layout(g)

	assert.Equal(t, first, second)
}

func TestLayout_SeedChangesDrawing(t *testing.T) {
	g := star()
	other := NewSpring()
	other.Seed = 7

	assert.NotEqual(t, NewSpring().Layout(g), other.Layout(g))
}

func TestLayout_Bounds(t *testing.T) {
	pos := NewSpring().Layout(star())
	require.Len(t, pos, 6)

	var maxAbs float64
	for _, p := range pos {
		assert.LessOrEqual(t, math.Abs(p.X), 1.0+1e-9)
		assert.LessOrEqual(t, math.Abs(p.Y), 1.0+1e-9)
		maxAbs = math.Max(maxAbs, math.Max(math.Abs(p.X), math.Abs(p.Y)))
	}
	assert.InDelta(t, 1.0, maxAbs, 1e-9)
}
