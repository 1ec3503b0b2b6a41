package community

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/core/network"
)

func build(pairs ...[2]string) *network.Graph {
	t := model.NewInteractionTable("A", "B")
	for _, p := range pairs {
		t.Append(p[0], p[1])
	}
	return network.Build(t)
}

func TestDetect(t *testing.T) {
	g := build(
		[2]string{"A", "B"}, // A-B
		[2]string{"B", "C"}, // B-C
		[2]string{"D", "D"}, // D only interacts with itself
	)

	detector := &ComponentDetector{MinSize: 2}
	communities, err := detector.Detect(g)

	assert.NoError(t, err)
	// Expect A-B-C as one community. D is size 1, so filtered out.
	assert.Len(t, communities, 1)
	assert.ElementsMatch(t, []string{"A", "B", "C"}, communities[0])
}

func TestDetect_MultipleComponents(t *testing.T) {
	g := build(
		[2]string{"A", "B"},
		[2]string{"C", "D"},
		[2]string{"D", "E"},
	)

	communities, err := NewComponentDetector().Detect(g)

	assert.NoError(t, err)
	assert.Equal(t, []int{3, 2}, Sizes(communities))
}

func TestDetect_Empty(t *testing.T) {
	communities, err := NewComponentDetector().Detect(network.New())

	assert.NoError(t, err)
	assert.Empty(t, communities)
}

func TestMembership(t *testing.T) {
	m := Membership([][]string{{"A", "B"}, {"C"}})

	assert.Equal(t, map[string]int{"A": 0, "B": 0, "C": 1}, m)
}
