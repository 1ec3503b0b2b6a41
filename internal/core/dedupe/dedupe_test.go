package dedupe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/core/network"
)

func TestStats(t *testing.T) {
	table := model.NewInteractionTable("OFFICIAL_SYMBOL_A", "OFFICIAL_SYMBOL_B")
	table.Append("TP53", "MDM2")
	table.Append("MDM2", "TP53")
	table.Append("TP53", "MDM2")
	table.Append("TP53", "TP53")
	table.Append("TP53", "EP300")

	stats := Stats(table)

	assert.Equal(t, model.TableStats{
		Rows:          5,
		DistinctPairs: 3,
		DuplicateRows: 2,
		SelfLoops:     1,
	}, stats)
}

func TestStats_MatchesGraphEdges(t *testing.T) {
	table := model.NewInteractionTable("preferredName_A", "preferredName_B")
	table.Append("A", "B")
	table.Append("B", "A")
	table.Append("B", "C")
	table.Append("C", "C")

	stats := Stats(table)

	assert.Equal(t, network.Build(table).EdgeCount(), stats.DistinctPairs)
}

func TestStats_Empty(t *testing.T) {
	assert.Equal(t, model.TableStats{}, Stats(model.InteractionTable{}))
}
