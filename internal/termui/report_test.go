package termui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/agenthands/ppinet/internal/core/model"
)

func TestRender(t *testing.T) {
	table := model.NewInteractionTable("preferredName_A", "preferredName_B")
	table.Append("TP53", "MDM2")
	a := &model.Analysis{
		Protein:   "TP53",
		Provider:  "STRING",
		Table:     table,
		NodeCount: 2,
		EdgeCount: 1,
		Stats:     model.TableStats{Rows: 1, DistinctPairs: 1},
		Rankings: []model.Ranking{
			{Metric: model.MetricDegree, Entries: []model.RankedNode{{Symbol: "TP53", Score: 1}, {Symbol: "MDM2", Score: 1}}},
			{Metric: model.MetricPageRank, Entries: []model.RankedNode{{Symbol: "TP53", Score: 0.5}}},
		},
		Summary: "TP53 is the hub.",
	}

	out := Render(a)

	assert.Contains(t, out, "TP53 via STRING")
	assert.Contains(t, out, "nodes 2")
	assert.Contains(t, out, "Degree Centrality")
	assert.Contains(t, out, "1.0000")
	assert.Contains(t, out, "0.5000")
	assert.Contains(t, out, "TP53 is the hub.")
}

func TestRender_NoticesOnly(t *testing.T) {
	a := &model.Analysis{Protein: "NOPE", Provider: "BioGRID"}
	a.AddNotice(model.LevelWarning, "No PPI data found. Please check the protein ID and try again.")

	out := Render(a)

	assert.Contains(t, out, "[warning] No PPI data found.")
	assert.NotContains(t, out, "nodes")
}
