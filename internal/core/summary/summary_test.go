package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/core/model"
)

var rankings = []model.Ranking{
	{Metric: model.MetricDegree, Entries: []model.RankedNode{{Symbol: "TP53", Score: 1}, {Symbol: "MDM2", Score: 0.5}}},
	{Metric: model.MetricPageRank, Entries: []model.RankedNode{{Symbol: "TP53", Score: 0.41234}}},
}

func TestSummarizeHubs(t *testing.T) {
	mockLLM := &MockLLMClient{
		Response: `Sure! {"summary": "TP53 is the dominant hub."}`,
	}
	summarizer := NewSummarizer(mockLLM, config.SummaryPrompts{Hubs: "%s|%s|%s"})

	got, err := summarizer.SummarizeHubs(context.Background(), "TP53", "STRING", rankings)

	require.NoError(t, err)
	assert.Equal(t, "TP53 is the dominant hub.", got)
	require.Len(t, mockLLM.Prompts, 1)
	assert.Contains(t, mockLLM.Prompts[0], "TP53|STRING|")
	assert.Contains(t, mockLLM.Prompts[0], "- PageRank Centrality: TP53 (0.4123)")
}

func TestSummarizeHubs_PlainText(t *testing.T) {
	mockLLM := &MockLLMClient{Response: "  TP53 dominates.  "}
	summarizer := NewSummarizer(mockLLM, config.SummaryPrompts{Hubs: config.DefaultHubsPrompt})

	got, err := summarizer.SummarizeHubs(context.Background(), "TP53", "BioGRID", rankings)

	require.NoError(t, err)
	assert.Equal(t, "TP53 dominates.", got)
}

func TestSummarizeHubs_Error(t *testing.T) {
	summarizer := NewSummarizer(&MockLLMClient{Err: errors.New("quota")}, config.SummaryPrompts{Hubs: "%s %s %s"})

	_, err := summarizer.SummarizeHubs(context.Background(), "TP53", "STRING", rankings)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "quota")
}

func TestSummarizeHubs_NoRankings(t *testing.T) {
	mockLLM := &MockLLMClient{}
	got, err := NewSummarizer(mockLLM, config.SummaryPrompts{}).SummarizeHubs(context.Background(), "TP53", "STRING", nil)

	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.Empty(t, mockLLM.Prompts)
}
