// Package summary asks an LLM for a short narrative of the most central
// proteins in an interaction network.
package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/core/common"
	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/llm"
)

type Summarizer struct {
	LLM     llm.LLMClient
	Prompts config.SummaryPrompts
}

func NewSummarizer(llmClient llm.LLMClient, prompts config.SummaryPrompts) *Summarizer {
	return &Summarizer{
		LLM:     llmClient,
		Prompts: prompts,
	}
}

// SummarizeHubs writes the rankings into the hubs prompt. A response that is
// not the expected JSON is returned as plain text.
func (s *Summarizer) SummarizeHubs(ctx context.Context, protein, provider string, rankings []model.Ranking) (string, error) {
	if len(rankings) == 0 {
		return "", nil
	}

	prompt := fmt.Sprintf(s.Prompts.Hubs, protein, provider, formatRankings(rankings))

	response, err := s.LLM.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("failed to generate hub summary: %w", err)
	}

	result, err := common.ParseJSON[model.HubSummary](response)
	if err == nil && result.Summary != "" {
		return result.Summary, nil
	}
	return strings.TrimSpace(response), nil
}

func formatRankings(rankings []model.Ranking) string {
	var sb strings.Builder
	for _, r := range rankings {
		parts := make([]string, len(r.Entries))
		for i, e := range r.Entries {
			parts[i] = fmt.Sprintf("%s (%.4f)", e.Symbol, e.Score)
		}
		fmt.Fprintf(&sb, "- %s: %s\n", r.Metric, strings.Join(parts, ", "))
	}
	return sb.String()
}
