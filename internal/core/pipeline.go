// Package core wires retrieval, graph construction and analysis into the
// single request-scoped pipeline behind every user action.
package core

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/core/centrality"
	"github.com/agenthands/ppinet/internal/core/community"
	"github.com/agenthands/ppinet/internal/core/dedupe"
	"github.com/agenthands/ppinet/internal/core/layout"
	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/core/network"
	"github.com/agenthands/ppinet/internal/core/summary"
	"github.com/agenthands/ppinet/internal/observability"
	"github.com/agenthands/ppinet/internal/provider"
)

const (
	MsgNoData         = "No PPI data found. Please check the protein ID and try again."
	MsgNoInteractions = "No interactions found for the given protein."
)

// Analysis outcomes recorded in metrics.
const (
	StatusOK          = "ok"
	StatusPartial     = "partial"
	StatusNoData      = "no_data"
	StatusNoGraph     = "no_graph"
	StatusAnalysisErr = "error"
)

type Pipeline struct {
	Retriever   *provider.Retriever
	Analyzer    *centrality.Analyzer
	Spring      *layout.Spring
	Components  community.CommunityDetector
	Communities community.CommunityDetector
	Summarizer  *summary.Summarizer // nil disables the hub narrative
	TopN        int

	logger  *zap.Logger
	metrics *observability.Collector
}

func NewPipeline(cfg *config.Config, retriever *provider.Retriever, summarizer *summary.Summarizer, logger *zap.Logger, metrics *observability.Collector) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}

	analyzer := centrality.NewAnalyzer()
	analyzer.EigenvectorMaxIter = cfg.Analysis.EigenvectorMaxIter
	analyzer.EigenvectorTol = cfg.Analysis.EigenvectorTolerance
	analyzer.Damping = cfg.Analysis.PageRankDamping
	analyzer.PageRankTol = cfg.Analysis.PageRankTolerance

	spring := layout.NewSpring()
	if cfg.Layout.Seed != nil {
		spring.Seed = *cfg.Layout.Seed
	}
	spring.K = cfg.Layout.K
	spring.Iterations = cfg.Layout.Iterations

	return &Pipeline{
		Retriever:   retriever,
		Analyzer:    analyzer,
		Spring:      spring,
		Components:  community.NewComponentDetector(),
		Communities: community.NewLabelPropagationDetector(),
		Summarizer:  summarizer,
		TopN:        cfg.Analysis.TopN,
		logger:      logger,
		metrics:     metrics,
	}
}

// Run performs one full analysis. It never fails: every problem is reported
// as a notice on the returned Analysis, and later stages are skipped when
// there is nothing left to analyse.
func (p *Pipeline) Run(ctx context.Context, providerID, protein string) *model.Analysis {
	a := &model.Analysis{
		ID:       uuid.New().String(),
		Protein:  protein,
		Provider: p.Retriever.ProviderName(providerID),
	}
	log := p.logger.With(zap.String("analysis_id", a.ID), zap.String("provider", providerID), zap.String("protein", protein))

	res := p.Retriever.Fetch(ctx, providerID, protein)
	a.Table = res.Table
	if res.Notice != nil {
		a.AddNotice(res.Notice.Level, res.Notice.Message)
	}
	if a.Table.Empty() {
		a.AddNotice(model.LevelWarning, MsgNoData)
		p.finish(log, StatusNoData)
		return a
	}

	g := network.Build(a.Table)
	a.NodeCount = g.NodeCount()
	a.EdgeCount = g.EdgeCount()
	a.Stats = dedupe.Stats(a.Table)
	if p.metrics != nil {
		p.metrics.ObserveGraph(a.NodeCount, a.EdgeCount)
	}
	if a.NodeCount == 0 {
		a.AddNotice(model.LevelWarning, MsgNoInteractions)
		p.finish(log, StatusNoGraph)
		return a
	}
	a.Nodes = g.Symbols()
	a.Edges = g.EdgeList()

	if groups, err := p.Components.Detect(g); err == nil {
		a.Components = community.Sizes(groups)
	} else {
		log.Warn("component detection failed", zap.Error(err))
	}
	if groups, err := p.Communities.Detect(g); err == nil {
		a.Communities = community.Membership(groups)
	} else {
		log.Warn("community detection failed", zap.Error(err))
	}
	a.Layout = p.Spring.Layout(g)

	status := StatusOK
	report, err := p.Analyzer.Analyze(g)
	if err != nil {
		var convErr *centrality.ConvergenceError
		if !errors.As(err, &convErr) {
			log.Error("centrality analysis failed", zap.Error(err))
			a.AddNotice(model.LevelError, "Centrality analysis failed: "+err.Error())
			p.finish(log, StatusAnalysisErr)
			return a
		}
		log.Warn("metric omitted", zap.Error(err))
		a.AddNotice(model.LevelWarning, convErr.Error()+"; it is left out of the rankings.")
		status = StatusPartial
	}
	a.Rankings = centrality.Rankings(report, p.TopN)

	if p.Summarizer != nil {
		text, err := p.Summarizer.SummarizeHubs(ctx, protein, a.Provider, a.Rankings)
		if err != nil {
			log.Warn("hub summary failed", zap.Error(err))
			a.AddNotice(model.LevelWarning, "Hub summary unavailable: "+err.Error())
		} else {
			a.Summary = text
		}
	}

	p.finish(log, status)
	return a
}

func (p *Pipeline) finish(log *zap.Logger, status string) {
	if p.metrics != nil {
		p.metrics.ObserveAnalysis(status)
	}
	log.Info("analysis finished", zap.String("status", status))
}
