// Package bootstrap assembles the pipeline and its collaborators from config.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/core"
	"github.com/agenthands/ppinet/internal/core/summary"
	"github.com/agenthands/ppinet/internal/llm"
	"github.com/agenthands/ppinet/internal/observability"
	"github.com/agenthands/ppinet/internal/provider"
	"github.com/agenthands/ppinet/internal/server"
)

const metricsNamespace = "ppinet"

type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Metrics  *observability.Collector
	Pipeline *core.Pipeline
}

func New(ctx context.Context, cfg *config.Config) (*App, error) {
	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("new logger: %w", err)
	}
	metrics := observability.NewCollector(metricsNamespace)

	providers, err := provider.NewProviders(cfg, provider.NewHTTPClient(cfg.HTTP))
	if err != nil {
		return nil, fmt.Errorf("new providers: %w", err)
	}
	if cfg.BioGRID.AccessKey == "" {
		logger.Warn("BioGRID access key is not configured; BioGRID requests will fail")
	}
	retriever := provider.NewRetriever(logger, metrics, providers...)

	llmClient, err := llm.NewClient(ctx, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("new llm client: %w", err)
	}
	var summarizer *summary.Summarizer
	if llmClient != nil {
		summarizer = summary.NewSummarizer(llmClient, cfg.Summary)
		logger.Info("hub summaries enabled", zap.String("llm_provider", cfg.LLM.Provider), zap.String("model", cfg.LLM.Model))
	}

	return &App{
		Config:   cfg,
		Logger:   logger,
		Metrics:  metrics,
		Pipeline: core.NewPipeline(cfg, retriever, summarizer, logger, metrics),
	}, nil
}

// Serve blocks serving HTTP on the configured port.
func (a *App) Serve() error {
	if a.Config.Server.Mode != "" {
		gin.SetMode(a.Config.Server.Mode)
	}
	srv := server.NewServer(a.Pipeline, a.Config.Layout, a.Logger, a.Metrics)
	addr := ":" + a.Config.Server.Port
	a.Logger.Info("starting server", zap.String("addr", addr))
	return srv.SetupRouter().Run(addr)
}
