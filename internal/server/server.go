// Package server exposes the interaction analysis as a web page and a JSON API.
package server

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/core"
	"github.com/agenthands/ppinet/internal/observability"
	"github.com/agenthands/ppinet/internal/provider"
)

//go:embed templates/*.html
var templateFS embed.FS

type Server struct {
	Pipeline *core.Pipeline
	Options  []provider.Option
	Layout   config.LayoutConfig

	logger  *zap.Logger
	metrics *observability.Collector
}

func NewServer(pipeline *core.Pipeline, layoutCfg config.LayoutConfig, logger *zap.Logger, metrics *observability.Collector) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		Pipeline: pipeline,
		Options:  pipeline.Retriever.Options(),
		Layout:   layoutCfg,
		logger:   logger,
		metrics:  metrics,
	}
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), Logger(s.logger, s.metrics))

	tmpl := template.Must(template.New("").Funcs(template.FuncMap{
		"score": formatScore,
		"coord": formatCoord,
	}).ParseFS(templateFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	r.GET("/", s.Index)
	r.POST("/analyze", s.Analyze)
	r.GET("/healthz", s.Health)
	if s.metrics != nil {
		r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := r.Group("/api/v1")
	v1.GET("/analysis", s.AnalysisJSON)
	v1.GET("/providers", s.Providers)

	return r
}

// AnalysisRequest is accepted both as a form post and as query parameters.
// The protein symbol is forwarded to the provider unvalidated.
type AnalysisRequest struct {
	Protein  string `form:"protein"`
	Provider string `form:"provider" binding:"required,oneof=biogrid string"`
}

func (s *Server) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", pageView{
		Options:  s.Options,
		Provider: provider.IDBioGRID,
	})
}

func (s *Server) Analyze(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "index.html", pageView{
			Options:  s.Options,
			Protein:  req.Protein,
			Provider: provider.IDBioGRID,
			Analysis: invalidRequest(req),
		})
		return
	}

	a := s.Pipeline.Run(c.Request.Context(), req.Provider, req.Protein)
	c.HTML(http.StatusOK, "index.html", pageView{
		Options:  s.Options,
		Protein:  req.Protein,
		Provider: req.Provider,
		Analysis: a,
		Drawing:  newDrawing(a, s.Layout.Width, s.Layout.Height),
	})
}

func (s *Server) AnalysisJSON(c *gin.Context) {
	var req AnalysisRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider must be one of: biogrid, string"})
		return
	}
	c.JSON(http.StatusOK, s.Pipeline.Run(c.Request.Context(), req.Provider, req.Protein))
}

func (s *Server) Providers(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": s.Options})
}

func (s *Server) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
