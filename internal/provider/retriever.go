package provider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/agenthands/ppinet/internal/core/model"
	"github.com/agenthands/ppinet/internal/observability"
)

// Option is a selectable provider as shown in the UI.
type Option struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// FetchResult always carries a table; on failure the table is empty and
// Notice explains why.
type FetchResult struct {
	Table  model.InteractionTable
	Notice *model.Notice
	Err    error
}

// Retriever is the boundary between providers and the pipeline. Fetch
// never returns an error: every failure becomes an empty table plus a notice.
type Retriever struct {
	providers map[string]Provider
	options   []Option
	logger    *zap.Logger
	metrics   *observability.Collector
}

func NewRetriever(logger *zap.Logger, metrics *observability.Collector, providers ...Provider) *Retriever {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := &Retriever{
		providers: make(map[string]Provider, len(providers)),
		logger:    logger,
		metrics:   metrics,
	}
	for _, p := range providers {
		r.providers[p.ID()] = p
		r.options = append(r.options, Option{ID: p.ID(), Name: p.Name()})
	}
	return r
}

func (r *Retriever) Options() []Option {
	out := make([]Option, len(r.options))
	copy(out, r.options)
	return out
}

// ProviderName returns the display name for id, or id itself when unknown.
func (r *Retriever) ProviderName(id string) string {
	if p, ok := r.providers[strings.ToLower(id)]; ok {
		return p.Name()
	}
	return id
}

func (r *Retriever) Fetch(ctx context.Context, providerID, symbol string) FetchResult {
	p, ok := r.providers[strings.ToLower(providerID)]
	if !ok {
		err := &FetchError{Provider: providerID, Kind: KindUnknownProvider, Err: errors.New("no such provider")}
		r.logger.Warn("unknown provider requested", zap.String("provider", providerID))
		return FetchResult{
			Notice: &model.Notice{Level: model.LevelError, Message: fmt.Sprintf("Unknown provider %q.", providerID)},
			Err:    err,
		}
	}

	start := time.Now()
	table, err := p.Fetch(ctx, symbol)
	took := time.Since(start)

	outcome := "ok"
	if kind, isFetchErr := KindOf(err); isFetchErr {
		outcome = string(kind)
	} else if err != nil {
		outcome = string(KindTransport)
	}
	if r.metrics != nil {
		r.metrics.ObserveFetch(p.ID(), outcome, took)
	}

	fields := []zap.Field{
		zap.String("provider", p.ID()),
		zap.String("protein", symbol),
		zap.String("outcome", outcome),
		zap.Duration("took", took),
	}
	if err == nil {
		r.logger.Info("fetched interactions", append(fields, zap.Int("rows", table.Len()))...)
		return FetchResult{Table: table}
	}

	r.logger.Warn("fetch failed", append(fields, zap.Error(err))...)
	return FetchResult{
		Table:  model.NewInteractionTable(table.Columns[0], table.Columns[1]),
		Notice: noticeFor(p.Name(), symbol, err),
		Err:    err,
	}
}

func noticeFor(name, symbol string, err error) *model.Notice {
	kind, _ := KindOf(err)
	switch kind {
	case KindEmpty:
		return &model.Notice{
			Level:   model.LevelWarning,
			Message: fmt.Sprintf("No data found for the protein ID '%s' in %s.", symbol, name),
		}
	case KindShape:
		return &model.Notice{
			Level:   model.LevelWarning,
			Message: fmt.Sprintf("The data structure from %s does not contain expected columns.", name),
		}
	case KindConfig:
		return &model.Notice{
			Level:   model.LevelError,
			Message: fmt.Sprintf("%s %v; set PPI_BIOGRID_ACCESS_KEY or [biogrid] access_key.", name, errors.Unwrap(err)),
		}
	default:
		cause := err
		if inner := errors.Unwrap(err); inner != nil {
			cause = inner
		}
		return &model.Notice{
			Level:   model.LevelError,
			Message: fmt.Sprintf("Error retrieving data from %s: %v", name, cause),
		}
	}
}
