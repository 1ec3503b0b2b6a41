package bootstrap

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ppinet/internal/config"
	"github.com/agenthands/ppinet/internal/provider"
)

func TestNew(t *testing.T) {
	cfg := &config.Config{}
	cfg.ApplyDefaults()

	app, err := New(context.Background(), cfg)

	require.NoError(t, err)
	assert.Nil(t, app.Pipeline.Summarizer)
	assert.Equal(t, 5, app.Pipeline.TopN)
	assert.Equal(t, []provider.Option{{ID: "biogrid", Name: "BioGRID"}, {ID: "string", Name: "STRING"}}, app.Pipeline.Retriever.Options())
}

func TestNew_WithLLM(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "ollama", Model: "llama3"}}
	cfg.ApplyDefaults()

	app, err := New(context.Background(), cfg)

	require.NoError(t, err)
	assert.NotNil(t, app.Pipeline.Summarizer)
}

func TestNew_UnknownLLM(t *testing.T) {
	cfg := &config.Config{LLM: config.LLMConfig{Provider: "watson"}}
	cfg.ApplyDefaults()

	_, err := New(context.Background(), cfg)

	assert.Error(t, err)
}

func TestNew_BadLogLevel(t *testing.T) {
	cfg := &config.Config{Log: config.LogConfig{Level: "chatty"}}
	cfg.ApplyDefaults()

	_, err := New(context.Background(), cfg)

	assert.Error(t, err)
}
