package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agenthands/ppinet/internal/config"
)

func TestNewClient_Disabled(t *testing.T) {
	c, err := NewClient(context.Background(), config.LLMConfig{})
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestNewClient_Providers(t *testing.T) {
	c, err := NewClient(context.Background(), config.LLMConfig{Provider: "OpenAI", Model: "gpt-4o-mini", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = NewClient(context.Background(), config.LLMConfig{Provider: "claude", Model: "claude-3-5-haiku-latest", APIKey: "k"})
	require.NoError(t, err)
	assert.IsType(t, &ClaudeClient{}, c)

	c, err = NewClient(context.Background(), config.LLMConfig{Provider: "ollama", Model: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)
}

func TestNewClient_Unsupported(t *testing.T) {
	_, err := NewClient(context.Background(), config.LLMConfig{Provider: "eliza"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported llm provider")
}
