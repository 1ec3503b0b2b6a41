package core

import (
	"context"

	"github.com/agenthands/ppinet/internal/core/model"
)

type MockProvider struct {
	IDValue string
	Table   model.InteractionTable
	Err     error
	Calls   []string
}

func (m *MockProvider) ID() string   { return m.IDValue }
func (m *MockProvider) Name() string { return "Mock " + m.IDValue }

func (m *MockProvider) Fetch(ctx context.Context, symbol string) (model.InteractionTable, error) {
	m.Calls = append(m.Calls, symbol)
	if m.Err != nil {
		return model.NewInteractionTable("A", "B"), m.Err
	}
	return m.Table, nil
}

type MockLLM struct {
	Response string
	Err      error
}

func (m *MockLLM) Generate(ctx context.Context, prompt string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Response, nil
}
