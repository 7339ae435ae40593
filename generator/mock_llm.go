package generator

import "context"

// MockLLM 一个简单的占位实现，便于本地调试与测试，不调用外部模型。
type MockLLM struct {
	Response string
	Models   []string
	Err      error

	LastModel  string
	LastPrompt Prompt
	Calls      int
}

func (m *MockLLM) Complete(_ context.Context, model string, prompt Prompt) (string, error) {
	m.Calls++
	m.LastModel = model
	m.LastPrompt = prompt
	if m.Err != nil {
		return "", m.Err
	}
	if m.Response != "" {
		return m.Response, nil
	}
	return `<div class="p-4">mock screen</div>`, nil
}

func (m *MockLLM) ListModels(_ context.Context) ([]string, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Models, nil
}
