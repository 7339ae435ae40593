package generator

import "context"

// LLMClient 抽象大模型客户端，便于替换/Mock。
type LLMClient interface {
	Complete(ctx context.Context, model string, prompt Prompt) (string, error)
	ListModels(ctx context.Context) ([]string, error)
}

// LLMSettings carries the per-request endpoint binding. The base URL has
// already been through ResolveEndpoint by the time a client is built.
type LLMSettings struct {
	APIKey  string
	BaseURL string
}

// ClientFactory builds an LLMClient bound to one endpoint. The agent calls it
// once per request because the key and URL arrive with the request.
type ClientFactory func(LLMSettings) (LLMClient, error)
