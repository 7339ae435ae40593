package generator

import (
	"context"
	"errors"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// genTemperature is the fixed sampling temperature for UI generation. Low
// enough to keep layout stable across turns, high enough to vary copy.
const genTemperature = 0.4

// OpenAILLM implements LLMClient using the official openai-go SDK. It works
// against any OpenAI-compatible endpoint (OpenAI, Gemini shim, local servers).
type OpenAILLM struct {
	opts []option.RequestOption
}

// NewOpenAILLM builds a client for one endpoint. Either an API key or a base
// URL must be present; local endpoints typically have no key.
func NewOpenAILLM(cfg LLMSettings) (LLMClient, error) {
	if cfg.APIKey == "" && cfg.BaseURL == "" {
		return nil, ErrInvalidConfig
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAILLM{opts: opts}, nil
}

func (o *OpenAILLM) Complete(ctx context.Context, model string, prompt Prompt) (string, error) {
	client := openai.NewClient(o.opts...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(prompt.System),
			openai.UserMessage(prompt.User),
		},
		Temperature: openai.Float(genTemperature),
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

func (o *OpenAILLM) ListModels(ctx context.Context) ([]string, error) {
	client := openai.NewClient(o.opts...)

	page, err := client.Models.List(ctx)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, m.ID)
	}
	return ids, nil
}
