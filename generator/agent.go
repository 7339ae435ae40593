package generator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/HiroYokoyama/genai-ui-web/history"
)

// Defaults are the deployment-level fallbacks applied when a request does not
// name its own endpoint or model.
type Defaults struct {
	BaseURL string
	Model   string
}

// Agent runs the generation pipeline: resolve endpoint, build prompts, call
// the model, sanitize, persist the artifact and the history entry.
type Agent struct {
	factory  ClientFactory
	store    *history.Store
	logDir   string
	defaults Defaults
}

func NewAgent(factory ClientFactory, store *history.Store, logDir string, defaults Defaults) (*Agent, error) {
	if factory == nil {
		return nil, errors.New("llm client factory is required")
	}
	if store == nil {
		return nil, errors.New("history store is required")
	}
	if logDir == "" {
		return nil, errors.New("log directory is required")
	}
	return &Agent{factory: factory, store: store, logDir: logDir, defaults: defaults}, nil
}

// Generate performs one UI generation. The credential check runs before
// anything touches the network or the disk. A bare endpoint URL without an
// API key is accepted; local endpoints have no key.
func (a *Agent) Generate(ctx context.Context, req Request) (Result, error) {
	if req.APIKey == "" && req.LLMURL == "" {
		return Result{}, ErrInvalidConfig
	}

	baseURL := a.defaults.BaseURL
	if req.LLMURL != "" {
		baseURL = ResolveEndpoint(req.LLMURL)
	}
	model := req.Model
	if model == "" {
		model = a.defaults.Model
	}

	client, err := a.factory(LLMSettings{APIKey: req.APIKey, BaseURL: baseURL})
	if err != nil {
		return Result{}, err
	}

	raw, err := client.Complete(ctx, model, BuildPrompt(req))
	if err != nil {
		log.Printf("[generate] upstream error: %v", err)
		return Result{}, &UpstreamError{Err: err}
	}

	html := renderIfMarkdown(Sanitize(raw))

	now := time.Now()
	filename, err := WriteArtifact(a.logDir, html, now)
	if err != nil {
		return Result{}, fmt.Errorf("write artifact: %w", err)
	}

	entry := history.Entry{
		Intent:   req.UserAction,
		Filename: filename,
		Time:     now.Format("15:04:05"),
		Model:    model,
	}
	if err := a.store.Append(entry); err != nil {
		return Result{}, fmt.Errorf("append history: %w", err)
	}

	log.Printf("[generate] [%s] generated & logged: %s", entry.Time, filename)
	return Result{HTML: html, Filename: filename}, nil
}

// ListModels queries an endpoint for its available model identifiers, in the
// order the remote reports them.
func (a *Agent) ListModels(ctx context.Context, llmURL, apiKey string) ([]string, error) {
	if llmURL == "" && apiKey == "" {
		return nil, ErrInvalidConfig
	}

	var baseURL string
	if llmURL != "" {
		baseURL = ResolveEndpoint(llmURL)
	}

	client, err := a.factory(LLMSettings{APIKey: apiKey, BaseURL: baseURL})
	if err != nil {
		return nil, err
	}

	models, err := client.ListModels(ctx)
	if err != nil {
		log.Printf("[models] error fetching models: %v", err)
		return nil, wrapUpstream(err)
	}
	return models, nil
}
