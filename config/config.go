// Package config loads the optional JSON deployment config.
package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds deployment settings. Every field has a working default so the
// server runs with no config file at all.
type Config struct {
	ServerAddr string    `json:"server_addr,omitempty"`
	LogDir     string    `json:"log_dir,omitempty"`
	LLM        LLMConfig `json:"llm,omitempty"`
}

// LLMConfig carries the deployment-level endpoint defaults. Credentials still
// arrive per request; base_url is only the fallback when a request names no
// endpoint (e.g. the Gemini OpenAI-compat shim for a Gemini deployment).
type LLMConfig struct {
	BaseURL string `json:"base_url,omitempty"`
	Model   string `json:"model,omitempty"`
}

// Load reads JSON config from disk. An empty path yields pure defaults.
func Load(path string) (Config, error) {
	cfg := Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = ":8000"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "generated_logs"
	}
	if cfg.LLM.Model == "" {
		cfg.LLM.Model = "gpt-4o"
	}
	return cfg, nil
}
