package generator

// Request describes one UI generation call from the frontend.
type Request struct {
	CurrentHTML  string `json:"current_html"`
	UserAction   string `json:"user_action"`
	APIKey       string `json:"api_key"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	LLMURL       string `json:"llm_url,omitempty"`
	Model        string `json:"model,omitempty"`
}

// Result is what one generation produces: the HTML fragment returned to the
// frontend plus the name of the artifact written to the log directory.
type Result struct {
	HTML     string
	Filename string
}
