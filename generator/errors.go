package generator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig rejects a request before any remote call is made.
var ErrInvalidConfig = errors.New("API Key or LLM URL is required")

// UpstreamError wraps a failure reported while talking to the remote LLM
// endpoint. Unreachable marks the URL/404 class of failures that the caller
// can usually fix by correcting the endpoint.
type UpstreamError struct {
	Err         error
	Unreachable bool
}

func (e *UpstreamError) Error() string {
	if e.Unreachable {
		return fmt.Sprintf("Invalid LLM URL (Did you include /openai/ for Gemini?): %v", e.Err)
	}
	return e.Err.Error()
}

func (e *UpstreamError) Unwrap() error { return e.Err }

// wrapUpstream classifies a remote failure by its error text. This is a
// string heuristic, not a parser: openai-go surfaces bad base URLs and 404s
// in the message itself.
func wrapUpstream(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	unreachable := strings.Contains(msg, "base_url") ||
		strings.Contains(msg, "URL") ||
		strings.Contains(msg, "404")
	return &UpstreamError{Err: err, Unreachable: unreachable}
}
