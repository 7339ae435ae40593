package generator

import (
	"log"
	"strings"
)

const geminiHost = "generativelanguage.googleapis.com"

// ResolveEndpoint normalizes a user-supplied LLM base URL. It is best-effort
// repair, not validation: reachability is decided by the remote call later.
// Rules are applied in order:
//  1. empty input is returned unchanged
//  2. a missing scheme gets "http://" prepended
//  3. a "ttp..." prefix (dropped leading h, e.g. "ttps://") gets the "h" back
//  4. the Gemini OpenAI-compat shim path "openai/" is appended when the host
//     is the Google generative-language API and the path lacks it
func ResolveEndpoint(raw string) string {
	if raw == "" {
		return raw
	}

	url := raw
	switch {
	case strings.HasPrefix(raw, "http"):
		// scheme present, leave it alone
	case strings.HasPrefix(raw, "ttp"):
		// ユーザーの入力ミス (ttps:// 等) への簡易的な対応
		url = "h" + raw
	default:
		url = "http://" + raw
	}

	if strings.Contains(url, geminiHost) && !strings.Contains(url, "/openai/") {
		if !strings.HasSuffix(url, "/") {
			url += "/"
		}
		url += "openai/"
	}

	if url != raw {
		log.Printf("[endpoint] corrected LLM URL %q -> %q", raw, url)
	}
	return url
}
