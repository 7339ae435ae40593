package generator

import (
	"fmt"
	"strings"
)

// Prompt is the message pair sent to the LLM.
type Prompt struct {
	System string
	User   string
}

// maxContextChars bounds how much of the current page is embedded in the
// prompt. Truncation is lossy and intentional; the model only needs the
// leading portion of the page to keep branding and layout consistent.
const maxContextChars = 5000

// DefaultSystemPrompt is the built-in persona used when the request does not
// carry an override.
const DefaultSystemPrompt = `You are an expert Senior UI/UX Engineer specialized in modern SaaS dashboards and web applications.
Your goal is to generate extremely high-quality, professional, and visually stunning HTML components using Tailwind CSS.

[STRICT OUTPUT RULES]
1. Return ONLY raw HTML code.
2. NO markdown formatting (DO NOT use ` + "```html or ```" + `).
3. NO explanation or conversational text.
4. Use Tailwind CSS for all styling. Use vibrant colors, glassmorphism, and modern shadows.
5. The UI must be responsive and feel "alive" (hover effects, smooth transitions).
6. All interactive elements (buttons, links) should look clickable but DO NOT include custom JavaScript functions or ` + "`onclick`" + ` handlers.
7. If the user interaction says "User pushed [Button Name] button", interpret this as a navigation or state change request and generate the corresponding NEXT screen.`

// BuildPrompt assembles the system/user message pair for one request.
func BuildPrompt(req Request) Prompt {
	system := req.SystemPrompt
	if system == "" {
		system = DefaultSystemPrompt
	}

	// Truncate on rune boundaries: a byte slice could split a multibyte
	// character and send invalid UTF-8 upstream.
	context := req.CurrentHTML
	if r := []rune(context); len(r) > maxContextChars {
		context = string(r[:maxContextChars])
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[User Action/Intent]: %s\n\n", req.UserAction))
	sb.WriteString("[Current HTML Context]:\n")
	sb.WriteString("```html\n")
	sb.WriteString(context)
	sb.WriteString("\n```\n\n")
	sb.WriteString("Update the UI based on the user's action. Maintain consistent branding and layout.")

	return Prompt{System: system, User: sb.String()}
}
