package instructor

import (
	"fmt"
	"strings"
)

// SchemaPrompt renders a system-message body instructing the model to answer
// with JSON matching the request's schema. Adapters use it for modes where
// the provider API has no native schema parameter.
func SchemaPrompt(schema *ResponseSchema) string {
	if schema == nil || len(schema.Schema) == 0 {
		return "Respond only with a valid JSON object."
	}
	var b strings.Builder
	b.WriteString("Respond only with a JSON object that matches the following JSON Schema")
	if schema.Name != "" {
		fmt.Fprintf(&b, " (%s)", schema.Name)
	}
	b.WriteString(":\n\n")
	b.Write(schema.Schema)
	if schema.Description != "" {
		b.WriteString("\n\n")
		b.WriteString(schema.Description)
	}
	return b.String()
}

// JSONBlock extracts the JSON payload from a markdown response. It prefers a
// fenced code block; failing that it falls back to the outermost braces. The
// input is returned unchanged when neither is found, leaving the decode step
// to report the failure.
func JSONBlock(content string) string {
	for _, fence := range []string{"```json", "```"} {
		start := strings.Index(content, fence)
		if start < 0 {
			continue
		}
		rest := content[start+len(fence):]
		end := strings.Index(rest, "```")
		if end < 0 {
			continue
		}
		return strings.TrimSpace(rest[:end])
	}

	open := strings.Index(content, "{")
	closing := strings.LastIndex(content, "}")
	if open >= 0 && closing > open {
		return strings.TrimSpace(content[open : closing+1])
	}
	return content
}
