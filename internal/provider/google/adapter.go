// Package google implements instructor.Adapter on top of the Google GenAI
// SDK (Gemini API).
package google

import (
	"context"

	"google.golang.org/genai"

	instructor "github.com/mikkihugo/instructor-go"
)

// Adapter wraps the Google GenAI SDK to implement instructor.Adapter.
type Adapter struct {
	client *genai.Client
}

// New creates a new Google adapter with the given API key.
func New(ctx context.Context, apiKey string) (*Adapter, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	return &Adapter{client: client}, nil
}

// Complete performs one GenerateContent round-trip and returns the raw
// response text shaped according to the request's mode.
func (a *Adapter) Complete(ctx context.Context, req *instructor.Request) (string, error) {
	contents := convertMessages(messagesFor(req))

	config := &genai.GenerateContentConfig{}
	if req.MaxTokens > 0 {
		config.MaxOutputTokens = int32(req.MaxTokens)
	}
	if req.Temperature != nil {
		temp := float32(*req.Temperature)
		config.Temperature = &temp
	}

	// The Gemini API enforces schemas natively, so the tool and schema modes
	// collapse onto constrained JSON generation.
	switch req.Mode {
	case instructor.ModeTools, instructor.ModeJSONSchema:
		config.ResponseMIMEType = "application/json"
		if req.Schema != nil {
			config.ResponseSchema = convertSchema(req.Schema.Schema)
		}
	case instructor.ModeJSON:
		config.ResponseMIMEType = "application/json"
	}

	resp, err := a.client.Models.GenerateContent(ctx, req.Model, contents, config)
	if err != nil {
		return "", wrapError(err)
	}

	content := ""
	if len(resp.Candidates) > 0 && resp.Candidates[0].Content != nil {
		for _, part := range resp.Candidates[0].Content.Parts {
			content += part.Text
		}
	}

	if req.Mode == instructor.ModeMDJSON {
		return instructor.JSONBlock(content), nil
	}
	return content, nil
}

// Reask replays the invalid output as an assistant turn.
func (a *Adapter) Reask(raw string, _ *instructor.Request) []instructor.Message {
	return []instructor.Message{{
		ID:      instructor.GenerateMessageID(),
		Role:    instructor.RoleAssistant,
		Content: raw,
	}}
}

// messagesFor prepends the schema instruction for the prompt-driven modes.
func messagesFor(req *instructor.Request) []instructor.Message {
	switch req.Mode {
	case instructor.ModeJSON:
		return prependSystem(req.Messages, instructor.SchemaPrompt(req.Schema))
	case instructor.ModeMDJSON:
		return prependSystem(req.Messages,
			instructor.SchemaPrompt(req.Schema)+"\n\nReturn the JSON inside a fenced ```json code block.")
	}
	return req.Messages
}

func prependSystem(messages []instructor.Message, content string) []instructor.Message {
	out := make([]instructor.Message, 0, len(messages)+1)
	out = append(out, instructor.Message{
		ID:      instructor.GenerateMessageID(),
		Role:    instructor.RoleSystem,
		Content: content,
	})
	return append(out, messages...)
}

var _ instructor.Adapter = (*Adapter)(nil)
