// Package anthropic implements instructor.Adapter on top of the official
// Anthropic Go SDK.
package anthropic

import (
	"context"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	instructor "github.com/mikkihugo/instructor-go"
)

// defaultMaxTokens is used when the request does not set a limit; the
// Messages API requires one.
const defaultMaxTokens = 4096

// Adapter wraps the Anthropic SDK to implement instructor.Adapter.
type Adapter struct {
	client *anthropic.Client
}

// New creates a new Anthropic adapter with the given API key.
func New(apiKey string, opts ...option.RequestOption) *Adapter {
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := anthropic.NewClient(all...)
	return &Adapter{client: &client}
}

// Complete performs one Messages API round-trip and returns the raw response
// text shaped according to the request's mode.
func (a *Adapter) Complete(ctx context.Context, req *instructor.Request) (string, error) {
	maxTokens := int64(defaultMaxTokens)
	if req.MaxTokens > 0 {
		maxTokens = int64(req.MaxTokens)
	}

	msgs, system := convertMessages(messagesFor(req))
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(req.Model),
		MaxTokens: maxTokens,
		Messages:  msgs,
	}
	if len(system) > 0 {
		params.System = system
	}
	if req.Temperature != nil {
		params.Temperature = anthropic.Float(*req.Temperature)
	}

	// The Messages API has no native response-format parameter, so schema
	// modes are served by a forced synthetic tool whose input is the output.
	useTool := req.Mode == instructor.ModeTools || req.Mode == instructor.ModeJSONSchema
	if useTool {
		tool, choice := extractionTool(req.Schema)
		params.Tools = []anthropic.ToolUnionParam{tool}
		params.ToolChoice = choice
	}

	resp, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}

	content := ""
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			content += block.Text
		case "tool_use":
			if useTool {
				return string(block.Input), nil
			}
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
