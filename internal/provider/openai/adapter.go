// Package openai implements instructor.Adapter on top of the official
// OpenAI Go SDK.
package openai

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	instructor "github.com/mikkihugo/instructor-go"
)

// Adapter wraps the OpenAI SDK to implement instructor.Adapter.
type Adapter struct {
	client *openai.Client
}

// New creates a new OpenAI adapter with the given API key.
func New(apiKey string, opts ...option.RequestOption) *Adapter {
	all := append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	client := openai.NewClient(all...)
	return &Adapter{client: &client}
}

// Complete performs one chat completion round-trip and returns the raw
// response text shaped according to the request's mode.
func (a *Adapter) Complete(ctx context.Context, req *instructor.Request) (string, error) {
	params := openai.ChatCompletionNewParams{
		Model:    req.Model,
		Messages: convertMessages(messagesFor(req)),
	}
	if req.MaxTokens > 0 {
		params.MaxTokens = openai.Int(int64(req.MaxTokens))
	}
	if req.Temperature != nil {
		params.Temperature = openai.Float(*req.Temperature)
	}

	switch req.Mode {
	case instructor.ModeTools:
		params.Tools = []openai.ChatCompletionToolParam{extractionTool(req.Schema)}
		// One tool is defined, so requiring a tool call forces it.
		params.ToolChoice = openai.ChatCompletionToolChoiceOptionUnionParam{
			OfAuto: openai.String("required"),
		}
	case instructor.ModeJSONSchema:
		params.ResponseFormat = buildSchemaFormat(req.Schema)
	case instructor.ModeJSON:
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONObject: &openai.ResponseFormatJSONObjectParam{
				Type: "json_object",
			},
		}
	}

	resp, err := a.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", wrapError(err)
	}
	if len(resp.Choices) == 0 {
		return "", instructor.NewAdapterError("openai: response contained no choices", 0, nil)
	}

	msg := resp.Choices[0].Message
	if req.Mode == instructor.ModeTools && len(msg.ToolCalls) > 0 {
		return msg.ToolCalls[0].Function.Arguments, nil
	}
	if req.Mode == instructor.ModeMDJSON {
		return instructor.JSONBlock(msg.Content), nil
	}
	return msg.Content, nil
}

// Reask replays the invalid output as an assistant turn.
func (a *Adapter) Reask(raw string, _ *instructor.Request) []instructor.Message {
	return []instructor.Message{{
		ID:      instructor.GenerateMessageID(),
		Role:    instructor.RoleAssistant,
		Content: raw,
	}}
}

// messagesFor prepends the schema instruction for modes where the API has no
// native schema parameter.
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
