package openai

import (
	"github.com/openai/openai-go"

	instructor "github.com/mikkihugo/instructor-go"
)

func convertMessages(messages []instructor.Message) []openai.ChatCompletionMessageParamUnion {
	var result []openai.ChatCompletionMessageParamUnion
	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case instructor.RoleSystem:
			result = append(result, openai.SystemMessage(msg.Content))
		case instructor.RoleAssistant:
			result = append(result, openai.AssistantMessage(msg.Content))
		default:
			result = append(result, openai.UserMessage(msg.Content))
		}
	}
	return result
}
