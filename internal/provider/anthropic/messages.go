package anthropic

import (
	"github.com/anthropics/anthropic-sdk-go"

	instructor "github.com/mikkihugo/instructor-go"
)

// convertMessages splits the conversation into Messages API turns and system
// text blocks. Empty messages are skipped; the API rejects empty text blocks.
func convertMessages(messages []instructor.Message) ([]anthropic.MessageParam, []anthropic.TextBlockParam) {
	var result []anthropic.MessageParam
	var system []anthropic.TextBlockParam

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		switch msg.Role {
		case instructor.RoleSystem:
			system = append(system, anthropic.TextBlockParam{Text: msg.Content})
		case instructor.RoleAssistant:
			result = append(result, anthropic.NewAssistantMessage(anthropic.NewTextBlock(msg.Content)))
		default:
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))
		}
	}

	return result, system
}
