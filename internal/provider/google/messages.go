package google

import (
	"google.golang.org/genai"

	instructor "github.com/mikkihugo/instructor-go"
)

// convertMessages maps the conversation onto Gemini content turns. The Gemini
// API has no separate system channel here, so system messages become user
// turns carrying context.
func convertMessages(messages []instructor.Message) []*genai.Content {
	var contents []*genai.Content

	for _, msg := range messages {
		if msg.Content == "" {
			continue
		}
		role := "user"
		if msg.Role == instructor.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: msg.Content}},
		})
	}

	return contents
}
