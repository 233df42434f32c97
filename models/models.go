// Package models provides provider-tagged model constants.
//
// Use these with the client package so requests are routed to the right
// provider backend without importing provider-specific packages.
package models

import instructor "github.com/mikkihugo/instructor-go"

// ChatModel represents a chat model from a specific provider.
type ChatModel struct {
	id       string
	provider instructor.ProviderName
}

// String returns the API identifier for this model.
func (m ChatModel) String() string { return m.id }

// Provider returns which provider this model belongs to.
func (m ChatModel) Provider() instructor.ProviderName { return m.provider }

// IsZero reports whether the model is unset.
func (m ChatModel) IsZero() bool { return m.id == "" }

// Custom creates a model reference for an identifier not listed here.
func Custom(id string, provider instructor.ProviderName) ChatModel {
	return ChatModel{id: id, provider: provider}
}

// Anthropic Claude models.
var (
	ClaudeOpus45   = ChatModel{id: "claude-opus-4-5", provider: instructor.ProviderAnthropic}
	ClaudeSonnet45 = ChatModel{id: "claude-sonnet-4-5", provider: instructor.ProviderAnthropic}
	ClaudeHaiku45  = ChatModel{id: "claude-haiku-4-5", provider: instructor.ProviderAnthropic}

	// DefaultClaudeModel is the recommended default Anthropic model.
	DefaultClaudeModel = ClaudeSonnet45
)

// OpenAI GPT models.
var (
	GPT52     = ChatModel{id: "gpt-5.2", provider: instructor.ProviderOpenAI}
	GPT51     = ChatModel{id: "gpt-5.1", provider: instructor.ProviderOpenAI}
	GPT51Mini = ChatModel{id: "gpt-5.1-mini", provider: instructor.ProviderOpenAI}
	GPT5Nano  = ChatModel{id: "gpt-5-nano", provider: instructor.ProviderOpenAI}

	// DefaultGPTModel is the recommended default OpenAI model.
	DefaultGPTModel = GPT52
)

// Google Gemini models.
var (
	Gemini3Pro    = ChatModel{id: "gemini-3.0-pro", provider: instructor.ProviderGoogle}
	Gemini25Flash = ChatModel{id: "gemini-2.5-flash", provider: instructor.ProviderGoogle}

	// DefaultGeminiModel is the recommended default Google model.
	DefaultGeminiModel = Gemini25Flash
)
