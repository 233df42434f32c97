package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	instructor "github.com/mikkihugo/instructor-go"
)

func TestModelProviders(t *testing.T) {
	tests := []struct {
		model    ChatModel
		provider instructor.ProviderName
	}{
		{ClaudeSonnet45, instructor.ProviderAnthropic},
		{ClaudeHaiku45, instructor.ProviderAnthropic},
		{GPT52, instructor.ProviderOpenAI},
		{GPT5Nano, instructor.ProviderOpenAI},
		{Gemini3Pro, instructor.ProviderGoogle},
	}

	for _, tc := range tests {
		t.Run(tc.model.String(), func(t *testing.T) {
			assert.Equal(t, tc.provider, tc.model.Provider())
			assert.False(t, tc.model.IsZero())
		})
	}
}

func TestCustomModel(t *testing.T) {
	m := Custom("gpt-4o", instructor.ProviderOpenAI)
	assert.Equal(t, "gpt-4o", m.String())
	assert.Equal(t, instructor.ProviderOpenAI, m.Provider())
}

func TestZeroModel(t *testing.T) {
	var m ChatModel
	assert.True(t, m.IsZero())
}
