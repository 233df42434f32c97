package anthropic

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	instructor "github.com/mikkihugo/instructor-go"
)

func TestConvertMessagesSeparatesSystem(t *testing.T) {
	msgs := []instructor.Message{
		{Role: instructor.RoleSystem, Content: "be terse"},
		{Role: instructor.RoleUser, Content: "hello"},
		{Role: instructor.RoleAssistant, Content: "hi"},
		{Role: instructor.RoleUser, Content: ""},
	}

	turns, system := convertMessages(msgs)
	require.Len(t, system, 1)
	assert.Equal(t, "be terse", system[0].Text)
	require.Len(t, turns, 2)
}

func TestExtractionToolFromSchema(t *testing.T) {
	schema := &instructor.ResponseSchema{
		Name: "person",
		Schema: json.RawMessage(`{
			"type": "object",
			"properties": {"name": {"type": "string"}},
			"required": ["name"]
		}`),
	}

	tool, choice := extractionTool(schema)
	require.NotNil(t, tool.OfTool)
	assert.Equal(t, "person", tool.OfTool.Name)
	assert.Equal(t, []string{"name"}, tool.OfTool.InputSchema.Required)
	require.NotNil(t, choice.OfTool)
	assert.Equal(t, "person", choice.OfTool.Name)
}

func TestExtractionToolDefaults(t *testing.T) {
	tool, choice := extractionTool(nil)
	require.NotNil(t, tool.OfTool)
	assert.Equal(t, "extract", tool.OfTool.Name)
	assert.Equal(t, "extract", choice.OfTool.Name)
}

func TestMessagesForPromptModes(t *testing.T) {
	schema := instructor.ResponseSchema{
		Name:   "person",
		Schema: json.RawMessage(`{"type":"object"}`),
	}
	req := instructor.NewRequest("claude-sonnet-4-5",
		[]instructor.Message{{Role: instructor.RoleUser, Content: "hi"}},
		instructor.WithMode(instructor.ModeMDJSON),
		instructor.WithResponseSchema(schema),
	)

	msgs := messagesFor(req)
	require.Len(t, msgs, 2)
	assert.Equal(t, instructor.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "```json")
	assert.NotEmpty(t, msgs[0].ID, "synthesized system message carries a generated ID")
}

func TestReaskEchoesRawOutput(t *testing.T) {
	a := &Adapter{}
	msgs := a.Reask("not json", nil)
	require.Len(t, msgs, 1)
	assert.Equal(t, instructor.RoleAssistant, msgs[0].Role)
	assert.Equal(t, "not json", msgs[0].Content)
	assert.NotEmpty(t, msgs[0].ID)
}
