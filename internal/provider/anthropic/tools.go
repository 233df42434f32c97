package anthropic

import (
	"encoding/json"

	"github.com/anthropics/anthropic-sdk-go"

	instructor "github.com/mikkihugo/instructor-go"
)

// extractionTool builds the synthetic tool the model is forced to call, along
// with the tool choice that forces it.
func extractionTool(schema *instructor.ResponseSchema) (anthropic.ToolUnionParam, anthropic.ToolChoiceUnionParam) {
	var schemaMap map[string]any
	name := "extract"
	description := "Extract structured data matching the schema from the conversation."
	if schema != nil {
		if len(schema.Schema) > 0 {
			json.Unmarshal(schema.Schema, &schemaMap)
		}
		if schema.Name != "" {
			name = schema.Name
		}
		if schema.Description != "" {
			description = schema.Description
		}
	}
	if schemaMap == nil {
		schemaMap = map[string]any{
			"type":                 "object",
			"additionalProperties": true,
		}
	}

	var required []string
	if reqVal, ok := schemaMap["required"].([]any); ok {
		for _, r := range reqVal {
			if s, ok := r.(string); ok {
				required = append(required, s)
			}
		}
	}

	tool := anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        name,
			Description: anthropic.String(description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schemaMap["properties"],
				Required:   required,
			},
		},
	}

	choice := anthropic.ToolChoiceUnionParam{
		OfTool: &anthropic.ToolChoiceToolParam{
			Name: name,
		},
	}

	return tool, choice
}
