package openai

import (
	"encoding/json"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	instructor "github.com/mikkihugo/instructor-go"
)

// extractionTool wraps the response schema as a single function the model is
// forced to call.
func extractionTool(schema *instructor.ResponseSchema) openai.ChatCompletionToolParam {
	var params shared.FunctionParameters
	name := "extract"
	description := "Extract structured data matching the schema from the conversation."
	if schema != nil {
		if len(schema.Schema) > 0 {
			json.Unmarshal(schema.Schema, &params)
		}
		if schema.Name != "" {
			name = schema.Name
		}
		if schema.Description != "" {
			description = schema.Description
		}
	}
	return openai.ChatCompletionToolParam{
		Function: shared.FunctionDefinitionParam{
			Name:        name,
			Description: openai.String(description),
			Parameters:  params,
		},
	}
}

func buildSchemaFormat(schema *instructor.ResponseSchema) openai.ChatCompletionNewParamsResponseFormatUnion {
	var schemaMap map[string]any
	name := "response_schema"
	description := ""
	if schema != nil {
		json.Unmarshal(schema.Schema, &schemaMap)
		if schema.Name != "" {
			name = schema.Name
		}
		description = schema.Description
	}

	// Strict mode requires additionalProperties: false on every object.
	addAdditionalPropertiesFalse(schemaMap)

	return openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &openai.ResponseFormatJSONSchemaParam{
			Type: "json_schema",
			JSONSchema: openai.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:        name,
				Description: openai.String(description),
				Schema:      schemaMap,
				Strict:      openai.Bool(true),
			},
		},
	}
}

// addAdditionalPropertiesFalse recursively adds additionalProperties: false to
// all object schemas, as OpenAI strict mode requires.
func addAdditionalPropertiesFalse(schema map[string]any) {
	if schema == nil {
		return
	}

	if schemaType, ok := schema["type"].(string); ok && schemaType == "object" {
		schema["additionalProperties"] = false
	}

	if props, ok := schema["properties"].(map[string]any); ok {
		for _, propSchema := range props {
			if propMap, ok := propSchema.(map[string]any); ok {
				addAdditionalPropertiesFalse(propMap)
			}
		}
	}

	if items, ok := schema["items"].(map[string]any); ok {
		addAdditionalPropertiesFalse(items)
	}
}
