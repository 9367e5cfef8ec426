package generator

import (
	"fmt"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
)

const instructionTemplate = `Generate a UI theme for "Kosmos Panel" based on this description: %q.
Return a JSON object matching the full set of CSS variables required for Kosmos Panel.
Colors should be visually stunning, professional, and consistent with the requested vibe.`

// Instruction embeds prompt into the text sent to the model.
func Instruction(prompt string) string {
	return fmt.Sprintf(instructionTemplate, prompt)
}

func slotNames() []string {
	slots := theme.Slots()
	names := make([]string, len(slots))
	for i, s := range slots {
		names[i] = string(s)
	}
	return names
}

// openAPISchema is the response schema dialect used by generateContent:
// OpenAPI 3.0 subset with upper-case type names.
type openAPISchema struct {
	Type        string                    `json:"type"`
	Description string                    `json:"description,omitempty"`
	Properties  map[string]*openAPISchema `json:"properties,omitempty"`
	Required    []string                  `json:"required,omitempty"`
}

func geminiResponseSchema() *openAPISchema {
	colors := &openAPISchema{
		Type:       "OBJECT",
		Properties: make(map[string]*openAPISchema, theme.SlotCount),
		Required:   slotNames(),
	}
	for _, name := range colors.Required {
		colors.Properties[name] = &openAPISchema{Type: "STRING"}
	}
	return &openAPISchema{
		Type: "OBJECT",
		Properties: map[string]*openAPISchema{
			"name":   {Type: "STRING"},
			"icon":   {Type: "STRING", Description: "One emoji representing the theme"},
			"colors": colors,
		},
		Required: []string{"name", "icon", "colors"},
	}
}

// jsonSchema is the JSON Schema dialect accepted by structured outputs on
// OpenAI-compatible chat completion endpoints.
type jsonSchema struct {
	Type                 string                 `json:"type"`
	Description          string                 `json:"description,omitempty"`
	Properties           map[string]*jsonSchema `json:"properties,omitempty"`
	Required             []string               `json:"required,omitempty"`
	AdditionalProperties *bool                  `json:"additionalProperties,omitempty"`
}

func openAIResponseSchema() *jsonSchema {
	closed := false
	colors := &jsonSchema{
		Type:                 "object",
		Properties:           make(map[string]*jsonSchema, theme.SlotCount),
		Required:             slotNames(),
		AdditionalProperties: &closed,
	}
	for _, name := range colors.Required {
		colors.Properties[name] = &jsonSchema{Type: "string"}
	}
	return &jsonSchema{
		Type: "object",
		Properties: map[string]*jsonSchema{
			"name":   {Type: "string"},
			"icon":   {Type: "string", Description: "One emoji representing the theme"},
			"colors": colors,
		},
		Required:             []string{"name", "icon", "colors"},
		AdditionalProperties: &closed,
	}
}
