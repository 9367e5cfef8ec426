package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/alexisbeaulieu97/skinlab/internal/config"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

const systemPrompt = "You design colour themes for developer dashboards. Reply with JSON only."

type openAIBackend struct {
	baseURL string
}

type openAIChatRequest struct {
	Model          string               `json:"model"`
	Messages       []openAIMessage      `json:"messages"`
	ResponseFormat openAIResponseFormat `json:"response_format"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIResponseFormat struct {
	Type       string           `json:"type"`
	JSONSchema openAISchemaSpec `json:"json_schema"`
}

type openAISchemaSpec struct {
	Name   string      `json:"name"`
	Strict bool        `json:"strict"`
	Schema *jsonSchema `json:"schema"`
}

type openAIChatResponse struct {
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
			Refusal string  `json:"refusal,omitempty"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

func (o *openAIBackend) name() string { return config.ProviderOpenAI }

func (o *openAIBackend) newRequest(ctx context.Context, model, apiKey, prompt string) (*http.Request, error) {
	payload := openAIChatRequest{
		Model: model,
		Messages: []openAIMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: Instruction(prompt)},
		},
		ResponseFormat: openAIResponseFormat{
			Type: "json_schema",
			JSONSchema: openAISchemaSpec{
				Name:   "kosmos_theme",
				Strict: true,
				Schema: openAIResponseSchema(),
			},
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, o.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}

func (o *openAIBackend) extractText(body []byte) (string, error) {
	var resp openAIChatResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", skinerrors.NewGenerationError(skinerrors.ReasonMalformedResponse, fmt.Errorf("decode envelope: %w", err))
	}
	if len(resp.Choices) == 0 {
		return "", skinerrors.NewGenerationError(skinerrors.ReasonEmptyResponse, errors.New("no choices in response"))
	}
	msg := resp.Choices[0].Message
	if msg.Content == nil {
		cause := errors.New("no content in first choice")
		if msg.Refusal != "" {
			cause = fmt.Errorf("model refused: %s", sanitize(msg.Refusal))
		}
		return "", skinerrors.NewGenerationError(skinerrors.ReasonEmptyResponse, cause)
	}
	return *msg.Content, nil
}
