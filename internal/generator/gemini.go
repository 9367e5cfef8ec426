package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/alexisbeaulieu97/skinlab/internal/config"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

type geminiBackend struct {
	baseURL string
}

type geminiRequest struct {
	Contents         []geminiContent        `json:"contents"`
	GenerationConfig geminiGenerationConfig `json:"generationConfig"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text    string `json:"text,omitempty"`
	Thought bool   `json:"thought,omitempty"`
}

type geminiGenerationConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   *openAPISchema `json:"responseSchema"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

func (g *geminiBackend) name() string { return config.ProviderGemini }

func (g *geminiBackend) endpoint(model string) string {
	return fmt.Sprintf("%s/models/%s:generateContent", g.baseURL, url.PathEscape(model))
}

func (g *geminiBackend) newRequest(ctx context.Context, model, apiKey, prompt string) (*http.Request, error) {
	payload := geminiRequest{
		Contents: []geminiContent{{
			Role:  "user",
			Parts: []geminiPart{{Text: Instruction(prompt)}},
		}},
		GenerationConfig: geminiGenerationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   geminiResponseSchema(),
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(model), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)
	return req, nil
}

// extractText concatenates the non-thought text parts of the first candidate.
func (g *geminiBackend) extractText(body []byte) (string, error) {
	var resp geminiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", skinerrors.NewGenerationError(skinerrors.ReasonMalformedResponse, fmt.Errorf("decode envelope: %w", err))
	}
	if len(resp.Candidates) == 0 {
		cause := errors.New("no candidates in response")
		if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
			cause = fmt.Errorf("prompt blocked: %s", resp.PromptFeedback.BlockReason)
		}
		return "", skinerrors.NewGenerationError(skinerrors.ReasonEmptyResponse, cause)
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part.Thought {
			continue
		}
		sb.WriteString(part.Text)
	}
	return sb.String(), nil
}
