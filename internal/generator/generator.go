// Package generator turns a free-text prompt into a partial theme by making a
// single structured-output request to a hosted text-generation service.
package generator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/alexisbeaulieu97/skinlab/internal/config"
	"github.com/alexisbeaulieu97/skinlab/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

const maxResponseBytes = 4 << 20

var errMissingAPIKey = errors.New("no API key configured")

// backend shapes the provider-specific request and envelope.
type backend interface {
	name() string
	newRequest(ctx context.Context, model, apiKey, prompt string) (*http.Request, error)
	// extractText returns the model's text output or a *GenerationError.
	extractText(body []byte) (string, error)
}

// Options parameterise a Client.
type Options struct {
	Provider   string
	Model      string
	BaseURL    string
	APIKey     string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     ports.Logger
}

// Client implements ports.PaletteGenerator. It is safe for concurrent use;
// each Generate call is independent and makes at most one request.
type Client struct {
	backend backend
	http    *http.Client
	apiKey  string
	model   string
	info    ports.GeneratorInfo
	logger  ports.Logger
}

// New builds a client for the provider named in cfg.
func New(cfg config.GeneratorConfig, logger ports.Logger) (*Client, error) {
	return NewWithOptions(Options{
		Provider: cfg.Provider,
		Model:    cfg.Model,
		BaseURL:  cfg.BaseURL,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
		Logger:   logger,
	})
}

// NewWithOptions builds a client from explicit options.
func NewWithOptions(opts Options) (*Client, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")

	var b backend
	switch strings.ToLower(opts.Provider) {
	case "", config.ProviderGemini:
		if baseURL == "" {
			baseURL = config.DefaultGeminiBaseURL
		}
		if opts.Model == "" {
			opts.Model = config.DefaultGeminiModel
		}
		b = &geminiBackend{baseURL: baseURL}
	case config.ProviderOpenAI:
		if baseURL == "" {
			baseURL = config.DefaultOpenAIBaseURL
		}
		if opts.Model == "" {
			opts.Model = config.DefaultOpenAIModel
		}
		b = &openAIBackend{baseURL: baseURL}
	default:
		return nil, fmt.Errorf("unsupported generator provider %q", opts.Provider)
	}

	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = config.DefaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	return &Client{
		backend: b,
		http:    httpClient,
		apiKey:  strings.TrimSpace(opts.APIKey),
		model:   opts.Model,
		info: ports.GeneratorInfo{
			Provider: b.name(),
			Model:    opts.Model,
			Endpoint: baseURL,
		},
		logger: logger.With("component", "generator", "provider", b.name()),
	}, nil
}

// Describe reports the provider, model and endpoint in use.
func (c *Client) Describe() ports.GeneratorInfo {
	return c.info
}

// Generate sends prompt to the model and parses its answer into a fragment.
func (c *Client) Generate(ctx context.Context, prompt string) (ports.GenerationResult, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return ports.GenerationResult{}, skinerrors.NewGenerationError(skinerrors.ReasonEmptyPrompt, &skinerrors.EmptyPromptError{})
	}
	if c.apiKey == "" {
		return ports.GenerationResult{}, skinerrors.NewGenerationError(skinerrors.ReasonMissingAPIKey, errMissingAPIKey)
	}

	req, err := c.backend.newRequest(ctx, c.model, c.apiKey, prompt)
	if err != nil {
		return ports.GenerationResult{}, skinerrors.NewGenerationError(skinerrors.ReasonTransport, fmt.Errorf("build request: %w", err))
	}

	start := time.Now()
	c.logger.Debug(ctx, "sending generation request", "model", c.model, "prompt_chars", len([]rune(prompt)))

	body, err := c.send(req)
	if err != nil {
		c.logger.Warn(ctx, "generation request failed", "duration_ms", time.Since(start).Milliseconds(), "error", err.Error())
		return ports.GenerationResult{}, err
	}
	c.logger.Debug(ctx, "generation response received", "duration_ms", time.Since(start).Milliseconds(), "bytes", len(body))

	text, err := c.backend.extractText(body)
	if err != nil {
		return ports.GenerationResult{}, err
	}
	if strings.TrimSpace(text) == "" {
		return ports.GenerationResult{}, skinerrors.NewGenerationError(skinerrors.ReasonEmptyResponse, errors.New("no text in response"))
	}

	fragment, issues, err := ParseFragment(text)
	if err != nil {
		return ports.GenerationResult{}, err
	}
	return ports.GenerationResult{Fragment: fragment, Issues: issues}, nil
}

func (c *Client) send(req *http.Request) ([]byte, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		// The URL never carries the key, but the error text is scrubbed anyway.
		return nil, skinerrors.NewGenerationError(skinerrors.ReasonTransport,
			fmt.Errorf("send request to %s: %s", c.info.Endpoint, sanitize(err.Error(), c.apiKey)))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, skinerrors.NewGenerationError(skinerrors.ReasonTransport, fmt.Errorf("read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, skinerrors.NewGenerationError(skinerrors.ReasonTransport, newAPIError(resp.StatusCode, string(body), c.apiKey))
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return nil, skinerrors.NewGenerationError(skinerrors.ReasonEmptyResponse, errors.New("empty response body"))
	}
	return body, nil
}

var _ ports.PaletteGenerator = (*Client)(nil)
