package nvidia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"server/internal/bloggen"
	"server/internal/infra"
)

// Options configures the NVIDIA chat-completions client.
type Options struct {
	APIKey         string
	HTTPClient     *http.Client
	Logger         *infra.Logger
	RequestTimeout time.Duration
}

// Client performs HTTP calls against an OpenAI-compatible chat-completions
// endpoint. The endpoint URL and sampling parameters come from the model
// configuration passed to each call, so one client serves every registry
// entry.
type Client struct {
	apiKey     string
	httpClient *http.Client
	logger     *infra.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model            string        `json:"model"`
	Messages         []chatMessage `json:"messages"`
	Temperature      float64       `json:"temperature"`
	MaxTokens        int           `json:"max_tokens"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
	Stream           bool          `json:"stream"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// NewClient constructs a client with sane defaults and injected
// dependencies. An empty API key is allowed at construction time; calls
// fail with bloggen.ErrMissingAPIKey instead.
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.RequestTimeout
		if timeout <= 0 {
			timeout = 60 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	var logger *infra.Logger
	if opts.Logger != nil {
		logger = opts.Logger
	} else {
		discard := zerolog.New(io.Discard)
		l := infra.Logger(discard)
		logger = &l
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		httpClient: httpClient,
		logger:     logger,
	}
}

// HasCredentials reports whether the client can perform remote calls.
func (c *Client) HasCredentials() bool {
	return c.apiKey != ""
}

// Complete issues a single chat completion. One attempt, no retries; any
// transport error, non-2xx status or malformed body comes back as an
// error for the caller to fold into its failure envelope.
func (c *Client) Complete(ctx context.Context, model bloggen.ModelConfig, system, prompt string) (*bloggen.Completion, error) {
	if !c.HasCredentials() {
		return nil, bloggen.ErrMissingAPIKey
	}
	payload := chatRequest{
		Model: model.Name,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		Temperature:      model.Temperature,
		MaxTokens:        model.MaxTokens,
		TopP:             model.TopP,
		FrequencyPenalty: model.FrequencyPenalty,
		PresencePenalty:  model.PresencePenalty,
		Stream:           false,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("nvidia: encode request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, model.BaseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("nvidia: build request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("nvidia: http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("nvidia: read response: %w", err)
	}
	if resp.StatusCode >= 300 {
		return nil, &bloggen.UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}

	var decoded chatResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("nvidia: decode response: %w", err)
	}
	if len(decoded.Choices) == 0 {
		return nil, errors.New("nvidia: response contained no choices")
	}
	content := decoded.Choices[0].Message.Content
	c.logger.Debug().
		Str("model", model.Name).
		Int("content_bytes", len(content)).
		Msg("nvidia: completion received")
	return &bloggen.Completion{Content: content}, nil
}

var _ bloggen.Completer = (*Client)(nil)
