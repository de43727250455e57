// Package llm is the seam to the external text-generation step. The rest
// of the service treats whatever comes back through here as untrusted
// input: adjustments and red flags are parsed and clamped in features.go
// before any scoring code sees them.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"
)

const (
	defaultTimeout   = 25 * time.Second
	defaultMaxTokens = 4000
	maxRetries       = 1

	openAIEndpoint = "https://api.openai.com/v1/chat/completions"
	defaultModel   = "gpt-4o-mini"
)

// ErrNotConfigured is returned when no API key is available.
var ErrNotConfigured = errors.New("llm not configured")

type CallOptions struct {
	Timeout   time.Duration
	MaxTokens int
}

// Provider generates a JSON object from a system prompt and a user
// payload. Implementations must respect ctx cancellation.
type Provider interface {
	GenerateJSON(ctx context.Context, systemPrompt, userPayload string, opts CallOptions) (map[string]any, error)
}

// OpenAIProvider calls the chat-completions API in JSON mode, retrying
// once with backoff on 5xx responses and timeouts.
type OpenAIProvider struct {
	apiKey string
	model  string
	client *http.Client
}

func NewOpenAI(apiKey, model string) (*OpenAIProvider, error) {
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	if model == "" {
		model = defaultModel
	}
	return &OpenAIProvider{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{},
	}, nil
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	MaxTokens      int           `json:"max_tokens"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat struct {
		Type string `json:"type"`
	} `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *OpenAIProvider) GenerateJSON(ctx context.Context, systemPrompt, userPayload string, opts CallOptions) (map[string]any, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		out, retryable, err := p.call(ctx, systemPrompt, userPayload, timeout, maxTokens)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if !retryable || attempt == maxRetries {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(time.Duration(attempt+1) * time.Second):
		}
	}
	return nil, lastErr
}

func (p *OpenAIProvider) call(ctx context.Context, systemPrompt, userPayload string, timeout time.Duration, maxTokens int) (map[string]any, bool, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPayload},
		},
		MaxTokens:   maxTokens,
		Temperature: 0.7,
	}
	reqBody.ResponseFormat.Type = "json_object"

	buf, err := json.Marshal(reqBody)
	if err != nil {
		return nil, false, err
	}

	cctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(cctx, http.MethodPost, openAIEndpoint, bytes.NewReader(buf))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	res, err := p.client.Do(req)
	if err != nil {
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return nil, true, errors.New("llm timeout")
		}
		return nil, true, err
	}
	defer res.Body.Close()

	var out chatResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, res.StatusCode >= 500, fmt.Errorf("decode response: %w", err)
	}
	if res.StatusCode >= 500 {
		return nil, true, fmt.Errorf("openai %d", res.StatusCode)
	}
	if res.StatusCode != http.StatusOK {
		msg := fmt.Sprintf("openai error %d", res.StatusCode)
		if out.Error != nil && out.Error.Message != "" {
			msg = out.Error.Message
		}
		return nil, false, errors.New(msg)
	}

	raw := "{}"
	if len(out.Choices) > 0 {
		if c := strings.TrimSpace(out.Choices[0].Message.Content); c != "" {
			raw = c
		}
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(raw), &obj); err != nil {
		return nil, false, fmt.Errorf("model returned invalid JSON: %w", err)
	}
	return obj, false, nil
}
