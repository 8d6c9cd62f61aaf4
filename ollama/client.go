// Package ollama provides question answering and Markdown formatting
// backed by a locally hosted model served by Ollama.
package ollama

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/taxagent/taxagent"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the default Ollama server address.
const DefaultBaseURL = "http://localhost:11434"

// DefaultModel is the default local model.
const DefaultModel = "llama3.1:8b"

// Message is a single message in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
	Stream   bool      `json:"stream,omitempty"`
}

type chatChoice struct {
	Index   int `json:"index"`
	Message struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"message"`
	FinishReason string `json:"finish_reason"`
}

type chatResponse struct {
	ID      string       `json:"id"`
	Object  string       `json:"object"`
	Choices []chatChoice `json:"choices"`
}

// Client talks to Ollama's OpenAI-compatible chat completions API.
// Requests are rate limited to one per second so a long formatting job
// cannot flood the local server.
type Client struct {
	baseURL    string
	model      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client for the given server and model. An empty
// baseURL or model selects the defaults.
func NewClient(baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL:    baseURL,
		model:      model,
		httpClient: http.DefaultClient,
		limiter:    rate.NewLimiter(rate.Limit(1), 1),
	}
}

// Chat sends a chat completion request and returns the model's reply.
func (c *Client) Chat(ctx context.Context, messages []Message) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	payload := chatRequest{Model: c.model, Messages: messages}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "marshal chat request: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "create chat request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "model request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", taxagent.Errorf(taxagent.EINTERNAL, "model returned status %d: %s", resp.StatusCode, string(raw))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "decode chat response: %v", err)
	}
	if len(chatResp.Choices) == 0 {
		return "", taxagent.Errorf(taxagent.EINTERNAL, "model returned no choices")
	}

	return chatResp.Choices[0].Message.Content, nil
}
