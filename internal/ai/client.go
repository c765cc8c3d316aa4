package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"
)

// Client talks to an opaque OpenAI-compatible chat-completions
// endpoint. Completion logic lives entirely in the external service.
type Client struct {
	baseURL string
	apiKey  string
	model   string
	http    *http.Client
	prompts *PromptManager
}

func NewClient(prompts *PromptManager) *Client {
	baseURL := os.Getenv("AI_API_URL")
	if baseURL == "" {
		baseURL = "https://api.groq.com/openai/v1"
	}
	model := os.Getenv("AI_MODEL")
	if model == "" {
		model = "llama-3.3-70b-versatile"
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  os.Getenv("AI_API_KEY"),
		model:   model,
		http:    &http.Client{Timeout: 60 * time.Second},
		prompts: prompts,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type completionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Ask sends one user message prefixed with the assistant preset and
// returns the completion text.
func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	system, err := c.prompts.SystemPrompt("assistant")
	if err != nil {
		return "", err
	}

	body, err := json.Marshal(completionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: message},
		},
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("completion endpoint returned %d", resp.StatusCode)
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if len(completion.Choices) == 0 {
		return "", errors.New("completion endpoint returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
