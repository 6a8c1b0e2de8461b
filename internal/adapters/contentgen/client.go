package contentgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/adedejiayobami0-ux/scene-backend/internal/domain"
)

const defaultBaseURL = "https://api.openai.com"

type openAIClient struct {
	client  *http.Client
	apiKey  string
	baseURL string
	model   string
}

// NewOpenAIClient returns a ContentGenerator backed by an OpenAI-compatible
// chat-completions API. baseURL may be overridden for compatible providers
// or test doubles.
func NewOpenAIClient(client *http.Client, apiKey, baseURL, model string) domain.ContentGenerator {
	if client == nil {
		client = http.DefaultClient
	}
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &openAIClient{
		client:  client,
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		model:   model,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

func (c *openAIClient) complete(ctx context.Context, system, user string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	endpoint := c.baseURL + "/v1/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call text-generation api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text-generation api returned status: %d", resp.StatusCode)
	}

	var data chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return "", fmt.Errorf("failed to decode text-generation response: %w", err)
	}
	if len(data.Choices) == 0 {
		return "", fmt.Errorf("text-generation api returned no choices")
	}
	return strings.TrimSpace(data.Choices[0].Message.Content), nil
}

func (c *openAIClient) Improve(ctx context.Context, event *domain.Event, draft string) (string, domain.PromoSource, error) {
	system := "You are a copywriter for event pages. Rewrite the draft description to be clear and inviting. Reply with the description only."
	user := fmt.Sprintf("Event: %s\nDraft: %s", event.Name, draft)
	text, err := c.complete(ctx, system, user)
	if err != nil {
		return "", "", err
	}
	return text, domain.PromoSourceAI, nil
}

func (c *openAIClient) Promote(ctx context.Context, event *domain.Event) ([]string, domain.PromoSource, error) {
	system := "You write short promotional blurbs for events. Produce three variants, one per line, no numbering."
	user := fmt.Sprintf("Event: %s\nWhen: %s\nWhere: %s\nAbout: %s",
		event.Name, formatDate(event), event.Location, event.Description)
	text, err := c.complete(ctx, system, user)
	if err != nil {
		return nil, "", err
	}
	var variants []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			variants = append(variants, line)
		}
	}
	if len(variants) == 0 {
		return nil, "", fmt.Errorf("text-generation api returned empty content")
	}
	return variants, domain.PromoSourceAI, nil
}

func formatDate(event *domain.Event) string {
	if event.Date == nil {
		return "date to be announced"
	}
	return event.Date.Format("Monday, January 2 2006 at 15:04")
}
