package bedrock

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ai-docauthor-be/pkg/ai"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Client implements ai.Completer via Amazon Bedrock, invoking Anthropic
// models through the bedrock-runtime InvokeModel API.
type Client struct {
	modelID string
	runtime *bedrockruntime.Client
}

var _ ai.Completer = &Client{}

func NewClient(ctx context.Context, region, modelID string) (*Client, error) {
	if region == "" {
		return nil, errors.New("bedrock region is required")
	}
	if modelID == "" {
		modelID = "anthropic.claude-3-5-sonnet-20240620-v1:0"
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &Client{
		modelID: modelID,
		runtime: bedrockruntime.NewFromConfig(cfg),
	}, nil
}

// --- Request/Response structs (anthropic-on-bedrock payload) ---

type invokeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	System           string          `json:"system,omitempty"`
	Messages         []invokeMessage `json:"messages"`
	Temperature      *float64        `json:"temperature,omitempty"`
}

type invokeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type invokeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *Client) Complete(ctx context.Context, messages []ai.Message, options ...ai.Option) (string, error) {
	opts := &ai.Options{
		Temperature: 0.7,
		MaxTokens:   4096,
	}
	for _, o := range options {
		o(opts)
	}

	var system string
	msgs := make([]invokeMessage, 0, len(messages))
	for _, m := range messages {
		if m.Role == "system" {
			system = m.Content
			continue
		}
		role := m.Role
		if role == "model" {
			role = "assistant"
		}
		msgs = append(msgs, invokeMessage{Role: role, Content: m.Content})
	}

	modelID := c.modelID
	if opts.Model != "" {
		modelID = opts.Model
	}

	temp := opts.Temperature
	body, err := json.Marshal(invokeRequest{
		AnthropicVersion: "bedrock-2023-05-31",
		MaxTokens:        opts.MaxTokens,
		System:           system,
		Messages:         msgs,
		Temperature:      &temp,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	out, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelID),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invoke failed: %w", err)
	}

	var resp invokeResponse
	if err := json.Unmarshal(out.Body, &resp); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(resp.Content) == 0 || resp.Content[0].Type != "text" {
		return "", errors.New("unexpected response format from bedrock")
	}

	return resp.Content[0].Text, nil
}
