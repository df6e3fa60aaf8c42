package openai

import (
	"context"
	"errors"
	"fmt"

	"ai-docauthor-be/pkg/ai"

	openaisdk "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Client implements ai.Completer using the official openai-go SDK
// (chat completions).
type Client struct {
	model string
	opts  []option.RequestOption
}

var _ ai.Completer = &Client{}

func NewClient(apiKey, model, baseURL string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openai api key is required")
	}
	if model == "" {
		model = "gpt-4o"
	}
	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	return &Client{model: model, opts: opts}, nil
}

func (c *Client) Complete(ctx context.Context, messages []ai.Message, options ...ai.Option) (string, error) {
	opts := &ai.Options{Temperature: 0.7}
	for _, o := range options {
		o(opts)
	}

	msgs := make([]openaisdk.ChatCompletionMessageParamUnion, 0, len(messages))
	for _, m := range messages {
		switch m.Role {
		case "system":
			msgs = append(msgs, openaisdk.SystemMessage(m.Content))
		case "assistant":
			msgs = append(msgs, openaisdk.ChatCompletionMessageParamOfAssistant(m.Content))
		default:
			msgs = append(msgs, openaisdk.UserMessage(m.Content))
		}
	}

	model := c.model
	if opts.Model != "" {
		model = opts.Model
	}

	params := openaisdk.ChatCompletionNewParams{
		Model:       openaisdk.ChatModel(model),
		Messages:    msgs,
		Temperature: openaisdk.Float(opts.Temperature),
	}
	if opts.MaxTokens > 0 {
		params.MaxTokens = openaisdk.Int(int64(opts.MaxTokens))
	}

	client := openaisdk.NewClient(c.opts...)
	resp, err := client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("openai: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}
