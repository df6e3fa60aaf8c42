package factory

import (
	"context"
	"fmt"

	"ai-docauthor-be/pkg/ai"
	"ai-docauthor-be/pkg/ai/anthropic"
	"ai-docauthor-be/pkg/ai/bedrock"
	"ai-docauthor-be/pkg/ai/openai"
)

// Credentials is the configuration bag a provider needs. Which fields are
// required depends on the provider; validation happens at construction,
// never lazily on first use.
type Credentials struct {
	APIKey  string
	Region  string
	ModelID string
	BaseURL string
}

// NewProvider constructs exactly one provider adapter from a provider
// identifier. An unknown identifier is a fatal configuration error.
func NewProvider(providerType string, creds Credentials) (ai.Provider, error) {
	switch providerType {
	case "openai":
		c, err := openai.NewClient(creds.APIKey, creds.ModelID, creds.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("configure openai provider: %w", err)
		}
		return ai.NewAdapter("openai", c), nil
	case "anthropic":
		c, err := anthropic.NewClient(creds.APIKey, creds.ModelID, creds.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("configure anthropic provider: %w", err)
		}
		return ai.NewAdapter("anthropic", c), nil
	case "bedrock":
		c, err := bedrock.NewClient(context.Background(), creds.Region, creds.ModelID)
		if err != nil {
			return nil, fmt.Errorf("configure bedrock provider: %w", err)
		}
		return ai.NewAdapter("bedrock", c), nil
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", providerType)
	}
}
