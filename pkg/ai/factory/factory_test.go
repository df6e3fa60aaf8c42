package factory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProviderUnknown(t *testing.T) {
	_, err := NewProvider("gemini", Credentials{APIKey: "k", ModelID: "m"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported AI provider")
}

func TestNewProviderOpenAI(t *testing.T) {
	p, err := NewProvider("openai", Credentials{APIKey: "sk-test", ModelID: "gpt-4o"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewProviderOpenAIMissingKey(t *testing.T) {
	_, err := NewProvider("openai", Credentials{ModelID: "gpt-4o"})
	assert.Error(t, err)
}

func TestNewProviderAnthropic(t *testing.T) {
	p, err := NewProvider("anthropic", Credentials{APIKey: "sk-ant", ModelID: "claude-sonnet-4-20250514"})
	require.NoError(t, err)
	assert.NotNil(t, p)
}

func TestNewProviderAnthropicMissingKey(t *testing.T) {
	_, err := NewProvider("anthropic", Credentials{ModelID: "claude-sonnet-4-20250514"})
	assert.Error(t, err)
}
