package ai

import (
	"context"
)

// Message represents a chat message in a vendor-agnostic format
type Message struct {
	Role    string // "user", "assistant", "system"
	Content string
}

// Option allows for optional parameters like Temperature, MaxTokens, etc.
type Option func(*Options)

type Options struct {
	Temperature float64
	MaxTokens   int
	Model       string // Override default model
}

func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// Completer is the minimal vendor contract: one chat round-trip.
// Each vendor package (openai, anthropic, bedrock) implements this;
// the shared adapter builds the full operation set on top of it.
type Completer interface {
	Complete(ctx context.Context, messages []Message, options ...Option) (string, error)
}

// Provider defines the document-authoring operation set every vendor
// adapter must satisfy.
type Provider interface {
	// ClassifyDocument routes (title, purpose) to a structural document type.
	// A malformed classification is surfaced, never silently defaulted.
	ClassifyDocument(ctx context.Context, title, purpose string) (*Classification, error)

	// GenerateOutline produces free-text plan markdown. No schema is imposed
	// on the reply; vendor call failures propagate.
	GenerateOutline(ctx context.Context, req OutlineRequest) (string, error)

	// RefineOutline rewrites planText according to free-text feedback.
	RefineOutline(ctx context.Context, planText, feedback string) (string, error)

	// FinalizeOutline converts plan text into structured section descriptors.
	// An empty or schema-violating reply is a hard error.
	FinalizeOutline(ctx context.Context, planText string) ([]SectionDescriptor, error)

	// GenerateSectionContent produces prose for one section and scores it.
	// Scoring is best-effort: a failed or non-numeric score degrades to 0.
	GenerateSectionContent(ctx context.Context, req SectionRequest) (*SectionResult, error)

	// ImproveSectionContent rewrites existing prose applying the mandatory
	// improvements while preserving unaddressed key points.
	ImproveSectionContent(ctx context.Context, req ImproveRequest) (*SectionResult, error)

	// EvaluateDocument scores the assembled document across the fixed
	// category set. Missing categories or out-of-range scores are fatal.
	EvaluateDocument(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error)
}
