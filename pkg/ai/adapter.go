package ai

import (
	"context"
	"fmt"
	"strings"
)

// adapter implements the full Provider operation set over any vendor
// Completer. Prompt assembly, reply validation and the generate-then-score
// flow live here so the three vendors stay thin transport shims.
type adapter struct {
	name string
	c    Completer
}

// NewAdapter wraps a vendor completer into a Provider. The adapter is
// stateless and safe for concurrent use as long as the completer is.
func NewAdapter(name string, c Completer) Provider {
	return &adapter{name: name, c: c}
}

var _ Provider = &adapter{}

func (a *adapter) complete(ctx context.Context, system, user string, options ...Option) (string, error) {
	messages := []Message{
		{Role: "system", Content: system},
		{Role: "user", Content: user},
	}
	reply, err := a.c.Complete(ctx, messages, options...)
	if err != nil {
		return "", fmt.Errorf("%s provider: %w", a.name, err)
	}
	return reply, nil
}

func (a *adapter) ClassifyDocument(ctx context.Context, title, purpose string) (*Classification, error) {
	system, user := BuildClassifyPrompt(title, purpose)
	// Temperature 0: routing must be as deterministic as the vendor allows.
	reply, err := a.complete(ctx, system, user, WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("classify document: %w", err)
	}
	cls, err := DecodeClassification(reply)
	if err != nil {
		return nil, fmt.Errorf("classify document: %w", err)
	}
	return cls, nil
}

func (a *adapter) GenerateOutline(ctx context.Context, req OutlineRequest) (string, error) {
	system, user := BuildOutlinePrompt(req)
	reply, err := a.complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("generate outline: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (a *adapter) RefineOutline(ctx context.Context, planText, feedback string) (string, error) {
	system, user := BuildRefinePrompt(planText, feedback)
	reply, err := a.complete(ctx, system, user)
	if err != nil {
		return "", fmt.Errorf("refine outline: %w", err)
	}
	return strings.TrimSpace(reply), nil
}

func (a *adapter) FinalizeOutline(ctx context.Context, planText string) ([]SectionDescriptor, error) {
	system, user := BuildFinalizePrompt(planText)
	reply, err := a.complete(ctx, system, user, WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("finalize outline: %w", err)
	}
	sections, err := DecodeSectionList(reply)
	if err != nil {
		return nil, fmt.Errorf("finalize outline: %w", err)
	}
	return sections, nil
}

func (a *adapter) GenerateSectionContent(ctx context.Context, req SectionRequest) (*SectionResult, error) {
	system, user := BuildSectionPrompt(req)
	content, err := a.complete(ctx, system, user, WithTemperature(req.Temperature))
	if err != nil {
		return nil, fmt.Errorf("generate section content: %w", err)
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("generate section content: %w", ErrMalformedResponse)
	}

	return &SectionResult{
		Content:  content,
		Strength: a.scoreContent(ctx, req.SectionTitle, req.SectionDescription, content),
	}, nil
}

func (a *adapter) ImproveSectionContent(ctx context.Context, req ImproveRequest) (*SectionResult, error) {
	system, user := BuildImprovePrompt(req)
	content, err := a.complete(ctx, system, user, WithTemperature(req.Temperature))
	if err != nil {
		return nil, fmt.Errorf("improve section content: %w", err)
	}
	// A blank rewrite would wipe the section on the next revision append.
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, fmt.Errorf("improve section content: %w", ErrMalformedResponse)
	}

	return &SectionResult{
		Content:  content,
		Strength: a.scoreContent(ctx, req.SectionTitle, req.SectionDescription, content),
	}, nil
}

// scoreContent runs the best-effort scoring sub-call at temperature 0.
// Any failure degrades to 0 instead of failing the whole operation.
func (a *adapter) scoreContent(ctx context.Context, title, description, content string) int {
	system, user := BuildScorePrompt(title, description, content)
	reply, err := a.complete(ctx, system, user, WithTemperature(0), WithMaxTokens(8))
	if err != nil {
		return 0
	}
	return ParseStrength(reply)
}

func (a *adapter) EvaluateDocument(ctx context.Context, req EvaluationRequest) (*EvaluationResult, error) {
	system, user := BuildEvaluatePrompt(req)
	reply, err := a.complete(ctx, system, user, WithTemperature(0))
	if err != nil {
		return nil, fmt.Errorf("evaluate document: %w", err)
	}
	result, err := DecodeEvaluation(reply)
	if err != nil {
		return nil, fmt.Errorf("evaluate document: %w", err)
	}
	return result, nil
}
