package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedCompleter replies in order, recording every call.
type scriptedCompleter struct {
	replies []string
	errs    []error
	calls   [][]Message
	opts    []Options
}

func (s *scriptedCompleter) Complete(_ context.Context, messages []Message, options ...Option) (string, error) {
	idx := len(s.calls)
	s.calls = append(s.calls, messages)

	var o Options
	for _, opt := range options {
		opt(&o)
	}
	s.opts = append(s.opts, o)

	if idx < len(s.errs) && s.errs[idx] != nil {
		return "", s.errs[idx]
	}
	if idx < len(s.replies) {
		return s.replies[idx], nil
	}
	return "", errors.New("no scripted reply")
}

func TestAdapterClassifyDocument(t *testing.T) {
	c := &scriptedCompleter{replies: []string{`{"type":"presentation","confidence":0.8}`}}
	provider := NewAdapter("test", c)

	cls, err := provider.ClassifyDocument(context.Background(), "Q3 Review", "Brief leadership")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypePresentation, cls.Type)

	require.Len(t, c.calls, 1)
	assert.Equal(t, "system", c.calls[0][0].Role)
	assert.Equal(t, "user", c.calls[0][1].Role)
	assert.Zero(t, c.opts[0].Temperature, "classification must run at temperature 0")
}

func TestAdapterClassifyDocumentMalformed(t *testing.T) {
	c := &scriptedCompleter{replies: []string{"I think it's a memo"}}
	provider := NewAdapter("test", c)

	_, err := provider.ClassifyDocument(context.Background(), "T", "P")
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAdapterGenerateSectionContentScoresBestEffort(t *testing.T) {
	t.Run("score call succeeds", func(t *testing.T) {
		c := &scriptedCompleter{replies: []string{"Generated prose.", "77"}}
		provider := NewAdapter("test", c)

		result, err := provider.GenerateSectionContent(context.Background(), SectionRequest{
			SectionTitle: "Intro",
			Temperature:  0.6,
		})
		require.NoError(t, err)
		assert.Equal(t, "Generated prose.", result.Content)
		assert.Equal(t, 77, result.Strength)

		require.Len(t, c.calls, 2)
		assert.Equal(t, 0.6, c.opts[0].Temperature)
		assert.Zero(t, c.opts[1].Temperature, "scoring must run at temperature 0")
	})

	t.Run("score call fails, content survives", func(t *testing.T) {
		c := &scriptedCompleter{
			replies: []string{"Generated prose.", ""},
			errs:    []error{nil, errors.New("rate limited")},
		}
		provider := NewAdapter("test", c)

		result, err := provider.GenerateSectionContent(context.Background(), SectionRequest{SectionTitle: "Intro"})
		require.NoError(t, err)
		assert.Equal(t, "Generated prose.", result.Content)
		assert.Equal(t, 0, result.Strength)
	})

	t.Run("score reply non numeric", func(t *testing.T) {
		c := &scriptedCompleter{replies: []string{"Generated prose.", "pretty good"}}
		provider := NewAdapter("test", c)

		result, err := provider.GenerateSectionContent(context.Background(), SectionRequest{SectionTitle: "Intro"})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Strength)
	})
}

func TestAdapterGenerateSectionContentFailurePropagates(t *testing.T) {
	c := &scriptedCompleter{errs: []error{errors.New("boom")}}
	provider := NewAdapter("test", c)

	_, err := provider.GenerateSectionContent(context.Background(), SectionRequest{SectionTitle: "Intro"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "test provider")
	assert.Len(t, c.calls, 1, "no scoring call after a failed generation")
}

func TestAdapterFinalizeOutline(t *testing.T) {
	c := &scriptedCompleter{replies: []string{
		`{"sections":[{"title":"Overview","description":"What changed"},{"title":"Availability","description":"When and where"}]}`,
	}}
	provider := NewAdapter("test", c)

	sections, err := provider.FinalizeOutline(context.Background(), "## Plan\n1. Overview\n2. Availability")
	require.NoError(t, err)
	require.Len(t, sections, 2)
	assert.Equal(t, "Overview", sections[0].Title)
	assert.NotEmpty(t, sections[0].ID)
	assert.Zero(t, c.opts[0].Temperature)
}

func TestAdapterEvaluateDocumentMalformedIsFatal(t *testing.T) {
	c := &scriptedCompleter{replies: []string{`{"overall_score": 0}`}}
	provider := NewAdapter("test", c)

	_, err := provider.EvaluateDocument(context.Background(), EvaluationRequest{Title: "T"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestAdapterImproveSectionContent(t *testing.T) {
	c := &scriptedCompleter{replies: []string{"Improved prose.", "90"}}
	provider := NewAdapter("test", c)

	result, err := provider.ImproveSectionContent(context.Background(), ImproveRequest{
		SectionTitle:   "Intro",
		CurrentContent: "Old prose.",
		Improvements:   []string{"be punchier"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Improved prose.", result.Content)
	assert.Equal(t, 90, result.Strength)
}

func TestAdapterGenerateSectionContentRejectsBlankReply(t *testing.T) {
	c := &scriptedCompleter{replies: []string{"   \n\t  "}}
	provider := NewAdapter("test", c)

	_, err := provider.GenerateSectionContent(context.Background(), SectionRequest{SectionTitle: "Intro"})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Len(t, c.calls, 1, "no scoring call after a blank reply")
}

func TestAdapterImproveSectionContentRejectsBlankReply(t *testing.T) {
	c := &scriptedCompleter{replies: []string{""}}
	provider := NewAdapter("test", c)

	_, err := provider.ImproveSectionContent(context.Background(), ImproveRequest{
		SectionTitle:   "Intro",
		CurrentContent: "existing prose",
		Improvements:   []string{"tighten"},
	})
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Len(t, c.calls, 1)
}
