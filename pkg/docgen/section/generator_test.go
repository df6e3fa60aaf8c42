package section

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/pkg/ai"
)

type stubProvider struct {
	generateFn func(ctx context.Context, req ai.SectionRequest) (*ai.SectionResult, error)
	improveFn  func(ctx context.Context, req ai.ImproveRequest) (*ai.SectionResult, error)
}

func (s *stubProvider) ClassifyDocument(context.Context, string, string) (*ai.Classification, error) {
	return nil, errors.New("not used")
}
func (s *stubProvider) GenerateOutline(context.Context, ai.OutlineRequest) (string, error) {
	return "", errors.New("not used")
}
func (s *stubProvider) RefineOutline(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}
func (s *stubProvider) FinalizeOutline(context.Context, string) ([]ai.SectionDescriptor, error) {
	return nil, errors.New("not used")
}
func (s *stubProvider) GenerateSectionContent(ctx context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, req)
	}
	return &ai.SectionResult{Content: "prose", Strength: 50}, nil
}
func (s *stubProvider) ImproveSectionContent(ctx context.Context, req ai.ImproveRequest) (*ai.SectionResult, error) {
	if s.improveFn != nil {
		return s.improveFn(ctx, req)
	}
	return &ai.SectionResult{Content: "improved prose", Strength: 70}, nil
}
func (s *stubProvider) EvaluateDocument(context.Context, ai.EvaluationRequest) (*ai.EvaluationResult, error) {
	return nil, errors.New("not used")
}

type stubRetriever struct {
	snippets []ai.ContextSnippet
	err      error
	calls    [][]string // selectedSources per call
}

func (r *stubRetriever) QueryContext(_ context.Context, _, _ string, selectedSources []string) ([]ai.ContextSnippet, error) {
	r.calls = append(r.calls, selectedSources)
	return r.snippets, r.err
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func docWithSections(titles ...string) *entity.Document {
	doc := &entity.Document{
		Id:       uuid.New(),
		Title:    "Launch Note",
		Purpose:  "Announce v2",
		Settings: entity.DocumentSettings{DefaultTemperature: 0.7, DefaultLength: "medium"},
	}
	for _, title := range titles {
		doc.Sections = append(doc.Sections, &entity.Section{
			Id:              uuid.New(),
			Title:           title,
			Description:     title + " description",
			SourceOption:    entity.SourceOptionAll,
			CurrentRevision: -1,
		})
	}
	return doc
}

func TestGenerateRecordsRevision(t *testing.T) {
	provider := &stubProvider{
		generateFn: func(_ context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
			return &ai.SectionResult{Content: "fresh prose", Strength: 81}, nil
		},
	}
	g := NewGenerator(provider, &stubRetriever{}, quietLogger())
	doc := docWithSections("Intro")
	sec := doc.Sections[0]

	result, err := g.Generate(context.Background(), doc, sec)
	require.NoError(t, err)

	assert.Equal(t, "fresh prose", result.Content)
	assert.Equal(t, "fresh prose", sec.Content)
	assert.Equal(t, 81, sec.Strength)
	require.Len(t, sec.Revisions, 1)
	assert.Equal(t, 0, sec.CurrentRevision)
	assert.False(t, sec.IsGenerating)
}

func TestGenerateFailureKeepsHistory(t *testing.T) {
	provider := &stubProvider{
		generateFn: func(context.Context, ai.SectionRequest) (*ai.SectionResult, error) {
			return nil, errors.New("vendor down")
		},
	}
	g := NewGenerator(provider, &stubRetriever{}, quietLogger())
	doc := docWithSections("Intro")
	sec := doc.Sections[0]
	sec.AppendRevision("existing prose")

	_, err := g.Generate(context.Background(), doc, sec)
	require.Error(t, err)

	assert.Equal(t, "existing prose", sec.Content)
	assert.Len(t, sec.Revisions, 1)
	assert.False(t, sec.IsGenerating)
}

func TestGeneratePassesNeighbors(t *testing.T) {
	var gotReq ai.SectionRequest
	provider := &stubProvider{
		generateFn: func(_ context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
			gotReq = req
			return &ai.SectionResult{Content: "middle prose"}, nil
		},
	}
	g := NewGenerator(provider, &stubRetriever{}, quietLogger())
	doc := docWithSections("First", "Middle", "Last")
	doc.Sections[0].AppendRevision("first prose")
	doc.Sections[2].AppendRevision("last prose")

	_, err := g.Generate(context.Background(), doc, doc.Sections[1])
	require.NoError(t, err)

	require.NotNil(t, gotReq.Previous)
	assert.Equal(t, "First", gotReq.Previous.Title)
	assert.Equal(t, "first prose", gotReq.Previous.Content)
	require.NotNil(t, gotReq.Next)
	assert.Equal(t, "last prose", gotReq.Next.Content)
}

func TestGenerateFirstSectionHasNoPrevious(t *testing.T) {
	var gotReq ai.SectionRequest
	provider := &stubProvider{
		generateFn: func(_ context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
			gotReq = req
			return &ai.SectionResult{Content: "prose"}, nil
		},
	}
	g := NewGenerator(provider, &stubRetriever{}, quietLogger())
	doc := docWithSections("First", "Second")

	_, err := g.Generate(context.Background(), doc, doc.Sections[0])
	require.NoError(t, err)
	assert.Nil(t, gotReq.Previous)
	assert.NotNil(t, gotReq.Next)
}

func TestResolveSnippetsSourceOptions(t *testing.T) {
	t.Run("model skips retrieval", func(t *testing.T) {
		retriever := &stubRetriever{snippets: []ai.ContextSnippet{{Content: "x"}}}
		g := NewGenerator(&stubProvider{}, retriever, quietLogger())
		doc := docWithSections("Intro")
		doc.Sections[0].SourceOption = entity.SourceOptionModel

		_, err := g.Generate(context.Background(), doc, doc.Sections[0])
		require.NoError(t, err)
		assert.Empty(t, retriever.calls, "model-only sections must not call retrieval")
	})

	t.Run("selected with no sources skips retrieval", func(t *testing.T) {
		retriever := &stubRetriever{}
		g := NewGenerator(&stubProvider{}, retriever, quietLogger())
		doc := docWithSections("Intro")
		doc.Sections[0].SourceOption = entity.SourceOptionSelected
		doc.Sections[0].SelectedSources = nil

		_, err := g.Generate(context.Background(), doc, doc.Sections[0])
		require.NoError(t, err)
		assert.Empty(t, retriever.calls)
	})

	t.Run("selected passes the filter", func(t *testing.T) {
		retriever := &stubRetriever{}
		g := NewGenerator(&stubProvider{}, retriever, quietLogger())
		doc := docWithSections("Intro")
		doc.Sections[0].SourceOption = entity.SourceOptionSelected
		doc.Sections[0].SelectedSources = []string{"pricing.pdf"}

		_, err := g.Generate(context.Background(), doc, doc.Sections[0])
		require.NoError(t, err)
		require.Len(t, retriever.calls, 1)
		assert.Equal(t, []string{"pricing.pdf"}, retriever.calls[0])
	})

	t.Run("all searches without filter", func(t *testing.T) {
		retriever := &stubRetriever{}
		g := NewGenerator(&stubProvider{}, retriever, quietLogger())
		doc := docWithSections("Intro")

		_, err := g.Generate(context.Background(), doc, doc.Sections[0])
		require.NoError(t, err)
		require.Len(t, retriever.calls, 1)
		assert.Nil(t, retriever.calls[0])
	})

	t.Run("retrieval failure degrades to no context", func(t *testing.T) {
		var gotReq ai.SectionRequest
		provider := &stubProvider{
			generateFn: func(_ context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
				gotReq = req
				return &ai.SectionResult{Content: "prose"}, nil
			},
		}
		retriever := &stubRetriever{err: errors.New("retrieval down")}
		g := NewGenerator(provider, retriever, quietLogger())
		doc := docWithSections("Intro")

		_, err := g.Generate(context.Background(), doc, doc.Sections[0])
		require.NoError(t, err, "generation proceeds without context")
		assert.Empty(t, gotReq.Snippets)
	})
}

func TestEffectiveSettings(t *testing.T) {
	var gotReq ai.SectionRequest
	provider := &stubProvider{
		generateFn: func(_ context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
			gotReq = req
			return &ai.SectionResult{Content: "prose"}, nil
		},
	}
	g := NewGenerator(provider, &stubRetriever{}, quietLogger())
	doc := docWithSections("Intro")
	sec := doc.Sections[0]

	t.Run("document defaults apply", func(t *testing.T) {
		_, err := g.Generate(context.Background(), doc, sec)
		require.NoError(t, err)
		assert.Equal(t, 0.7, gotReq.Temperature)
		assert.Equal(t, "medium", gotReq.EstimatedLength)
	})

	t.Run("section overrides win", func(t *testing.T) {
		temp := 0.2
		sec.Temperature = &temp
		sec.EstimatedLength = "long"

		_, err := g.Generate(context.Background(), doc, sec)
		require.NoError(t, err)
		assert.Equal(t, 0.2, gotReq.Temperature)
		assert.Equal(t, "long", gotReq.EstimatedLength)
	})
}

func TestImproveRecordsRevision(t *testing.T) {
	var gotReq ai.ImproveRequest
	provider := &stubProvider{
		improveFn: func(_ context.Context, req ai.ImproveRequest) (*ai.SectionResult, error) {
			gotReq = req
			return &ai.SectionResult{Content: "improved prose", Strength: 88}, nil
		},
	}
	g := NewGenerator(provider, &stubRetriever{}, quietLogger())
	doc := docWithSections("Intro")
	sec := doc.Sections[0]
	sec.AppendRevision("draft prose")

	_, err := g.Improve(context.Background(), doc, sec, []string{"add numbers"})
	require.NoError(t, err)

	assert.Equal(t, "draft prose", gotReq.CurrentContent)
	assert.Equal(t, []string{"add numbers"}, gotReq.Improvements)
	assert.Equal(t, "improved prose", sec.Content)
	require.Len(t, sec.Revisions, 2)
	assert.Equal(t, 1, sec.CurrentRevision)
}
