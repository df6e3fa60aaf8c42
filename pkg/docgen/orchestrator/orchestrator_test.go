package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/pkg/ai"
	"ai-docauthor-be/pkg/docgen/evaluation"
	"ai-docauthor-be/pkg/docgen/section"
	"ai-docauthor-be/pkg/events"
)

type stubProvider struct {
	mu         sync.Mutex
	generateFn func(req ai.SectionRequest) (*ai.SectionResult, error)
	improveFn  func(req ai.ImproveRequest) (*ai.SectionResult, error)
	evaluateFn func(req ai.EvaluationRequest) (*ai.EvaluationResult, error)
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
func (s *stubProvider) GenerateSectionContent(_ context.Context, req ai.SectionRequest) (*ai.SectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.generateFn != nil {
		return s.generateFn(req)
	}
	return &ai.SectionResult{Content: "prose for " + req.SectionTitle, Strength: 60}, nil
}
func (s *stubProvider) ImproveSectionContent(_ context.Context, req ai.ImproveRequest) (*ai.SectionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.improveFn != nil {
		return s.improveFn(req)
	}
	return &ai.SectionResult{Content: "improved " + req.SectionTitle, Strength: 80}, nil
}
func (s *stubProvider) EvaluateDocument(_ context.Context, req ai.EvaluationRequest) (*ai.EvaluationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.evaluateFn != nil {
		return s.evaluateFn(req)
	}
	return &ai.EvaluationResult{
		OverallScore: 85,
		Categories: ai.EvaluationCategories{
			Readability: 85, Relevance: 85, Completeness: 85,
			FactualSupport: 85, Persuasiveness: 85, Consistency: 85,
		},
	}, nil
}

func newOrchestrator(provider ai.Provider, bus *events.Bus) *Orchestrator {
	quiet := log.New(io.Discard, "", 0)
	gen := section.NewGenerator(provider, nil, quiet)
	eval := evaluation.New(provider, gen, quiet)
	return New(gen, eval, bus, quiet)
}

func testDoc(titles ...string) *entity.Document {
	doc := &entity.Document{Id: uuid.New(), Title: "Launch Note", Purpose: "Announce v2"}
	for _, title := range titles {
		doc.Sections = append(doc.Sections, &entity.Section{
			Id:              uuid.New(),
			Title:           title,
			SourceOption:    entity.SourceOptionModel,
			CurrentRevision: -1,
		})
	}
	return doc
}

func TestGenerateAllSequentialWithFreshNeighbors(t *testing.T) {
	type call struct {
		title       string
		prevContent string
	}
	var calls []call
	provider := &stubProvider{
		generateFn: func(req ai.SectionRequest) (*ai.SectionResult, error) {
			c := call{title: req.SectionTitle}
			if req.Previous != nil {
				c.prevContent = req.Previous.Content
			}
			calls = append(calls, c)
			return &ai.SectionResult{Content: "prose for " + req.SectionTitle, Strength: 60}, nil
		},
	}
	o := newOrchestrator(provider, nil)
	doc := testDoc("A", "B", "C")

	err := o.GenerateAll(context.Background(), doc, 1)
	require.NoError(t, err)

	require.Len(t, calls, 3)
	assert.Equal(t, "A", calls[0].title)
	assert.Equal(t, "B", calls[1].title)
	assert.Equal(t, "C", calls[2].title)
	// Each section's prompt sees the predecessor's just-generated content.
	assert.Equal(t, "prose for A", calls[1].prevContent)
	assert.Equal(t, "prose for B", calls[2].prevContent)

	for _, sec := range doc.Sections {
		assert.Len(t, sec.Revisions, 1)
	}
}

func TestGenerateAllMultiplePasses(t *testing.T) {
	calls := 0
	provider := &stubProvider{
		generateFn: func(req ai.SectionRequest) (*ai.SectionResult, error) {
			calls++
			return &ai.SectionResult{Content: "prose"}, nil
		},
	}
	o := newOrchestrator(provider, nil)
	doc := testDoc("A", "B")

	require.NoError(t, o.GenerateAll(context.Background(), doc, 2))
	assert.Equal(t, 4, calls)
	assert.Len(t, doc.Sections[0].Revisions, 2, "each pass appends a revision")
}

func TestGenerateAllAbortsOnFailure(t *testing.T) {
	provider := &stubProvider{
		generateFn: func(req ai.SectionRequest) (*ai.SectionResult, error) {
			if req.SectionTitle == "B" {
				return nil, errors.New("vendor down")
			}
			return &ai.SectionResult{Content: "prose for " + req.SectionTitle}, nil
		},
	}
	o := newOrchestrator(provider, nil)
	doc := testDoc("A", "B", "C")

	err := o.GenerateAll(context.Background(), doc, 1)
	require.Error(t, err)

	assert.Len(t, doc.Sections[0].Revisions, 1, "completed section keeps its revision")
	assert.Empty(t, doc.Sections[1].Revisions)
	assert.Empty(t, doc.Sections[2].Revisions, "later sections untouched after abort")
}

func TestGenerateAllSingleFlight(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	provider := &stubProvider{
		generateFn: func(req ai.SectionRequest) (*ai.SectionResult, error) {
			close(started)
			<-release
			return &ai.SectionResult{Content: "prose"}, nil
		},
	}
	o := newOrchestrator(provider, nil)
	doc := testDoc("A")

	done := make(chan error, 1)
	go func() { done <- o.GenerateAll(context.Background(), doc, 1) }()

	<-started
	assert.True(t, o.Running(doc.Id))
	err := o.GenerateAll(context.Background(), doc, 1)
	assert.ErrorIs(t, err, ErrRunInProgress)

	close(release)
	require.NoError(t, <-done)
	assert.False(t, o.Running(doc.Id), "slot releases after the run")

	// A different document is never blocked.
	other := testDoc("X")
	otherProvider := &stubProvider{}
	o2 := newOrchestrator(otherProvider, nil)
	require.NoError(t, o2.GenerateAll(context.Background(), other, 1))
}

// collectEventTypes consumes a subscription concurrently, acking each
// message so publishers are never stalled, and forwards the event types in
// delivery order.
func collectEventTypes(ctx context.Context, t *testing.T, bus *events.Bus, docId string) <-chan string {
	t.Helper()
	messages, err := bus.Subscribe(ctx, events.TopicProgress)
	require.NoError(t, err)

	types := make(chan string, 32)
	go func() {
		for msg := range messages {
			var payload map[string]interface{}
			if assert.NoError(t, json.Unmarshal(msg.Payload, &payload)) {
				assert.Equal(t, docId, payload["document_id"])
			}
			msg.Ack()
			types <- msg.Metadata.Get("event_type")
		}
	}()
	return types
}

func awaitEventTypes(t *testing.T, types <-chan string, n int) []string {
	t.Helper()
	var got []string
	timeout := time.After(2 * time.Second)
	for len(got) < n {
		select {
		case et := <-types:
			got = append(got, et)
		case <-timeout:
			t.Fatalf("timed out waiting for progress events, got %v", got)
		}
	}
	return got
}

func TestGenerateAllPublishesProgress(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	o := newOrchestrator(&stubProvider{}, bus)
	doc := testDoc("A")
	types := collectEventTypes(ctx, t, bus, doc.Id.String())

	require.NoError(t, o.GenerateAll(context.Background(), doc, 1))

	assert.Equal(t, []string{
		events.TypeSectionGenerationStarted,
		events.TypeSectionGenerated,
		events.TypeRunCompleted,
	}, awaitEventTypes(t, types, 3))
}

func TestImproveAllPublishesAndReEvaluates(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	o := newOrchestrator(&stubProvider{}, bus)
	doc := testDoc("A")
	doc.Sections[0].AppendRevision("draft")
	types := collectEventTypes(ctx, t, bus, doc.Id.String())

	result, err := o.ImproveAll(context.Background(), doc, []string{"tighten"})
	require.NoError(t, err)
	assert.Equal(t, 85, result.OverallScore)
	assert.Equal(t, "improved A", doc.Sections[0].LatestContent())

	assert.Equal(t, []string{events.TypeSectionImproved, events.TypeRunCompleted}, awaitEventTypes(t, types, 2))
}

func TestGenerateAllSerializesWithConcurrentReaders(t *testing.T) {
	provider := &stubProvider{
		generateFn: func(req ai.SectionRequest) (*ai.SectionResult, error) {
			time.Sleep(2 * time.Millisecond)
			return &ai.SectionResult{Content: "prose for " + req.SectionTitle, Strength: 60}, nil
		},
	}
	o := newOrchestrator(provider, nil)
	doc := testDoc("A", "B", "C")

	done := make(chan error, 1)
	go func() { done <- o.GenerateAll(context.Background(), doc, 1) }()

	// Read the way handlers do, under the document lock, while the run
	// appends revisions. The race detector fails this test if any section
	// step mutates outside the lock.
	for {
		select {
		case err := <-done:
			require.NoError(t, err)
			for _, sec := range doc.Sections {
				assert.Len(t, sec.Revisions, 1)
			}
			return
		default:
			doc.Lock()
			for _, sec := range doc.Sections {
				_ = sec.Title
				_ = sec.Content
				_ = len(sec.Revisions)
			}
			doc.Unlock()
		}
	}
}
