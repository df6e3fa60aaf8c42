package section

import (
	"context"
	"log"

	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/pkg/ai"
)

// Retriever is the external context-retrieval collaborator. A nil selected
// filter means "search all attached resources".
type Retriever interface {
	QueryContext(ctx context.Context, description, content string, selectedSources []string) ([]ai.ContextSnippet, error)
}

// Generator produces and improves prose for one section at a time:
// resolve grounding context, assemble the prompt with adjacent sections,
// invoke the provider, record the revision.
type Generator struct {
	provider  ai.Provider
	retriever Retriever
	logger    *log.Logger
}

func NewGenerator(provider ai.Provider, retriever Retriever, logger *log.Logger) *Generator {
	return &Generator{
		provider:  provider,
		retriever: retriever,
		logger:    logger,
	}
}

// resolveSnippets applies the section's source option. Retrieval is
// best-effort: any failure degrades to zero snippets, generation proceeds.
func (g *Generator) resolveSnippets(ctx context.Context, sec *entity.Section) []ai.ContextSnippet {
	var filter []string
	switch sec.SourceOption {
	case entity.SourceOptionModel:
		return nil
	case entity.SourceOptionSelected:
		if len(sec.SelectedSources) == 0 {
			// Selected but none chosen: nothing to retrieve, no call made.
			return nil
		}
		filter = sec.SelectedSources
	}

	if g.retriever == nil {
		return nil
	}

	snippets, err := g.retriever.QueryContext(ctx, sec.Description, sec.LatestContent(), filter)
	if err != nil {
		g.logger.Printf("[SECTION] Context retrieval failed for %q, proceeding without context: %v", sec.Title, err)
		return nil
	}
	return snippets
}

// neighbors returns the adjacent sections' existing content so the prompt
// can keep narrative flow across section boundaries.
func neighbors(doc *entity.Document, sec *entity.Section) (prev, next *ai.NeighborSection) {
	for i, s := range doc.Sections {
		if s.Id != sec.Id {
			continue
		}
		if i > 0 {
			p := doc.Sections[i-1]
			prev = &ai.NeighborSection{Title: p.Title, Content: p.LatestContent()}
		}
		if i < len(doc.Sections)-1 {
			n := doc.Sections[i+1]
			next = &ai.NeighborSection{Title: n.Title, Content: n.LatestContent()}
		}
		return prev, next
	}
	return nil, nil
}

func (g *Generator) effectiveLength(doc *entity.Document, sec *entity.Section) string {
	if sec.EstimatedLength != "" {
		return sec.EstimatedLength
	}
	return doc.Settings.DefaultLength
}

func (g *Generator) effectiveTemperature(doc *entity.Document, sec *entity.Section) float64 {
	if sec.Temperature != nil {
		return *sec.Temperature
	}
	return doc.Settings.DefaultTemperature
}

// Generate produces fresh prose for one section. On success the result is
// appended to the revision log and the pointer advances; on failure prior
// content and revisions are untouched. The document lock is held for the
// whole step: neighbor reads, the provider round-trip, and the revision
// write form one unit against concurrent handler access.
func (g *Generator) Generate(ctx context.Context, doc *entity.Document, sec *entity.Section) (*ai.SectionResult, error) {
	doc.Lock()
	defer doc.Unlock()

	sec.IsGenerating = true
	defer func() { sec.IsGenerating = false }()

	prev, next := neighbors(doc, sec)
	result, err := g.provider.GenerateSectionContent(ctx, ai.SectionRequest{
		DocumentTitle:      doc.Title,
		DocumentPurpose:    doc.Purpose,
		SectionTitle:       sec.Title,
		SectionDescription: sec.Description,
		Objective:          sec.Objective,
		KeyPoints:          sec.KeyPoints,
		EstimatedLength:    g.effectiveLength(doc, sec),
		TargetAudience:     sec.TargetAudience,
		Temperature:        g.effectiveTemperature(doc, sec),
		Previous:           prev,
		Next:               next,
		Snippets:           g.resolveSnippets(ctx, sec),
	})
	if err != nil {
		return nil, err
	}

	sec.Strength = result.Strength
	sec.AppendRevision(result.Content)
	return result, nil
}

// Improve rewrites existing content applying the mandatory improvements,
// with the same revision bookkeeping and locking as Generate.
func (g *Generator) Improve(ctx context.Context, doc *entity.Document, sec *entity.Section, improvements []string) (*ai.SectionResult, error) {
	doc.Lock()
	defer doc.Unlock()

	sec.IsGenerating = true
	defer func() { sec.IsGenerating = false }()

	result, err := g.provider.ImproveSectionContent(ctx, ai.ImproveRequest{
		DocumentTitle:      doc.Title,
		DocumentPurpose:    doc.Purpose,
		SectionTitle:       sec.Title,
		SectionDescription: sec.Description,
		CurrentContent:     sec.LatestContent(),
		Improvements:       improvements,
		KeyPoints:          sec.KeyPoints,
		EstimatedLength:    g.effectiveLength(doc, sec),
		Temperature:        g.effectiveTemperature(doc, sec),
		Snippets:           g.resolveSnippets(ctx, sec),
	})
	if err != nil {
		return nil, err
	}

	sec.Strength = result.Strength
	sec.AppendRevision(result.Content)
	return result, nil
}
