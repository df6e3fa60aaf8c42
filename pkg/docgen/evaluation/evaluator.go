package evaluation

import (
	"context"
	"errors"
	"log"

	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/pkg/ai"
	"ai-docauthor-be/pkg/docgen/section"
)

var ErrNoSections = errors.New("document has no sections to evaluate")

// ImproveProgress reports per-section progress during an improvement run,
// so callers can surface it incrementally rather than at the end.
type ImproveProgress struct {
	SectionId    string
	SectionTitle string
	Strength     int
	Err          error
}

// Evaluator scores assembled documents and applies improvement rounds.
type Evaluator struct {
	provider ai.Provider
	sections *section.Generator
	logger   *log.Logger
}

func New(provider ai.Provider, sections *section.Generator, logger *log.Logger) *Evaluator {
	return &Evaluator{
		provider: provider,
		sections: sections,
		logger:   logger,
	}
}

// Evaluate scores the whole document. It always reads each section's latest
// revision, not a possibly unsaved display edit. The document lock is held
// for the call so the snapshot sent to the provider is consistent.
func (e *Evaluator) Evaluate(ctx context.Context, doc *entity.Document) (*ai.EvaluationResult, error) {
	doc.Lock()
	defer doc.Unlock()

	if len(doc.Sections) == 0 {
		return nil, ErrNoSections
	}

	sections := make([]ai.EvaluationSection, 0, len(doc.Sections))
	for _, s := range doc.Sections {
		sections = append(sections, ai.EvaluationSection{
			Title:   s.Title,
			Content: s.LatestContent(),
		})
	}

	result, err := e.provider.EvaluateDocument(ctx, ai.EvaluationRequest{
		Title:    doc.Title,
		Purpose:  doc.Purpose,
		Sections: sections,
	})
	if err != nil {
		return nil, err
	}

	e.logger.Printf("[EVALUATION] %q scored %d overall", doc.Title, result.OverallScore)
	return result, nil
}

// ApplyImprovements walks sections in document order, rewrites each with
// the shared improvement list, then re-evaluates once to report the
// post-improvement score. A failure improving one section does not abort
// the rest: it is reported through onProgress and the loop continues.
func (e *Evaluator) ApplyImprovements(
	ctx context.Context,
	doc *entity.Document,
	improvements []string,
	onProgress func(ImproveProgress),
) (*ai.EvaluationResult, error) {
	doc.Lock()
	if len(doc.Sections) == 0 {
		doc.Unlock()
		return nil, ErrNoSections
	}
	// Snapshot the section list so concurrent add/delete cannot move the
	// slice under the loop. Each step then takes the lock itself.
	sections := append([]*entity.Section(nil), doc.Sections...)
	doc.Unlock()

	for _, sec := range sections {
		doc.Lock()
		skip := sec.LatestContent() == ""
		doc.Unlock()
		if skip {
			continue
		}

		_, err := e.sections.Improve(ctx, doc, sec, improvements)

		doc.Lock()
		progress := ImproveProgress{
			SectionId:    sec.Id.String(),
			SectionTitle: sec.Title,
			Strength:     sec.Strength,
			Err:          err,
		}
		doc.Unlock()

		if err != nil {
			e.logger.Printf("[EVALUATION] Improving %q failed, continuing: %v", progress.SectionTitle, err)
		}
		if onProgress != nil {
			onProgress(progress)
		}
	}

	return e.Evaluate(ctx, doc)
}
