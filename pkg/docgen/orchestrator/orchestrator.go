package orchestrator

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/google/uuid"

	"ai-docauthor-be/internal/entity"
	"ai-docauthor-be/pkg/ai"
	"ai-docauthor-be/pkg/docgen/evaluation"
	"ai-docauthor-be/pkg/docgen/section"
	"ai-docauthor-be/pkg/events"
)

// ErrRunInProgress is returned when a generate-all or improve-all run is
// already active for the document. One run per document at a time.
var ErrRunInProgress = errors.New("a generation run is already in progress for this document")

// Orchestrator sequences the multi-section workflows. Within a run,
// sections are processed strictly in document order: each section's prompt
// includes the just-updated content of its predecessor, so this is a design
// requirement, not accidental serialization.
type Orchestrator struct {
	sections  *section.Generator
	evaluator *evaluation.Evaluator
	bus       *events.Bus
	logger    *log.Logger

	mu      sync.Mutex
	running map[uuid.UUID]bool
}

func New(sections *section.Generator, evaluator *evaluation.Evaluator, bus *events.Bus, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		sections:  sections,
		evaluator: evaluator,
		bus:       bus,
		logger:    logger,
		running:   make(map[uuid.UUID]bool),
	}
}

func (o *Orchestrator) acquire(docId uuid.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.running[docId] {
		return ErrRunInProgress
	}
	o.running[docId] = true
	return nil
}

// Running reports whether a run currently holds the document's slot.
func (o *Orchestrator) Running(docId uuid.UUID) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.running[docId]
}

func (o *Orchestrator) release(docId uuid.UUID) {
	o.mu.Lock()
	defer o.mu.Unlock()
	delete(o.running, docId)
}

func (o *Orchestrator) publish(eventType string, doc *entity.Document, data map[string]interface{}) {
	if o.bus == nil {
		return
	}
	evt := events.NewProgressEvent(eventType, doc.Id.String(), data)
	if err := o.bus.Publish(events.TopicProgress, evt); err != nil {
		o.logger.Printf("[ORCHESTRATOR] Failed to publish %s: %v", eventType, err)
	}
}

// GenerateAll regenerates every section sequentially in document order,
// optionally repeating the full pass for cross-section refinement. A
// section failure aborts the run; completed sections keep their new
// revisions, untouched sections keep their history.
func (o *Orchestrator) GenerateAll(ctx context.Context, doc *entity.Document, passes int) error {
	if err := o.acquire(doc.Id); err != nil {
		return err
	}
	defer o.release(doc.Id)

	if passes < 1 {
		passes = 1
	}

	// Snapshot the section list so manual add/delete during the run cannot
	// move the slice under the loop; the generator locks each step itself.
	doc.Lock()
	docTitle := doc.Title
	sections := append([]*entity.Section(nil), doc.Sections...)
	doc.Unlock()

	for pass := 1; pass <= passes; pass++ {
		for _, sec := range sections {
			doc.Lock()
			secTitle := sec.Title
			doc.Unlock()

			o.publish(events.TypeSectionGenerationStarted, doc, map[string]interface{}{
				"section_id":    sec.Id.String(),
				"section_title": secTitle,
				"pass":          pass,
			})

			result, err := o.sections.Generate(ctx, doc, sec)
			if err != nil {
				o.publish(events.TypeSectionFailed, doc, map[string]interface{}{
					"section_id":    sec.Id.String(),
					"section_title": secTitle,
					"pass":          pass,
					"error":         err.Error(),
				})
				o.publish(events.TypeRunFailed, doc, map[string]interface{}{"pass": pass})
				return err
			}

			o.publish(events.TypeSectionGenerated, doc, map[string]interface{}{
				"section_id":    sec.Id.String(),
				"section_title": secTitle,
				"pass":          pass,
				"strength":      result.Strength,
			})
		}
	}

	o.publish(events.TypeRunCompleted, doc, map[string]interface{}{"passes": passes})
	o.logger.Printf("[ORCHESTRATOR] Generated all %d sections of %q (%d pass(es))", len(sections), docTitle, passes)
	return nil
}

// ImproveAll applies an evaluation's improvement list to every section in
// order, publishing progress section-by-section, then re-evaluates once.
func (o *Orchestrator) ImproveAll(ctx context.Context, doc *entity.Document, improvements []string) (*ai.EvaluationResult, error) {
	if err := o.acquire(doc.Id); err != nil {
		return nil, err
	}
	defer o.release(doc.Id)

	result, err := o.evaluator.ApplyImprovements(ctx, doc, improvements, func(p evaluation.ImproveProgress) {
		data := map[string]interface{}{
			"section_id":    p.SectionId,
			"section_title": p.SectionTitle,
			"strength":      p.Strength,
		}
		eventType := events.TypeSectionImproved
		if p.Err != nil {
			eventType = events.TypeSectionFailed
			data["error"] = p.Err.Error()
		}
		o.publish(eventType, doc, data)
	})
	if err != nil {
		o.publish(events.TypeRunFailed, doc, nil)
		return nil, err
	}

	o.publish(events.TypeRunCompleted, doc, map[string]interface{}{
		"overall_score": result.OverallScore,
	})
	return result, nil
}
