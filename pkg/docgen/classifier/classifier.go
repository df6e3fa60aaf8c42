package classifier

import (
	"context"
	"log"

	"ai-docauthor-be/pkg/ai"
)

// Structural templates per document type, seeded into the outline prompt.
// The generic type gets none: the model plans freely.
var templates = map[ai.DocumentType][]string{
	ai.DocumentTypeAnnouncement: {
		"Overview",
		"What's New",
		"Key Benefits",
		"Availability and Pricing",
		"Call to Action",
	},
	ai.DocumentTypePresentation: {
		"Introduction",
		"Agenda",
		"Main Content",
		"Key Takeaways",
		"Next Steps",
	},
}

// Classifier is the routing step that decides which structural template a
// document should follow before any outline is drafted.
type Classifier struct {
	provider ai.Provider
	logger   *log.Logger
}

func New(provider ai.Provider, logger *log.Logger) *Classifier {
	return &Classifier{
		provider: provider,
		logger:   logger,
	}
}

// Classify asks the provider for a document type. A malformed decision
// propagates as an error; downstream pipeline selection depends on it.
func (c *Classifier) Classify(ctx context.Context, title, purpose string) (*ai.Classification, error) {
	cls, err := c.provider.ClassifyDocument(ctx, title, purpose)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("[CLASSIFIER] %q classified as %s", title, cls.Type)
	return cls, nil
}

// TemplateHints returns the canned section scaffold for a document type.
func TemplateHints(t ai.DocumentType) []string {
	return templates[t]
}
