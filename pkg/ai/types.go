package ai

// DocumentType routes outline generation to a structural template.
type DocumentType string

const (
	DocumentTypeAnnouncement DocumentType = "announcement"
	DocumentTypePresentation DocumentType = "presentation"
	DocumentTypeGeneric      DocumentType = "generic"
)

// Classification is the routing decision for a document.
type Classification struct {
	Type     DocumentType `json:"type"`
	Audience string       `json:"audience,omitempty"`
	Tone     string       `json:"tone,omitempty"`
}

// OutlineRequest carries everything the initial plan prompt needs.
type OutlineRequest struct {
	Title       string
	Purpose     string
	References  []string // attached resource names usable as grounding
	DataSources []string // structural template hints for the document type
}

// SectionDescriptor is the structured definition of one section,
// distinct from its generated content.
type SectionDescriptor struct {
	ID              string   `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Objective       string   `json:"objective,omitempty"`
	KeyPoints       []string `json:"key_points,omitempty"`
	EstimatedLength string   `json:"estimated_length,omitempty"`
	TargetAudience  string   `json:"target_audience,omitempty"`
}

// NeighborSection is adjacent section content included for narrative flow.
type NeighborSection struct {
	Title   string
	Content string
}

// ContextSnippet is a ranked excerpt returned by the retrieval collaborator.
type ContextSnippet struct {
	Content string
	Source  string
	Score   float64
}

// SectionRequest assembles the full context for one section's prose.
type SectionRequest struct {
	DocumentTitle   string
	DocumentPurpose string

	SectionTitle       string
	SectionDescription string
	Objective          string
	KeyPoints          []string
	EstimatedLength    string // opaque human-readable string, passed through unchanged
	TargetAudience     string

	Temperature float64 // in [0,1], passed verbatim to the vendor
	Previous    *NeighborSection
	Next        *NeighborSection
	Snippets    []ContextSnippet
}

// ImproveRequest seeds generation with prior content plus mandatory changes.
type ImproveRequest struct {
	DocumentTitle   string
	DocumentPurpose string

	SectionTitle       string
	SectionDescription string
	CurrentContent     string
	Improvements       []string
	KeyPoints          []string
	EstimatedLength    string

	Temperature float64
	Snippets    []ContextSnippet
}

// SectionResult is generated prose plus its quality score.
type SectionResult struct {
	Content  string
	Strength int // 0-100; 0 when the scoring sub-call failed
}

// EvaluationSection is one assembled section as the evaluator sees it.
type EvaluationSection struct {
	Title   string
	Content string
}

// EvaluationRequest is the whole document as submitted for scoring.
type EvaluationRequest struct {
	Title    string
	Purpose  string
	Sections []EvaluationSection
}

// EvaluationCategories is the fixed scoring rubric. Every field must be
// in [1,100] for the result to be valid.
type EvaluationCategories struct {
	Readability    int `json:"readability"`
	Relevance      int `json:"relevance"`
	Completeness   int `json:"completeness"`
	FactualSupport int `json:"factual_support"`
	Persuasiveness int `json:"persuasiveness"`
	Consistency    int `json:"consistency"`
}

// EvaluationResult supersedes (never merges with) any prior evaluation.
type EvaluationResult struct {
	OverallScore     int                  `json:"overall_score"`
	Categories       EvaluationCategories `json:"categories"`
	Improvements     []string             `json:"improvements"`
	DetailedFeedback string               `json:"detailed_feedback"`
}
