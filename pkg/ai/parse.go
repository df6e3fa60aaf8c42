package ai

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// ExtractJSON trims chat noise around a JSON object: markdown code fences
// and any prose before the first '{' or after the last '}'.
func ExtractJSON(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		if idx := strings.LastIndex(s, "```"); idx >= 0 {
			s = s[:idx]
		}
		s = strings.TrimSpace(s)
	}
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

// ParseStrength extracts a 0-100 score from a reply that should be a bare
// integer. Anything non-numeric coerces to 0: content generation already
// succeeded, scoring is best-effort.
func ParseStrength(raw string) int {
	fields := strings.FieldsFunc(strings.TrimSpace(raw), func(r rune) bool {
		return r < '0' || r > '9'
	})
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			continue
		}
		if n < 0 {
			return 0
		}
		if n > 100 {
			return 100
		}
		return n
	}
	return 0
}

type sectionListPayload struct {
	Sections []SectionDescriptor `json:"sections"`
}

// DecodeSectionList parses a finalize-outline reply. A reply without a
// non-empty sections array, or with a section missing title or description,
// is a hard error: a plan must never silently become zero sections.
func DecodeSectionList(raw string) ([]SectionDescriptor, error) {
	var payload sectionListPayload
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(payload.Sections) == 0 {
		return nil, fmt.Errorf("%w: reply contains no sections", ErrMalformedResponse)
	}
	for i := range payload.Sections {
		s := &payload.Sections[i]
		if strings.TrimSpace(s.Title) == "" || strings.TrimSpace(s.Description) == "" {
			return nil, fmt.Errorf("%w: section %d is missing title or description", ErrMalformedResponse, i+1)
		}
		if s.ID == "" {
			s.ID = uuid.NewString()
		}
	}
	return payload.Sections, nil
}

// DecodeClassification parses a classify reply and rejects types outside
// the known set. Downstream pipeline selection depends on this, so there
// is no silent default.
func DecodeClassification(raw string) (*Classification, error) {
	var cls Classification
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &cls); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	switch cls.Type {
	case DocumentTypeAnnouncement, DocumentTypePresentation, DocumentTypeGeneric:
		return &cls, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDocumentType, cls.Type)
	}
}

// DecodeEvaluation parses an evaluate reply and validates the fixed rubric.
// A missing category unmarshals to 0, which is outside [1,100], so absent
// and out-of-range categories fail the same way.
func DecodeEvaluation(raw string) (*EvaluationResult, error) {
	var result EvaluationResult
	if err := json.Unmarshal([]byte(ExtractJSON(raw)), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if err := ValidateEvaluation(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ValidateEvaluation enforces the evaluation invariants: six categories and
// the overall score, each an integer in [1,100].
func ValidateEvaluation(result *EvaluationResult) error {
	scores := map[string]int{
		"overall_score":   result.OverallScore,
		"readability":     result.Categories.Readability,
		"relevance":       result.Categories.Relevance,
		"completeness":    result.Categories.Completeness,
		"factual_support": result.Categories.FactualSupport,
		"persuasiveness":  result.Categories.Persuasiveness,
		"consistency":     result.Categories.Consistency,
	}
	for name, score := range scores {
		if score < 1 || score > 100 {
			return fmt.Errorf("%w: category %s score %d outside [1,100]", ErrMalformedResponse, name, score)
		}
	}
	return nil
}
