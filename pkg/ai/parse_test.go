package ai

import (
	"errors"
	"testing"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "bare object",
			raw:  `{"type":"generic"}`,
			want: `{"type":"generic"}`,
		},
		{
			name: "json code fence",
			raw:  "```json\n{\"type\":\"generic\"}\n```",
			want: `{"type":"generic"}`,
		},
		{
			name: "plain code fence",
			raw:  "```\n{\"a\":1}\n```",
			want: `{"a":1}`,
		},
		{
			name: "prose around object",
			raw:  "Here is the result:\n{\"a\":1}\nHope that helps!",
			want: `{"a":1}`,
		},
		{
			name: "no object at all",
			raw:  "no json here",
			want: "no json here",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractJSON(tt.raw); got != tt.want {
				t.Errorf("ExtractJSON() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseStrength(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want int
	}{
		{name: "bare integer", raw: "85", want: 85},
		{name: "whitespace", raw: "  72 \n", want: 72},
		{name: "embedded in prose", raw: "Score: 64 out of 100", want: 64},
		{name: "non numeric", raw: "excellent", want: 0},
		{name: "empty", raw: "", want: 0},
		{name: "above range clamps", raw: "250", want: 100},
		{name: "zero", raw: "0", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStrength(tt.raw); got != tt.want {
				t.Errorf("ParseStrength(%q) = %d, want %d", tt.raw, got, tt.want)
			}
		})
	}
}

func TestDecodeSectionList(t *testing.T) {
	t.Run("valid reply", func(t *testing.T) {
		raw := `{"sections":[{"title":"Intro","description":"Opens the document","key_points":["a","b"]}]}`
		sections, err := DecodeSectionList(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(sections) != 1 {
			t.Fatalf("expected 1 section, got %d", len(sections))
		}
		if sections[0].ID == "" {
			t.Error("expected generated id for section without one")
		}
	})

	t.Run("keeps provided id", func(t *testing.T) {
		raw := `{"sections":[{"id":"sec-1","title":"Intro","description":"Opens"}]}`
		sections, err := DecodeSectionList(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sections[0].ID != "sec-1" {
			t.Errorf("id = %q, want sec-1", sections[0].ID)
		}
	})

	t.Run("empty sections array", func(t *testing.T) {
		_, err := DecodeSectionList(`{"sections":[]}`)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		_, err := DecodeSectionList(`{"sections":[{"title":"","description":"x"}]}`)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("not json", func(t *testing.T) {
		_, err := DecodeSectionList("I could not produce sections.")
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})
}

func TestDecodeClassification(t *testing.T) {
	t.Run("known type", func(t *testing.T) {
		cls, err := DecodeClassification(`{"type":"announcement","confidence":0.9}`)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cls.Type != DocumentTypeAnnouncement {
			t.Errorf("type = %q, want announcement", cls.Type)
		}
	})

	t.Run("unknown type", func(t *testing.T) {
		_, err := DecodeClassification(`{"type":"poem"}`)
		if !errors.Is(err, ErrUnknownDocumentType) {
			t.Errorf("expected ErrUnknownDocumentType, got %v", err)
		}
	})
}

func TestDecodeEvaluation(t *testing.T) {
	valid := `{
		"overall_score": 80,
		"categories": {
			"readability": 82, "relevance": 85, "completeness": 75,
			"factual_support": 70, "persuasiveness": 78, "consistency": 88
		},
		"improvements": ["tighten the intro"],
		"detailed_feedback": "Solid draft."
	}`

	t.Run("valid reply", func(t *testing.T) {
		result, err := DecodeEvaluation(valid)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.OverallScore != 80 {
			t.Errorf("overall = %d, want 80", result.OverallScore)
		}
		if len(result.Improvements) != 1 {
			t.Errorf("improvements = %d, want 1", len(result.Improvements))
		}
	})

	t.Run("missing category fails as out of range", func(t *testing.T) {
		raw := `{"overall_score":80,"categories":{"readability":82},"improvements":[],"detailed_feedback":""}`
		_, err := DecodeEvaluation(raw)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})

	t.Run("score above range", func(t *testing.T) {
		raw := `{
			"overall_score": 101,
			"categories": {
				"readability": 82, "relevance": 85, "completeness": 75,
				"factual_support": 70, "persuasiveness": 78, "consistency": 88
			},
			"improvements": [], "detailed_feedback": ""
		}`
		_, err := DecodeEvaluation(raw)
		if !errors.Is(err, ErrMalformedResponse) {
			t.Errorf("expected ErrMalformedResponse, got %v", err)
		}
	})
}
