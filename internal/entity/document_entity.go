package entity

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"ai-docauthor-be/pkg/ai"
)

// Source option values for a section's grounding context.
const (
	SourceOptionAll      = "all"
	SourceOptionSelected = "selected"
	SourceOptionModel    = "model"
)

// Resource status values, mirroring the ingestion collaborator.
const (
	ResourceStatusProcessing = "processing"
	ResourceStatusCompleted  = "completed"
	ResourceStatusError      = "error"
)

var ErrRevisionOutOfRange = errors.New("revision index out of range")

// Revision is one historical snapshot of a section's generated content.
// The log is append-only: no branching, last position is always newest.
type Revision struct {
	Content     string
	Description string // section description at the time of generation
	CreatedAt   time.Time
}

// Section is the runtime state of one document section: its descriptor
// plus generated content and revision history.
type Section struct {
	Id              uuid.UUID
	Title           string
	Description     string
	Objective       string
	KeyPoints       []string
	EstimatedLength string
	TargetAudience  string

	SourceOption    string   // "all" | "selected" | "model"
	SelectedSources []string // resource names, used when SourceOption == "selected"
	Temperature     *float64 // per-section override of the document default

	Content         string
	Strength        int
	IsGenerating    bool
	Revisions       []Revision
	CurrentRevision int // valid index into Revisions when non-empty, -1 otherwise
}

// AppendRevision records freshly generated content at the end of the log
// and advances the pointer to it.
func (s *Section) AppendRevision(content string) {
	s.Revisions = append(s.Revisions, Revision{
		Content:     content,
		Description: s.Description,
		CreatedAt:   time.Now(),
	})
	s.CurrentRevision = len(s.Revisions) - 1
	s.Content = content
}

// SelectRevision moves the current-revision pointer and restores that
// snapshot as the displayed content.
func (s *Section) SelectRevision(index int) error {
	if index < 0 || index >= len(s.Revisions) {
		return ErrRevisionOutOfRange
	}
	s.CurrentRevision = index
	s.Content = s.Revisions[index].Content
	return nil
}

// LatestContent returns the newest revision's content. Evaluation always
// reads this, not a possibly unsaved display edit; callers that want edits
// scored must push them into the log first.
func (s *Section) LatestContent() string {
	if len(s.Revisions) == 0 {
		return s.Content
	}
	return s.Revisions[len(s.Revisions)-1].Content
}

// Resource is an uploaded file or URL usable as grounding context.
type Resource struct {
	Id        int
	Name      string
	Path      string
	Status    string
	VectorIds []string
	CreatedAt time.Time
}

// PlanState tracks the outline before structured sections exist.
// Finalization is one-way; only Reset clears it.
type PlanState struct {
	CurrentPlan     string
	IsPlanning      bool
	IsPlanFinalized bool
}

// DocumentSettings are per-session generation defaults.
type DocumentSettings struct {
	DefaultTemperature float64 // in [0,1]
	DefaultLength      string  // opaque human-readable target
}

// Document is one authoring session. It lives in memory only; durable
// storage belongs to external collaborators. Background runs and HTTP
// handlers share the same instance, so all field access after construction
// happens under the document lock.
type Document struct {
	mu sync.Mutex

	Id        uuid.UUID
	Title     string
	Purpose   string
	Type      ai.DocumentType
	Settings  DocumentSettings
	Plan      PlanState
	Sections  []*Section
	Resources []*Resource
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Lock serializes access to the document's mutable state. Pipeline entry
// points hold it for one section step at a time, so readers are never
// blocked for a whole run.
func (d *Document) Lock() { d.mu.Lock() }

// Unlock releases the document lock.
func (d *Document) Unlock() { d.mu.Unlock() }

// SectionByID returns the section with the given id, or nil.
func (d *Document) SectionByID(id uuid.UUID) *Section {
	for _, s := range d.Sections {
		if s.Id == id {
			return s
		}
	}
	return nil
}

// RemoveSection deletes the section with the given id, preserving the
// order of the rest. It reports whether a section was removed.
func (d *Document) RemoveSection(id uuid.UUID) bool {
	for i, s := range d.Sections {
		if s.Id == id {
			d.Sections = append(d.Sections[:i], d.Sections[i+1:]...)
			return true
		}
	}
	return false
}

// CompletedResourceNames lists resources the ingestion collaborator has
// finished processing; only those are usable as grounding context.
func (d *Document) CompletedResourceNames() []string {
	names := make([]string, 0, len(d.Resources))
	for _, r := range d.Resources {
		if r.Status == ResourceStatusCompleted {
			names = append(names, r.Name)
		}
	}
	return names
}

// NewSectionFromDescriptor builds runtime section state from a provider
// descriptor. Sections start with no content and no revisions.
func NewSectionFromDescriptor(desc ai.SectionDescriptor) *Section {
	id, err := uuid.Parse(desc.ID)
	if err != nil {
		id = uuid.New()
	}
	return &Section{
		Id:              id,
		Title:           desc.Title,
		Description:     desc.Description,
		Objective:       desc.Objective,
		KeyPoints:       desc.KeyPoints,
		EstimatedLength: desc.EstimatedLength,
		TargetAudience:  desc.TargetAudience,
		SourceOption:    SourceOptionAll,
		SelectedSources: []string{},
		CurrentRevision: -1,
	}
}
