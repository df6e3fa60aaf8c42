package store

import (
	"context"
	"errors"
	"time"
)

// ErrPreviewNotFound covers both unknown ids and expired entries.
var ErrPreviewNotFound = errors.New("preview not found")

// PreviewSection is one section of a stored preview payload.
type PreviewSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Preview is a write-once, read-many snapshot of an assembled document.
type Preview struct {
	Title     string           `json:"title"`
	Sections  []PreviewSection `json:"sections"`
	CreatedAt time.Time        `json:"created_at"`
}

// PreviewStore is the injected key-value store for previews. Entries have
// a defined TTL; there are no process-wide globals, so any backend that
// survives multi-instance deployment can sit behind this.
type PreviewStore interface {
	// Put stores a preview and returns its generated id.
	Put(ctx context.Context, preview *Preview) (string, error)

	// Get returns a stored preview or ErrPreviewNotFound.
	Get(ctx context.Context, id string) (*Preview, error)
}
