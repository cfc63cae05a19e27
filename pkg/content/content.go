// Package content defines the intermediate and final representations
// flowing through the pipeline. A generator produces Content exactly
// once; a formatter derives an Artifact from it without mutating the
// Content in place.
package content

import "time"

// Content is the structured output of a generator.
type Content struct {
	Kind        string         `json:"kind"`
	Body        string         `json:"body"`
	Metadata    map[string]any `json:"metadata,omitempty"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// New creates a Content value. The metadata map is copied so later
// changes to the caller's map do not leak into the content.
func New(kind, body string, metadata map[string]any, generatedAt time.Time) *Content {
	md := make(map[string]any, len(metadata))
	for k, v := range metadata {
		md[k] = v
	}
	return &Content{
		Kind:        kind,
		Body:        body,
		Metadata:    md,
		GeneratedAt: generatedAt,
	}
}

// Meta returns the metadata value for key, or nil.
func (c *Content) Meta(key string) any {
	return c.Metadata[key]
}

// Artifact is the fully formatted representation ready for delivery.
type Artifact struct {
	Kind     string `json:"kind"`
	Format   string `json:"format"`
	Rendered string `json:"rendered"`
}

// NewArtifact creates an Artifact derived from content.
func NewArtifact(c *Content, format, rendered string) *Artifact {
	return &Artifact{
		Kind:     c.Kind,
		Format:   format,
		Rendered: rendered,
	}
}
