// Package idgen provides ID generation for requests and history entries.
package idgen

import (
	"strings"

	"github.com/google/uuid"
)

// Generator creates unique identifiers.
type Generator interface {
	// Generate creates a new unique ID.
	Generate() string
	// GenerateWithPrefix creates a new unique ID with the given prefix.
	GenerateWithPrefix(prefix string) string
}

// UUIDGenerator issues random UUID-based identifiers.
type UUIDGenerator struct{}

// NewUUIDGenerator creates a UUID-backed generator.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate creates a new unique ID.
func (g *UUIDGenerator) Generate() string {
	return uuid.NewString()
}

// GenerateWithPrefix creates an ID like "NTF-9f0c...". The prefix is
// upper-cased and joined with a hyphen.
func (g *UUIDGenerator) GenerateWithPrefix(prefix string) string {
	if prefix == "" {
		return g.Generate()
	}
	return strings.ToUpper(prefix) + "-" + uuid.NewString()
}

// GenerateRequestID creates an ID for a pipeline request.
func GenerateRequestID() string {
	return "REQ-" + uuid.NewString()
}

// GenerateEntryID creates an ID for a history entry.
func GenerateEntryID() string {
	return "NTF-" + uuid.NewString()
}
