package tools

import (
	"math/rand"
)

// ToolName is the name the dinner tool is registered under
const ToolName = "dinnercaster"

// ToolDescription describes the dinner tool to MCP clients
const ToolDescription = "Recommends a dinner based on day of week, time of year and local weather"

// DefaultVocabulary is the suggestion set used when none is configured
var DefaultVocabulary = []string{"Tacos"}

// DinnerCaster suggests a dinner from a fixed vocabulary
type DinnerCaster struct {
	vocabulary []string
}

// NewDinnerCaster creates a dinner caster with the given vocabulary.
// An empty vocabulary falls back to the default.
func NewDinnerCaster(vocabulary []string) *DinnerCaster {
	if len(vocabulary) == 0 {
		vocabulary = DefaultVocabulary
	}
	// Copy so callers can't mutate the suggestion set later
	vocab := make([]string, len(vocabulary))
	copy(vocab, vocabulary)

	return &DinnerCaster{vocabulary: vocab}
}

// Suggest returns a dinner suggestion. With a single-entry vocabulary the
// result is deterministic; otherwise the pick is uniformly random. Safe for
// concurrent use (the global rand source is locked).
func (d *DinnerCaster) Suggest() string {
	if len(d.vocabulary) == 1 {
		return d.vocabulary[0]
	}
	return d.vocabulary[rand.Intn(len(d.vocabulary))]
}

// Vocabulary returns a copy of the suggestion set
func (d *DinnerCaster) Vocabulary() []string {
	vocab := make([]string, len(d.vocabulary))
	copy(vocab, d.vocabulary)
	return vocab
}
