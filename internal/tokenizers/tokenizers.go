// Package tokenizers defines the tokenizer backend interface, the
// backend registry, and the dispatcher that turns an input text file
// into a segmented corpus document.
//
// A backend is given one non-empty input line at a time and returns
// sentence candidates: ordered token sequences that the document
// builder folds into the paragraph/sentence/word tree. Backends differ
// only in how they obtain the candidates; all conform to the same
// output shape.
package tokenizers

import (
	"sort"

	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
)

// Backend selector values accepted by the dispatcher.
const (
	// Uplug shells out to the Uplug toolkit, which writes the persisted
	// format itself.
	Uplug = "uplug"
	// Punkt is the rule-based backend (Punkt sentence models plus fixed
	// word-splitting rules).
	Punkt = "punkt"
	// Prose is the statistical backend (segmentation, part-of-speech
	// tags, lemmas).
	Prose = "prose"
	// Stanza is the neural backend.
	Stanza = "stanza"
	// TreeTagger defers tokenization to a downstream TreeTagger stage;
	// selecting it is a no-op here.
	TreeTagger = "treetagger"
)

// Segmenter is the capability interface every in-process backend
// adapter implements. Segment is never given a blank line; those are
// filtered by the dispatcher. Implementations must be deterministic
// for a given input and configuration and must not mutate shared state
// across calls.
type Segmenter interface {
	// Segment splits one line of text into sentence candidates.
	Segment(line string) ([][]segment.Token, error)
}

// Config carries per-run configuration to backend constructors.
type Config struct {
	// Language is the requested language code (e.g., "en", "nl").
	Language string
	// ModelsDir is the directory holding downloaded/installed models.
	ModelsDir string
	// ServerURL is the address of the native neural runtime, used by
	// the stanza backend when it cannot compose with the statistical
	// runtime.
	ServerURL string
}

// BackendDesc describes a registered in-process tokenizer backend.
type BackendDesc struct {
	// Name is the backend selector value.
	Name string
	// Supports reports whether the backend has a resource mapping for
	// the language. Checked by the dispatcher before construction.
	Supports func(language string) bool
	// New constructs a Segmenter for the given configuration. Fails
	// with a ResourceUnavailableError when a required model cannot be
	// obtained.
	New func(cfg Config) (Segmenter, error)
}

var registry = make(map[string]*BackendDesc)

// Register adds a backend to the registry. Backend packages call this
// from init; the command imports them for side effects.
func Register(b *BackendDesc) {
	if b != nil && b.Name != "" {
		registry[b.Name] = b
	}
}

// Lookup returns the registered backend with the given name, or nil.
func Lookup(name string) *BackendDesc {
	return registry[name]
}

// Names returns the registered backend names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
