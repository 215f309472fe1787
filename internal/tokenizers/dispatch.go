package tokenizers

import (
	"strings"

	"github.com/blakuxberry/preprocess-corpora-fork/core/corpusxml"
	"github.com/blakuxberry/preprocess-corpora-fork/core/errors"
	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/fileutil"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/logging"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers/uplug"
)

// Options configures one tokenization run.
type Options struct {
	// Input is the UTF-8 text file to tokenize (.xz accepted).
	Input string
	// Output is the path the persisted document is written to.
	Output string
	// Language is the language code.
	Language string
	// Backend is one of the backend selector values.
	Backend string
	// ModelsDir is the directory holding backend models.
	ModelsDir string
	// ServerURL is the native neural runtime address (stanza only).
	ServerURL string
	// UplugBin overrides the uplug executable name.
	UplugBin string
}

// Result summarizes a completed run.
type Result struct {
	// Paragraphs, Sentences, Words are the node counts of the built
	// document. Zero for external and skipped runs.
	Paragraphs int
	Sentences  int
	Words      int
	// External is true when the backend wrote the output itself.
	External bool
	// Skipped is true when the backend defers tokenization downstream
	// and nothing was written.
	Skipped bool
}

// Tokenize dispatches one run to the selected backend. Backend/language
// compatibility is validated before any processing begins and before
// any output file is created.
func Tokenize(opts Options) (*Result, error) {
	switch opts.Backend {
	case TreeTagger:
		// TreeTagger consumes the already-segmented plain text in a
		// downstream stage; there is nothing to do here.
		logging.Info("using TreeTagger tokenization", "input", opts.Input)
		return &Result{Skipped: true}, nil

	case Uplug:
		logging.Info("using Uplug tokenization", "input", opts.Input, "language", opts.Language)
		if err := uplug.Run(opts.Input, opts.Output, opts.Language, opts.UplugBin); err != nil {
			return nil, err
		}
		return &Result{External: true}, nil
	}

	b := Lookup(opts.Backend)
	if b == nil {
		return nil, errors.Wrapf(errors.ErrUnknownBackend, "backend %q", opts.Backend)
	}
	if !b.Supports(opts.Language) {
		return nil, errors.NewUnsupportedLanguage(opts.Backend, opts.Language)
	}

	logging.Info("using tokenization backend", "backend", opts.Backend, "language", opts.Language)
	seg, err := b.New(Config{
		Language:  opts.Language,
		ModelsDir: opts.ModelsDir,
		ServerURL: opts.ServerURL,
	})
	if err != nil {
		return nil, err
	}

	doc, err := run(seg, opts.Input)
	if err != nil {
		return nil, err
	}
	if err := corpusxml.WriteFile(opts.Output, doc); err != nil {
		return nil, errors.Wrapf(err, "writing %s", opts.Output)
	}

	res := &Result{}
	res.Paragraphs, res.Sentences, res.Words = doc.Counts()
	logging.Debug("tokenization complete",
		"paragraphs", res.Paragraphs, "sentences", res.Sentences, "words", res.Words)
	return res, nil
}

// run streams the input through the segmenter and builder. Lines are
// processed strictly in input order; the numbering state carries across
// lines and a blank line (after trimming) is a paragraph separator.
func run(seg Segmenter, input string) (*segment.Document, error) {
	r, err := fileutil.OpenText(input)
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", input)
	}
	defer r.Close()

	builder := segment.NewBuilder()
	sc := fileutil.NewLineScanner(r)
	lines := 0
	for sc.Scan() {
		lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			builder.BreakParagraph()
			continue
		}
		candidates, err := seg.Segment(line)
		if err != nil {
			return nil, errors.Wrapf(err, "tokenizing line %d", lines)
		}
		builder.AddLine(candidates)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", input)
	}

	logging.Debug("input consumed", "lines", lines)
	return builder.Document(), nil
}
