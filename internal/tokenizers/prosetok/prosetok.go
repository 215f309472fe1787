// Package prosetok is the statistical tokenizer backend. It segments
// with the prose pipeline (sentence boundaries and part-of-speech tags;
// the dependency-parse stages are not run, since only sentence
// boundaries and token annotations are needed) and supplies lemmas from
// a lemmatization dictionary.
package prosetok

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	"github.com/jdkato/prose/v2"

	"github.com/blakuxberry/preprocess-corpora-fork/core/errors"
	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers"
)

// languages lists the languages the statistical pipeline has models
// for.
var languages = map[string]bool{
	"en": true,
}

// Supported reports whether the statistical pipeline has a model for
// the language.
func Supported(language string) bool {
	return languages[language]
}

// Segmenter runs the statistical pipeline over single lines.
type Segmenter struct {
	lem *golem.Lemmatizer
}

// New constructs the statistical backend for the configured language.
func New(cfg tokenizers.Config) (tokenizers.Segmenter, error) {
	return NewPipeline(cfg.Language)
}

// NewPipeline constructs the statistical pipeline directly. The neural
// backend reuses it when composing with the statistical runtime.
func NewPipeline(language string) (*Segmenter, error) {
	if !Supported(language) {
		return nil, errors.NewUnsupportedLanguage(tokenizers.Prose, language)
	}

	lem, err := golem.New(en.New())
	if err != nil {
		return nil, &errors.ResourceUnavailableError{
			Backend:  tokenizers.Prose,
			Language: language,
			Resource: "lemmatization dictionary",
			Err:      err,
		}
	}
	return &Segmenter{lem: lem}, nil
}

// Segment implements tokenizers.Segmenter.
func (s *Segmenter) Segment(line string) ([][]segment.Token, error) {
	doc, err := prose.NewDocument(line,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, errors.Wrap(err, "segmenting line")
	}

	var candidates [][]segment.Token
	for _, sent := range doc.Sentences() {
		text := strings.TrimSpace(sent.Text)
		if text == "" {
			continue
		}
		cand, err := s.annotate(text)
		if err != nil {
			return nil, err
		}
		if len(cand) > 0 {
			candidates = append(candidates, cand)
		}
	}
	return candidates, nil
}

// annotate tokenizes and tags one sentence.
func (s *Segmenter) annotate(text string) ([]segment.Token, error) {
	doc, err := prose.NewDocument(text,
		prose.WithSegmentation(false),
		prose.WithExtraction(false))
	if err != nil {
		return nil, errors.Wrap(err, "tagging sentence")
	}

	toks := doc.Tokens()
	cand := make([]segment.Token, 0, len(toks))
	for _, tok := range toks {
		cand = append(cand, segment.Token{
			Surface: tok.Text,
			Tag:     tok.Tag,
			Lemma:   s.lem.Lemma(tok.Text),
		})
	}
	return cand, nil
}

func init() {
	tokenizers.Register(&tokenizers.BackendDesc{
		Name:     tokenizers.Prose,
		Supports: Supported,
		New:      New,
	})
}
