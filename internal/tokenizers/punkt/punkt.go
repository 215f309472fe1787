// Package punkt is the rule-based tokenizer backend: Punkt sentence
// boundary models plus fixed word-splitting rules. It has no notion of
// part-of-speech tags or lemmas.
package punkt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/neurosnap/sentences"

	"github.com/blakuxberry/preprocess-corpora-fork/core/errors"
	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers"
)

// languages maps language codes to Punkt training data names.
var languages = map[string]string{
	"cs": "czech",
	"da": "danish",
	"de": "german",
	"el": "greek",
	"en": "english",
	"es": "spanish",
	"et": "estonian",
	"fi": "finnish",
	"fr": "french",
	"it": "italian",
	"nl": "dutch",
	"no": "norwegian",
	"pl": "polish",
	"pt": "portuguese",
	"ru": "russian",
	"sl": "slovene",
	"sv": "swedish",
	"tr": "turkish",
}

// Supported reports whether Punkt training data exists for the
// language.
func Supported(language string) bool {
	_, ok := languages[language]
	return ok
}

// sentenceTokenizer is the part of the Punkt tokenizer the segmenter
// uses.
type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Segmenter splits lines into sentences with a Punkt model and into
// words with fixed punctuation rules.
type Segmenter struct {
	tok sentenceTokenizer
}

// New loads the Punkt model for the configured language from
// <models-dir>/punkt/<name>.json.
func New(cfg tokenizers.Config) (tokenizers.Segmenter, error) {
	name, ok := languages[cfg.Language]
	if !ok {
		return nil, errors.NewUnsupportedLanguage(tokenizers.Punkt, cfg.Language)
	}

	path := filepath.Join(cfg.ModelsDir, "punkt", name+".json")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &errors.ResourceUnavailableError{
			Backend:  tokenizers.Punkt,
			Language: cfg.Language,
			Resource: path,
			Hint:     fmt.Sprintf("place the %s Punkt training data at this path", name),
			Err:      err,
		}
	}

	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, &errors.ResourceUnavailableError{
			Backend:  tokenizers.Punkt,
			Language: cfg.Language,
			Resource: path,
			Hint:     "training data is corrupt; re-download it",
			Err:      err,
		}
	}

	return &Segmenter{tok: sentences.NewSentenceTokenizer(storage)}, nil
}

// Segment implements tokenizers.Segmenter.
func (s *Segmenter) Segment(line string) ([][]segment.Token, error) {
	var candidates [][]segment.Token
	for _, sent := range s.tok.Tokenize(line) {
		words := splitWords(strings.TrimSpace(sent.Text))
		if len(words) == 0 {
			continue
		}
		cand := make([]segment.Token, len(words))
		for i, w := range words {
			cand[i] = segment.Token{Surface: w}
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

// splitWords splits a sentence into word tokens on whitespace, then
// peels leading and trailing punctuation off each token. Interior
// punctuation (hyphens, apostrophes, abbreviation dots) stays attached.
// A run of trailing dots is kept together so an ellipsis stays one
// token.
func splitWords(s string) []string {
	var out []string
	for _, field := range strings.Fields(s) {
		out = append(out, splitToken(field)...)
	}
	return out
}

func splitToken(tok string) []string {
	runes := []rune(tok)
	start, end := 0, len(runes)

	var leading []string
	for start < end && isSplitPunct(runes[start]) {
		leading = append(leading, string(runes[start]))
		start++
	}

	var trailing []string
	for end > start && isSplitPunct(runes[end-1]) {
		r := runes[end-1]
		if r == '.' && len(trailing) > 0 && trailing[len(trailing)-1][0] == '.' {
			trailing[len(trailing)-1] = "." + trailing[len(trailing)-1]
			end--
			continue
		}
		trailing = append(trailing, string(r))
		end--
	}

	out := leading
	if start < end {
		out = append(out, string(runes[start:end]))
	}
	for i := len(trailing) - 1; i >= 0; i-- {
		out = append(out, trailing[i])
	}
	return out
}

// isSplitPunct reports whether a rune is peeled off word edges.
// Apostrophes and hyphens are word-internal characters and are never
// peeled.
func isSplitPunct(r rune) bool {
	switch r {
	case '\'', '-', '’':
		return false
	}
	return unicode.IsPunct(r) || unicode.IsSymbol(r)
}

func init() {
	tokenizers.Register(&tokenizers.BackendDesc{
		Name:     tokenizers.Punkt,
		Supports: Supported,
		New:      New,
	})
}
