// Package stanza is the neural tokenizer backend.
//
// The adapter first makes sure the language model is present in the
// models directory, downloading it when missing. For annotation it
// prefers composing with the statistical pipeline runtime, which gives
// both backends one interface; when the language has no statistical
// pipeline it falls back to the native neural runtime, a local
// annotation server speaking JSON.
//
// The two paths produce structurally different token objects:
// attribute-style structs from the statistical runtime and
// mapping-style records from the server. Both are normalized into the
// common token record shape before leaving this package; neither shape
// leaks past the adapter boundary.
package stanza

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/ulikunitz/xz"

	"github.com/blakuxberry/preprocess-corpora-fork/core/errors"
	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/logging"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers/prosetok"
)

const (
	// defaultServerURL is where the native runtime listens unless
	// STANZA_SERVER or the run configuration says otherwise.
	defaultServerURL = "http://127.0.0.1:9000"
	// defaultModelBase is the model download location. Overridable via
	// STANZA_MODEL_BASE.
	defaultModelBase = "https://huggingface.co/stanfordnlp/stanza-models/resolve/main"
)

// languages lists languages with neural models.
var languages = map[string]bool{
	"de": true,
	"en": true,
	"es": true,
	"fr": true,
	"it": true,
	"nl": true,
	"pt": true,
	"ru": true,
	"zh": true,
}

// Supported reports whether a neural model exists for the language.
func Supported(language string) bool {
	return languages[language]
}

// Segmenter annotates lines through either the combined statistical
// runtime or the native server.
type Segmenter struct {
	language string
	combined *prosetok.Segmenter
	server   string
	client   *http.Client
}

// New constructs the neural backend: ensures the model, then picks the
// annotation path.
func New(cfg tokenizers.Config) (tokenizers.Segmenter, error) {
	if !Supported(cfg.Language) {
		return nil, errors.NewUnsupportedLanguage(tokenizers.Stanza, cfg.Language)
	}
	if err := EnsureModel(cfg.ModelsDir, cfg.Language); err != nil {
		return nil, err
	}

	s := &Segmenter{language: cfg.Language, client: http.DefaultClient}

	combined, err := prosetok.NewPipeline(cfg.Language)
	if err == nil {
		s.combined = combined
		return s, nil
	}

	s.server = cfg.ServerURL
	if s.server == "" {
		s.server = os.Getenv("STANZA_SERVER")
	}
	if s.server == "" {
		s.server = defaultServerURL
	}
	logging.Debug("stanza using native runtime", "language", cfg.Language, "server", s.server)
	return s, nil
}

// ModelPath returns where the language model lives under modelsDir.
func ModelPath(modelsDir, language string) string {
	return filepath.Join(modelsDir, "stanza", language+".json")
}

// EnsureModel downloads the language model if it is not already
// present.
func EnsureModel(modelsDir, language string) error {
	path := ModelPath(modelsDir, language)
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	base := os.Getenv("STANZA_MODEL_BASE")
	if base == "" {
		base = defaultModelBase
	}
	url := fmt.Sprintf("%s/%s.json.xz", strings.TrimRight(base, "/"), language)
	logging.Info("downloading stanza model", "language", language, "url", url)

	unavailable := func(err error) error {
		return &errors.ResourceUnavailableError{
			Backend:  tokenizers.Stanza,
			Language: language,
			Resource: url,
			Hint:     fmt.Sprintf("pre-download the model to %s", path),
			Err:      err,
		}
	}

	resp, err := http.Get(url)
	if err != nil {
		return unavailable(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return unavailable(fmt.Errorf("unexpected status %s", resp.Status))
	}

	xr, err := xz.NewReader(resp.Body)
	if err != nil {
		return unavailable(err)
	}
	data, err := io.ReadAll(xr)
	if err != nil {
		return unavailable(err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return unavailable(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return unavailable(err)
	}
	return nil
}

// Segment implements tokenizers.Segmenter.
func (s *Segmenter) Segment(line string) ([][]segment.Token, error) {
	if s.combined != nil {
		return s.combined.Segment(line)
	}
	return s.segmentNative(line)
}

// segmentNative sends the line to the annotation server. The response
// is an array of sentences, each with a `tokens` array of mapping-style
// records carrying text/upos/lemma keys.
func (s *Segmenter) segmentNative(line string) ([][]segment.Token, error) {
	reqBody, err := json.Marshal(map[string]string{
		"text":       line,
		"lang":       s.language,
		"processors": "tokenize,pos,lemma",
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Post(s.server+"/annotate", "application/json", bytes.NewReader(reqBody))
	if err != nil {
		return nil, errors.Wrapf(err, "stanza server %s", s.server)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Wrapf(fmt.Errorf("unexpected status %s", resp.Status), "stanza server %s", s.server)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading stanza response")
	}

	var candidates [][]segment.Token
	for _, sent := range gjson.ParseBytes(body).Array() {
		records := sent.Get("tokens").Array()
		if len(records) == 0 {
			continue
		}
		cand := make([]segment.Token, 0, len(records))
		for _, rec := range records {
			cand = append(cand, normalizeRecord(rec))
		}
		candidates = append(candidates, cand)
	}
	return candidates, nil
}

// normalizeRecord converts one mapping-style token record into the
// common token shape.
func normalizeRecord(rec gjson.Result) segment.Token {
	return segment.Token{
		Surface: rec.Get("text").String(),
		Tag:     rec.Get("upos").String(),
		Lemma:   rec.Get("lemma").String(),
	}
}

func init() {
	tokenizers.Register(&tokenizers.BackendDesc{
		Name:     tokenizers.Stanza,
		Supports: Supported,
		New:      New,
	})
}
