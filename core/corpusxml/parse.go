package corpusxml

import (
	"bytes"
	"fmt"
	"os"

	"github.com/antchfx/xmlquery"

	"github.com/blakuxberry/preprocess-corpora-fork/core/errors"
	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
)

// Parse reads a persisted corpus document back into a segment tree.
// Element order is preserved; id attributes are checked against the
// positional identifier scheme so that a malformed document cannot
// silently produce a tree that violates the numbering invariants.
func Parse(data []byte) (*segment.Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "parsing corpus XML")
	}

	text := xmlquery.FindOne(root, "/text")
	if text == nil {
		return nil, errors.NewParse("XML", "", "missing root element text")
	}

	doc := &segment.Document{}
	for _, pn := range xmlquery.Find(text, "p") {
		i := len(doc.Paragraphs) + 1
		if got := pn.SelectAttr("id"); got != segment.ParagraphID(i) {
			return nil, errors.NewParse("XML", "", fmt.Sprintf("paragraph %d has id %q", i, got))
		}
		para := &segment.Paragraph{Index: i}
		doc.Paragraphs = append(doc.Paragraphs, para)

		for _, sn := range xmlquery.Find(pn, "s") {
			j := len(para.Sentences) + 1
			if got := sn.SelectAttr("id"); got != segment.SentenceID(i, j) {
				return nil, errors.NewParse("XML", "", fmt.Sprintf("sentence %d.%d has id %q", i, j, got))
			}
			sent := &segment.Sentence{Index: j}
			para.Sentences = append(para.Sentences, sent)

			for _, wn := range xmlquery.Find(sn, "w") {
				k := len(sent.Words) + 1
				if got := wn.SelectAttr("id"); got != segment.WordID(i, j, k) {
					return nil, errors.NewParse("XML", "", fmt.Sprintf("word %d.%d.%d has id %q", i, j, k, got))
				}
				sent.Words = append(sent.Words, segment.Word{
					Index:   k,
					Surface: wn.InnerText(),
					Tag:     wn.SelectAttr("tree"),
					Lemma:   wn.SelectAttr("lem"),
				})
			}
		}
	}

	if len(doc.Paragraphs) == 0 {
		return nil, errors.NewParse("XML", "", "document has no paragraphs")
	}
	return doc, nil
}

// ParseFile reads and parses a persisted corpus document from path.
func ParseFile(path string) (*segment.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	doc, err := Parse(data)
	if err != nil {
		if pe, ok := err.(*errors.ParseError); ok {
			pe.Path = path
		}
		return nil, err
	}
	return doc, nil
}
