// Package corpusxml serializes segmented documents to the persisted
// corpus format and parses them back.
//
// The format is a single root element `text` containing ordered `p`
// elements (attribute id = paragraph index), each containing ordered
// `s` elements (id = "s{i}.{j}"), each containing ordered `w` elements
// (id = "w{i}.{j}.{k}", text content = surface form, optional
// attributes `tree` for the part-of-speech tag and `lem` for the
// lemma).
package corpusxml

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/blakuxberry/preprocess-corpora-fork/core/segment"
)

const indent = "  "

// escapeText escapes the basic XML entities for text content.
func escapeText(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// escapeAttr escapes text for use in XML attributes. Includes quote
// escaping in addition to basic XML entities.
func escapeAttr(s string) string {
	s = escapeText(s)
	s = strings.ReplaceAll(s, "\"", "&quot;")
	return s
}

// Write serializes the document to w with an XML declaration and
// human-readable indentation.
func Write(w io.Writer, doc *segment.Document) error {
	var buf bytes.Buffer
	buf.WriteString("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")

	if len(doc.Paragraphs) == 0 {
		buf.WriteString("<text/>\n")
		_, err := w.Write(buf.Bytes())
		return err
	}

	buf.WriteString("<text>\n")
	for _, p := range doc.Paragraphs {
		writeParagraph(&buf, p)
	}
	buf.WriteString("</text>\n")

	_, err := w.Write(buf.Bytes())
	return err
}

func writeParagraph(buf *bytes.Buffer, p *segment.Paragraph) {
	buf.WriteString(indent)
	buf.WriteString("<p id=\"")
	buf.WriteString(escapeAttr(segment.ParagraphID(p.Index)))
	if len(p.Sentences) == 0 {
		buf.WriteString("\"/>\n")
		return
	}
	buf.WriteString("\">\n")

	for _, s := range p.Sentences {
		writeSentence(buf, p.Index, s)
	}

	buf.WriteString(indent)
	buf.WriteString("</p>\n")
}

func writeSentence(buf *bytes.Buffer, i int, s *segment.Sentence) {
	buf.WriteString(indent)
	buf.WriteString(indent)
	buf.WriteString("<s id=\"")
	buf.WriteString(escapeAttr(segment.SentenceID(i, s.Index)))
	if len(s.Words) == 0 {
		buf.WriteString("\"/>\n")
		return
	}
	buf.WriteString("\">\n")

	for _, word := range s.Words {
		buf.WriteString(indent)
		buf.WriteString(indent)
		buf.WriteString(indent)
		buf.WriteString("<w id=\"")
		buf.WriteString(escapeAttr(segment.WordID(i, s.Index, word.Index)))
		buf.WriteString("\"")
		if word.Tag != "" {
			buf.WriteString(" tree=\"")
			buf.WriteString(escapeAttr(word.Tag))
			buf.WriteString("\"")
		}
		if word.Lemma != "" {
			buf.WriteString(" lem=\"")
			buf.WriteString(escapeAttr(word.Lemma))
			buf.WriteString("\"")
		}
		buf.WriteString(">")
		buf.WriteString(escapeText(word.Surface))
		buf.WriteString("</w>\n")
	}

	buf.WriteString(indent)
	buf.WriteString(indent)
	buf.WriteString("</s>\n")
}

// WriteFile serializes the document to path.
func WriteFile(path string, doc *segment.Document) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
