// Package segment models a sentence/word-segmented corpus document as a
// tree of paragraph, sentence, and word nodes with stable identifiers,
// and provides the Builder that assembles the tree from tokenizer output.
package segment

import "fmt"

// Token is one token record as produced by a tokenizer backend.
// Tag and Lemma are empty for backends that only split text.
type Token struct {
	Surface string
	Tag     string
	Lemma   string
}

// Word is a leaf node of the document tree. Index is the 1-based word
// counter within the owning sentence.
type Word struct {
	Index   int
	Surface string
	Tag     string
	Lemma   string
}

// Sentence owns an ordered sequence of words. Index is the 1-based
// sentence counter within the owning paragraph.
type Sentence struct {
	Index int
	Words []Word
}

// Paragraph owns an ordered sequence of sentences. Index is the 1-based
// paragraph counter within the document.
type Paragraph struct {
	Index     int
	Sentences []*Sentence
}

// Document is the root of the tree. A document always has at least one
// paragraph, even for empty input.
type Document struct {
	Paragraphs []*Paragraph
}

// ParagraphID returns the persisted id attribute for a paragraph index.
func ParagraphID(i int) string {
	return fmt.Sprintf("%d", i)
}

// SentenceID returns the persisted id for sentence j of paragraph i.
func SentenceID(i, j int) string {
	return fmt.Sprintf("s%d.%d", i, j)
}

// WordID returns the persisted id for word k of sentence j of paragraph i.
func WordID(i, j, k int) string {
	return fmt.Sprintf("w%d.%d.%d", i, j, k)
}

// Counts returns the number of paragraphs, sentences, and words in the
// document.
func (d *Document) Counts() (paragraphs, sentences, words int) {
	paragraphs = len(d.Paragraphs)
	for _, p := range d.Paragraphs {
		sentences += len(p.Sentences)
		for _, s := range p.Sentences {
			words += len(s.Words)
		}
	}
	return paragraphs, sentences, words
}
