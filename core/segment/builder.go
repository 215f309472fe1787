package segment

// Builder folds per-line sentence candidates from a tokenizer backend
// into a Document, assigning paragraph/sentence/word identifiers.
//
// Counters are stateful across lines: the paragraph index only advances
// on an explicit paragraph break, and the sentence counter carries
// across lines within a paragraph. A sentence candidate containing
// exactly one token does not close its sentence slot; the next
// candidate's tokens are appended to the same sentence instead of
// opening a new one. Some backends emit spurious one-token boundaries
// around abbreviations and punctuation, and merging suppresses those
// without dropping tokens.
type Builder struct {
	doc  *Document
	para *Paragraph
	sent *Sentence

	i int // current paragraph index
	j int // last assigned sentence index in this paragraph
	k int // last assigned word index in the open sentence

	// open reports whether the current sentence still accepts tokens
	// from the next candidate (the previous candidate had exactly one
	// token).
	open bool
}

// NewBuilder returns a Builder with the first paragraph already
// created, so that even empty input yields a document with one
// paragraph.
func NewBuilder() *Builder {
	b := &Builder{doc: &Document{}}
	b.startParagraph()
	return b
}

func (b *Builder) startParagraph() {
	b.i++
	b.para = &Paragraph{Index: b.i}
	b.doc.Paragraphs = append(b.doc.Paragraphs, b.para)
	b.sent = nil
	b.j = 0
	b.k = 0
	b.open = false
}

// AddLine folds one adapter invocation's sentence candidates into the
// tree. Empty candidates are skipped; they carry no tokens and must not
// consume a sentence index.
func (b *Builder) AddLine(candidates [][]Token) {
	for _, cand := range candidates {
		if len(cand) == 0 {
			continue
		}
		if !b.open {
			b.j++
			b.sent = &Sentence{Index: b.j}
			b.para.Sentences = append(b.para.Sentences, b.sent)
			b.k = 0
		}
		for _, t := range cand {
			b.k++
			b.sent.Words = append(b.sent.Words, Word{
				Index:   b.k,
				Surface: t.Surface,
				Tag:     t.Tag,
				Lemma:   t.Lemma,
			})
		}
		b.open = len(cand) == 1
	}
}

// BreakParagraph starts the next paragraph. Any sentence left open for
// merging is closed unconditionally; merging never crosses a paragraph
// boundary.
func (b *Builder) BreakParagraph() {
	b.startParagraph()
}

// Document returns the assembled tree.
func (b *Builder) Document() *Document {
	return b.doc
}
