package segment

import (
	"reflect"
	"testing"
)

func toks(surfaces ...string) []Token {
	out := make([]Token, len(surfaces))
	for i, s := range surfaces {
		out[i] = Token{Surface: s}
	}
	return out
}

func surfaces(s *Sentence) []string {
	out := make([]string, len(s.Words))
	for i, w := range s.Words {
		out[i] = w.Surface
	}
	return out
}

func TestEmptyInputHasOneParagraph(t *testing.T) {
	doc := NewBuilder().Document()
	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(doc.Paragraphs))
	}
	if doc.Paragraphs[0].Index != 1 {
		t.Errorf("expected paragraph index 1, got %d", doc.Paragraphs[0].Index)
	}
	if len(doc.Paragraphs[0].Sentences) != 0 {
		t.Errorf("expected no sentences, got %d", len(doc.Paragraphs[0].Sentences))
	}
}

func TestSingleLineTwoSentences(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{
		toks("Hello", "world", "."),
		toks("Good", "bye", "."),
	})
	doc := b.Document()

	if len(doc.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(doc.Paragraphs))
	}
	p := doc.Paragraphs[0]
	if len(p.Sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(p.Sentences))
	}
	for si, want := range [][]string{{"Hello", "world", "."}, {"Good", "bye", "."}} {
		s := p.Sentences[si]
		if s.Index != si+1 {
			t.Errorf("sentence %d: expected index %d, got %d", si, si+1, s.Index)
		}
		if got := surfaces(s); !reflect.DeepEqual(got, want) {
			t.Errorf("sentence %d: expected words %v, got %v", si, want, got)
		}
		for wi, w := range s.Words {
			if w.Index != wi+1 {
				t.Errorf("sentence %d word %d: expected index %d, got %d", si, wi, wi+1, w.Index)
			}
		}
	}
}

func TestMergeSafeguard(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{
		toks("Mr"),
		toks("Smith", "left", "."),
	})
	doc := b.Document()

	p := doc.Paragraphs[0]
	if len(p.Sentences) != 1 {
		t.Fatalf("expected single-token candidate to merge into 1 sentence, got %d", len(p.Sentences))
	}
	want := []string{"Mr", "Smith", "left", "."}
	if got := surfaces(p.Sentences[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("expected words %v, got %v", want, got)
	}
	for wi, w := range p.Sentences[0].Words {
		if w.Index != wi+1 {
			t.Errorf("word %d: expected contiguous index %d, got %d", wi, wi+1, w.Index)
		}
	}
}

func TestMergeSafeguardTransitive(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{
		toks("e.g"),
		toks("."),
		toks("it", "works", "."),
	})
	doc := b.Document()

	p := doc.Paragraphs[0]
	if len(p.Sentences) != 1 {
		t.Fatalf("expected transitive merge into 1 sentence, got %d", len(p.Sentences))
	}
	want := []string{"e.g", ".", "it", "works", "."}
	if got := surfaces(p.Sentences[0]); !reflect.DeepEqual(got, want) {
		t.Errorf("expected words %v, got %v", want, got)
	}
}

func TestMergeCarriesAcrossLines(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{toks("Mr")})
	b.AddLine([][]Token{toks("Smith", "left", ".")})
	doc := b.Document()

	p := doc.Paragraphs[0]
	if len(p.Sentences) != 1 {
		t.Fatalf("expected merge to carry across lines, got %d sentences", len(p.Sentences))
	}
	if got := len(p.Sentences[0].Words); got != 4 {
		t.Errorf("expected 4 words, got %d", got)
	}
}

func TestParagraphBreakOverridesMerge(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{toks("Mr")})
	b.BreakParagraph()
	b.AddLine([][]Token{toks("Smith", "left", ".")})
	doc := b.Document()

	if len(doc.Paragraphs) != 2 {
		t.Fatalf("expected 2 paragraphs, got %d", len(doc.Paragraphs))
	}
	p1, p2 := doc.Paragraphs[0], doc.Paragraphs[1]
	if len(p1.Sentences) != 1 || len(p1.Sentences[0].Words) != 1 {
		t.Errorf("paragraph 1: expected one sentence with only Mr")
	}
	if len(p2.Sentences) != 1 {
		t.Fatalf("paragraph 2: expected 1 sentence, got %d", len(p2.Sentences))
	}
	if p2.Sentences[0].Index != 1 {
		t.Errorf("paragraph 2: expected sentence counter reset to 1, got %d", p2.Sentences[0].Index)
	}
	if got := len(p2.Sentences[0].Words); got != 3 {
		t.Errorf("paragraph 2: expected 3 words, got %d", got)
	}
}

func TestParagraphIndicesContiguous(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{toks("one", ".")})
	b.BreakParagraph()
	b.BreakParagraph()
	b.AddLine([][]Token{toks("two", ".")})
	doc := b.Document()

	if len(doc.Paragraphs) != 3 {
		t.Fatalf("expected 3 paragraphs, got %d", len(doc.Paragraphs))
	}
	for i, p := range doc.Paragraphs {
		if p.Index != i+1 {
			t.Errorf("paragraph %d: expected index %d, got %d", i, i+1, p.Index)
		}
	}
}

func TestEmptyCandidatesSkipped(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{{}, toks("a", "b"), {}})
	doc := b.Document()

	p := doc.Paragraphs[0]
	if len(p.Sentences) != 1 {
		t.Fatalf("expected empty candidates to be skipped, got %d sentences", len(p.Sentences))
	}
	if p.Sentences[0].Index != 1 {
		t.Errorf("expected sentence index 1, got %d", p.Sentences[0].Index)
	}
}

func TestBuilderDeterministic(t *testing.T) {
	build := func() *Document {
		b := NewBuilder()
		b.AddLine([][]Token{
			{{Surface: "Dogs", Tag: "NNS", Lemma: "dog"}, {Surface: "bark", Tag: "VBP", Lemma: "bark"}},
			toks("Loudly"),
		})
		b.BreakParagraph()
		b.AddLine([][]Token{toks("End", ".")})
		return b.Document()
	}
	if !reflect.DeepEqual(build(), build()) {
		t.Error("expected identical trees from identical input")
	}
}

func TestCounts(t *testing.T) {
	b := NewBuilder()
	b.AddLine([][]Token{toks("a", "b"), toks("c")})
	b.BreakParagraph()
	b.AddLine([][]Token{toks("d")})
	paragraphs, sentences, words := b.Document().Counts()
	if paragraphs != 2 || sentences != 3 || words != 4 {
		t.Errorf("expected counts (2,3,4), got (%d,%d,%d)", paragraphs, sentences, words)
	}
}

func TestIDFormatting(t *testing.T) {
	if got := ParagraphID(3); got != "3" {
		t.Errorf("ParagraphID(3) = %q", got)
	}
	if got := SentenceID(1, 2); got != "s1.2" {
		t.Errorf("SentenceID(1,2) = %q", got)
	}
	if got := WordID(1, 2, 3); got != "w1.2.3" {
		t.Errorf("WordID(1,2,3) = %q", got)
	}
}
