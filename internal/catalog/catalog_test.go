package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTemp(t *testing.T) *Catalog {
	t.Helper()
	c, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { c.Close() })
	return c
}

func TestRecordAndList(t *testing.T) {
	c := openTemp(t)

	first := &Run{
		Input:      "a.txt",
		Output:     "a.xml",
		Backend:    "punkt",
		Language:   "en",
		Paragraphs: 2,
		Sentences:  5,
		Words:      40,
		Digest:     "abc123",
		CreatedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	if err := c.Record(first); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if first.ID == "" {
		t.Error("expected Record to assign an id")
	}

	second := &Run{Input: "b.txt", Output: "b.xml", Backend: "stanza", Language: "nl"}
	if err := c.Record(second); err != nil {
		t.Fatalf("Record failed: %v", err)
	}
	if second.CreatedAt.IsZero() {
		t.Error("expected Record to assign a timestamp")
	}

	runs, err := c.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].Input != "a.txt" || runs[1].Input != "b.txt" {
		t.Errorf("expected runs ordered oldest first, got %q then %q", runs[0].Input, runs[1].Input)
	}
	if runs[0].Words != 40 || runs[0].Digest != "abc123" {
		t.Errorf("expected fields to round-trip, got %+v", runs[0])
	}
	if !runs[0].CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("expected created_at to round-trip, got %v", runs[0].CreatedAt)
	}
}

func TestListEmpty(t *testing.T) {
	c := openTemp(t)
	runs, err := c.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected no runs, got %d", len(runs))
	}
}

func TestDigestFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.xml")
	if err := os.WriteFile(path, []byte("<text/>"), 0644); err != nil {
		t.Fatal(err)
	}

	digest, err := DigestFile(path)
	if err != nil {
		t.Fatalf("DigestFile failed: %v", err)
	}
	if len(digest) != 64 {
		t.Errorf("expected 64 hex chars, got %d", len(digest))
	}

	again, err := DigestFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if digest != again {
		t.Error("expected deterministic digest")
	}

	other := filepath.Join(dir, "other.xml")
	if err := os.WriteFile(other, []byte("<text><p id=\"1\"/></text>"), 0644); err != nil {
		t.Fatal(err)
	}
	otherDigest, err := DigestFile(other)
	if err != nil {
		t.Fatal(err)
	}
	if otherDigest == digest {
		t.Error("expected different content to produce a different digest")
	}
}

func TestDigestFileMissing(t *testing.T) {
	if _, err := DigestFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
