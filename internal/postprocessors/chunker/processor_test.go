package chunker

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	t.Run("default values", func(t *testing.T) {
		p := New()
		if p.chunkSize != DefaultChunkSize {
			t.Errorf("expected chunkSize %d, got %d", DefaultChunkSize, p.chunkSize)
		}
		if p.overlap != DefaultOverlap {
			t.Errorf("expected overlap %d, got %d", DefaultOverlap, p.overlap)
		}
	})

	t.Run("custom values", func(t *testing.T) {
		p := New(WithChunkSize(200), WithOverlap(40))
		if p.chunkSize != 200 {
			t.Errorf("expected chunkSize 200, got %d", p.chunkSize)
		}
		if p.overlap != 40 {
			t.Errorf("expected overlap 40, got %d", p.overlap)
		}
	})

	t.Run("overlap exceeds chunk size", func(t *testing.T) {
		p := New(WithChunkSize(100), WithOverlap(150))
		if p.overlap >= p.chunkSize {
			t.Error("overlap should be reduced when it exceeds chunk size")
		}
	})

	t.Run("zero values ignored", func(t *testing.T) {
		p := New(WithChunkSize(0), WithOverlap(-1))
		if p.chunkSize != DefaultChunkSize {
			t.Errorf("expected default chunkSize, got %d", p.chunkSize)
		}
		if p.overlap != DefaultOverlap {
			t.Errorf("expected default overlap, got %d", p.overlap)
		}
	})
}

func TestProcessor_Name(t *testing.T) {
	p := New()
	if p.Name() != "chunker" {
		t.Errorf("expected name 'chunker', got '%s'", p.Name())
	}
}

func TestSplit_EmptyInput(t *testing.T) {
	p := New()
	if chunks := p.Split(""); len(chunks) != 0 {
		t.Errorf("expected 0 chunks for empty input, got %d", len(chunks))
	}
	if chunks := p.Split("   \n\t  "); len(chunks) != 0 {
		t.Errorf("expected 0 chunks for whitespace input, got %d", len(chunks))
	}
}

func TestSplit_SmallInput(t *testing.T) {
	p := New()
	text := "  This fits in a single chunk.  "

	chunks := p.Split(text)
	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Text != "This fits in a single chunk." {
		t.Errorf("expected trimmed input as chunk text, got %q", chunks[0].Text)
	}
	if chunks[0].ID != 0 || chunks[0].StartIndex != 0 {
		t.Errorf("expected chunk at origin, got id=%d start=%d", chunks[0].ID, chunks[0].StartIndex)
	}
	if chunks[0].EndIndex != len("This fits in a single chunk.") {
		t.Errorf("unexpected end index %d", chunks[0].EndIndex)
	}
}

func TestSplit_OffsetsStrictlyIncreasing(t *testing.T) {
	p := New(WithChunkSize(120), WithOverlap(30))
	text := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 30)

	chunks := p.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks {
		if c.EndIndex <= c.StartIndex {
			t.Errorf("chunk %d: end %d not after start %d", i, c.EndIndex, c.StartIndex)
		}
		if c.ID != i {
			t.Errorf("chunk %d: expected ordinal id %d, got %d", i, i, c.ID)
		}
		if i > 0 && c.StartIndex <= chunks[i-1].StartIndex {
			t.Errorf("chunk %d: start %d not after previous start %d", i, c.StartIndex, chunks[i-1].StartIndex)
		}
	}
}

func TestSplit_SnapsToSentenceBoundary(t *testing.T) {
	p := New(WithChunkSize(100), WithOverlap(20))
	// Sentences of ~50 chars ensure a terminal lands inside the boundary window.
	sentence := "Each one of these sentences is fifty characters l. "
	text := strings.Repeat(sentence, 10)

	chunks := p.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks[:len(chunks)-1] {
		if !strings.HasSuffix(c.Text, ".") {
			t.Errorf("chunk %d should end at a sentence boundary, got %q", i, c.Text)
		}
	}
}

func TestSplit_FallsBackToWordBoundary(t *testing.T) {
	p := New(WithChunkSize(100), WithOverlap(20))
	// No sentence punctuation anywhere; must cut on a space.
	text := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)

	chunks := p.Split(text)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks, got %d", len(chunks))
	}
	for i, c := range chunks[:len(chunks)-1] {
		if strings.Contains(c.Text, " ") && len(c.Text) > 0 {
			last := c.Text[len(c.Text)-1]
			if last == ' ' {
				t.Errorf("chunk %d: trailing space not trimmed", i)
			}
		}
	}
}

func TestSplit_NoSpacesTerminates(t *testing.T) {
	p := New(WithChunkSize(50), WithOverlap(10))
	text := strings.Repeat("x", 500)

	chunks := p.Split(text)
	if len(chunks) == 0 {
		t.Fatal("expected chunks for unbroken input")
	}
	for i, c := range chunks {
		if c.Text == "" {
			t.Errorf("chunk %d is empty", i)
		}
	}
}

func TestSplit_Deterministic(t *testing.T) {
	p := New(WithChunkSize(90), WithOverlap(25))
	text := strings.Repeat("Style is the dress of thought. A good style must be clear. ", 15)

	first := p.Split(text)
	second := p.Split(text)

	if len(first) != len(second) {
		t.Fatalf("chunk counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("chunk %d differs between runs", i)
		}
	}
}

func TestShouldUseRAG(t *testing.T) {
	short := strings.Repeat("a", 100)
	long := strings.Repeat("a", 2001)

	if ShouldUseRAG(short, 0) {
		t.Error("short document should not use RAG")
	}
	if !ShouldUseRAG(long, 0) {
		t.Error("long document should use RAG")
	}
	if !ShouldUseRAG(short, 50) {
		t.Error("custom threshold should apply")
	}
}

func TestEstimateTokens(t *testing.T) {
	if got := EstimateTokens(strings.Repeat("a", 2048)); got != 512 {
		t.Errorf("expected 512 tokens, got %d", got)
	}
	if got := EstimateTokens(""); got != 0 {
		t.Errorf("expected 0 tokens for empty input, got %d", got)
	}
}

func TestReconstruct(t *testing.T) {
	p := New(WithChunkSize(80), WithOverlap(0))
	text := "One sentence here. Another sentence there. And a third one to finish the thought."

	chunks := p.Split(text)
	joined := Reconstruct(chunks)
	if joined == "" {
		t.Fatal("expected non-empty reconstruction")
	}
	for _, c := range chunks {
		if !strings.Contains(joined, c.Text) {
			t.Errorf("reconstruction missing chunk %q", c.Text)
		}
	}
}
