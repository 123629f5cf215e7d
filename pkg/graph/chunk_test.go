package graph

import (
	"strings"
	"testing"
)

func TestChunkTextShortInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "empty input",
			text: "",
			want: nil,
		},
		{
			name: "whitespace only",
			text: "   \n\t  ",
			want: nil,
		},
		{
			name: "shorter than target size",
			text: "First sentence. Second sentence.",
			want: []string{"First sentence. Second sentence."},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ChunkText(tc.text, 1000, 200)
			if len(got) != len(tc.want) {
				t.Fatalf("ChunkText produced %d chunks, want %d: %q", len(got), len(tc.want), got)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("chunk %d = %q, want %q", i, got[i], tc.want[i])
				}
			}
		})
	}
}

func TestChunkTextSentenceBoundary(t *testing.T) {
	t.Parallel()

	// The first window covers 15 characters but snaps back to end just
	// after the ". " boundary at offset 10.
	text := "Alpha beta. Gamma delta epsilon"
	got := ChunkText(text, 15, 0)

	want := []string{"Alpha beta.", "Gamma delta eps", "ilon"}
	if len(got) != len(want) {
		t.Fatalf("ChunkText produced %d chunks, want %d: %q", len(got), len(want), got)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("chunk %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChunkTextBoundaryPriority(t *testing.T) {
	t.Parallel()

	// A later "? " must win over an earlier "\n" because ". " and "? "
	// are checked first.
	text := "line one\nIs this it? trailing words beyond the window"
	got := ChunkText(text, 25, 0)

	if got[0] != "line one\nIs this it?" {
		t.Fatalf("first chunk = %q, want %q", got[0], "line one\nIs this it?")
	}
}

func TestChunkTextDeterministic(t *testing.T) {
	t.Parallel()

	// Boundary-free input: windows advance by exactly target-overlap,
	// and the final window is derived from the unclamped end.
	text := strings.Repeat("a", 2500)
	got := ChunkText(text, 1000, 200)

	wantLens := []int{1000, 1000, 900, 100}
	if len(got) != len(wantLens) {
		t.Fatalf("ChunkText produced %d chunks, want %d", len(got), len(wantLens))
	}
	for i, chunk := range got {
		if len(chunk) != wantLens[i] {
			t.Fatalf("chunk %d has %d chars, want %d", i, len(chunk), wantLens[i])
		}
	}
}

func TestChunkTextOverlapCoversText(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("b", 250)
	got := ChunkText(text, 100, 20)

	total := 0
	for _, chunk := range got {
		total += len(chunk)
	}
	// Overlapping windows must cover at least the whole input.
	if total < len(text) {
		t.Fatalf("chunks cover %d chars, input has %d", total, len(text))
	}
}

func TestChunkTextTerminatesWithLargeOverlap(t *testing.T) {
	t.Parallel()

	// overlap >= target size would loop forever without the forced
	// start increment.
	tests := []struct {
		name     string
		target   int
		overlap  int
	}{
		{name: "overlap equals target", target: 10, overlap: 10},
		{name: "overlap exceeds target", target: 10, overlap: 50},
	}

	text := strings.Repeat("c", 100)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := ChunkText(text, tc.target, tc.overlap)
			if len(got) == 0 {
				t.Fatal("expected at least one chunk")
			}
		})
	}
}
