package graph

import "strings"

// chunkBoundaries are checked in priority order when snapping a window
// end back to a sentence boundary.
var chunkBoundaries = []string{". ", "? ", "! ", "\n"}

// ChunkText splits text into an ordered sequence of overlapping windows of
// roughly targetSize characters, preferring to end each window just after a
// sentence boundary. Chunks are trimmed and empty chunks are dropped.
//
// The start offset strictly increases every iteration, so the loop
// terminates even when overlap >= targetSize or boundary snapping pulls the
// window end far back.
func ChunkText(text string, targetSize, overlap int) []string {
	if targetSize <= 0 {
		targetSize = 1
	}

	var chunks []string
	start := 0
	for start < len(text) {
		// end may run past the text; the next start is derived from the
		// unclamped value so the loop can step off the end cleanly.
		end := start + targetSize
		if end < len(text) {
			for _, boundary := range chunkBoundaries {
				if idx := strings.LastIndex(text[start:end], boundary); idx != -1 {
					end = start + idx + len(boundary)
					break
				}
			}
		}

		sliceEnd := min(end, len(text))
		if chunk := strings.TrimSpace(text[start:sliceEnd]); chunk != "" {
			chunks = append(chunks, chunk)
		}

		next := end - overlap
		if next <= start {
			next = start + 1
		}
		start = next
	}

	return chunks
}
