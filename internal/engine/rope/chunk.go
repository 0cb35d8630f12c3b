package rope

import "strings"

// Chunk size bounds control the granularity of leaf storage.
const (
	minChunkSize    = 128
	maxChunkSize    = 256
	targetChunkSize = (minChunkSize + maxChunkSize) / 2
)

// summary carries the aggregated metrics the tree needs for byte and
// line addressing. It forms a monoid under add.
type summary struct {
	bytes    int
	newlines int
}

func (s summary) add(other summary) summary {
	return summary{
		bytes:    s.bytes + other.bytes,
		newlines: s.newlines + other.newlines,
	}
}

func summarize(s string) summary {
	return summary{
		bytes:    len(s),
		newlines: strings.Count(s, "\n"),
	}
}

// chunk is a bounded immutable string stored in leaf nodes, with its
// metrics precomputed.
type chunk struct {
	data string
	sum  summary
}

func newChunk(s string) chunk {
	return chunk{data: s, sum: summarize(s)}
}

func (c chunk) len() int { return len(c.data) }

func (c chunk) empty() bool { return len(c.data) == 0 }

// split divides the chunk at a byte offset. The offset must lie on a
// UTF-8 boundary; callers guarantee this by only splitting at offsets
// derived from valid text positions.
func (c chunk) split(offset int) (chunk, chunk) {
	if offset <= 0 {
		return chunk{}, c
	}
	if offset >= len(c.data) {
		return c, chunk{}
	}
	return newChunk(c.data[:offset]), newChunk(c.data[offset:])
}

// splitIntoChunks cuts a string into chunks near targetChunkSize,
// preferring newline boundaries and never splitting a UTF-8 sequence.
func splitIntoChunks(s string) []chunk {
	if len(s) == 0 {
		return nil
	}
	if len(s) <= maxChunkSize {
		return []chunk{newChunk(s)}
	}

	var chunks []chunk
	remaining := s
	for len(remaining) > 0 {
		if len(remaining) <= maxChunkSize {
			chunks = append(chunks, newChunk(remaining))
			break
		}
		cut := cutPoint(remaining, targetChunkSize)
		chunks = append(chunks, newChunk(remaining[:cut]))
		remaining = remaining[cut:]
	}
	return chunks
}

// cutPoint picks a split position near target: just after a nearby
// newline when one exists, otherwise the closest UTF-8 boundary.
func cutPoint(s string, target int) int {
	if target >= len(s) {
		return len(s)
	}

	lo := target - minChunkSize/4
	if lo < 0 {
		lo = 0
	}
	hi := target + minChunkSize/4
	if hi > len(s) {
		hi = len(s)
	}
	for i := target; i < hi; i++ {
		if s[i] == '\n' {
			return i + 1
		}
	}
	for i := target - 1; i >= lo; i-- {
		if s[i] == '\n' {
			return i + 1
		}
	}

	pos := target
	for pos < len(s) && !utf8Start(s[pos]) {
		pos++
	}
	if pos >= len(s) {
		pos = target
		for pos > 0 && !utf8Start(s[pos]) {
			pos--
		}
	}
	return pos
}

// utf8Start reports whether b begins a UTF-8 sequence (continuation
// bytes are 10xxxxxx).
func utf8Start(b byte) bool {
	return b&0xC0 != 0x80
}
