package rope

import (
	"io"
	"strings"
)

// Builder accumulates text and produces a rope without re-splitting the
// whole input at the end. Useful when loading files incrementally.
type Builder struct {
	chunks []chunk
	buf    strings.Builder
}

// WriteString appends s to the builder.
func (b *Builder) WriteString(s string) {
	if len(s) == 0 {
		return
	}
	b.buf.WriteString(s)
	if b.buf.Len() >= maxChunkSize*2 {
		b.flush()
	}
}

// Write implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	b.WriteString(string(p))
	return len(p), nil
}

func (b *Builder) flush() {
	if b.buf.Len() == 0 {
		return
	}
	s := b.buf.String()
	b.buf.Reset()
	b.chunks = append(b.chunks, splitIntoChunks(s)...)
}

// Build returns the accumulated rope and resets the builder.
func (b *Builder) Build() Rope {
	b.flush()
	chunks := b.chunks
	b.chunks = nil
	return fromChunks(chunks)
}

// FromReader builds a rope by draining r.
func FromReader(r io.Reader) (Rope, error) {
	var b Builder
	buf := make([]byte, 64*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			b.WriteString(string(buf[:n]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return Rope{}, err
		}
	}
	return b.Build(), nil
}
