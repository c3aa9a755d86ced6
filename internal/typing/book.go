package typing

import (
	"fmt"

	"github.com/verte-zerg/typereader/internal/chunker"
)

// Book owns a loaded document and its chunks, and tracks the chunk being
// practiced.
type Book struct {
	name     string
	content  string
	chunks   []string
	current  int
	finished bool
}

// NewBook chunks content into pieces of at most maxLength characters.
func NewBook(name, content string, maxLength int) (*Book, error) {
	chunks, err := chunker.Chunk(content, maxLength)
	if err != nil {
		return nil, fmt.Errorf("failed to chunk %s: %w", name, err)
	}
	return &Book{name: name, content: content, chunks: chunks}, nil
}

// Name returns the display name of the book.
func (b *Book) Name() string { return b.name }

// Content returns the full document text.
func (b *Book) Content() string { return b.content }

// Chunks returns all chunks in document order.
func (b *Book) Chunks() []string { return b.chunks }

// Len returns the number of chunks.
func (b *Book) Len() int { return len(b.chunks) }

// Index returns the zero-based index of the current chunk.
func (b *Book) Index() int { return b.current }

// Chunk returns the current chunk text.
func (b *Book) Chunk() string { return b.chunks[b.current] }

// Finished reports whether the last chunk has been completed.
func (b *Book) Finished() bool { return b.finished }

// Advance moves to the next chunk. At the last chunk it marks the book
// finished and returns false.
func (b *Book) Advance() bool {
	if b.finished {
		return false
	}
	if b.current < len(b.chunks)-1 {
		b.current++
		return true
	}
	b.finished = true
	return false
}

// Progress returns the fraction of chunks completed, in [0, 1]. The current
// chunk counts as not yet done, so the bar reaches 1 only when the last chunk
// is finished.
func (b *Book) Progress() float64 {
	if b.finished {
		return 1
	}
	return float64(b.current) / float64(len(b.chunks))
}
