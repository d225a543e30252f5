package analysis

import (
	"strings"

	"github.com/tmc/langchaingo/textsplitter"
)

const (
	defaultChunkSize    = 2000
	defaultChunkOverlap = 0
)

// chunker splits opinion text into paragraph-aligned sections.
type chunker struct {
	s textsplitter.RecursiveCharacter
}

func newChunker(chunkSize, overlap int) chunker {
	if chunkSize <= 0 {
		chunkSize = defaultChunkSize
	}
	if overlap < 0 {
		overlap = 0
	}
	return chunker{
		s: textsplitter.NewRecursiveCharacter(
			textsplitter.WithSeparators([]string{
				"\n\n", // paragraphs
				"\n",
				". ", // sentences
				" ",
				"",
			}),
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(overlap),
		),
	}
}

func (c chunker) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	parts, err := c.s.SplitText(text)
	if err != nil || len(parts) == 0 {
		return []string{text}
	}
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
