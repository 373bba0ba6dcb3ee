package wiparse

import "strings"

// Block is one form's contiguous text span inside a transcript. Blocks never
// overlap, cover the text in source order, and a value inside one block is
// invisible to every other block. Content excludes the header line itself.
type Block struct {
	FormType    string // raw header line, trimmed
	Pattern     *FormPattern
	Lines       []string
	StartOffset int
	EndOffset   int
}

// CanonicalCode returns the resolved form code, or "" when only the generic
// form heading matched.
func (b *Block) CanonicalCode() string {
	if b.Pattern == nil {
		return ""
	}
	return b.Pattern.Code
}

// ContentLength is the block's content size in bytes, header excluded.
func (b *Block) ContentLength() int {
	n := 0
	for _, l := range b.Lines {
		n += len(l) + 1
	}
	return n
}

// SegmentBlocks splits raw transcript text into per-form blocks. A line
// matching any pattern-table header, or the generic "Form <token>" heading,
// starts a new block; every following line belongs to that block until the
// next header or end of text. Preamble lines before the first header carry
// transcript metadata and are not part of any block. Text with no recognized
// header yields zero blocks.
func SegmentBlocks(text string) []Block {
	if text == "" {
		return nil
	}

	var blocks []Block
	var current *Block
	offset := 0

	lines := strings.SplitAfter(text, "\n")
	// A trailing newline leaves an empty last element; it is not a line.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if entry, isHeader := matchHeader(trimmed); isHeader {
			if current != nil {
				current.EndOffset = offset
				blocks = append(blocks, *current)
			}
			current = &Block{
				FormType:    trimmed,
				Pattern:     entry,
				StartOffset: offset,
			}
		} else if current != nil {
			current.Lines = append(current.Lines, strings.TrimRight(line, "\n"))
		}
		offset += len(line)
	}
	if current != nil {
		current.EndOffset = offset
		blocks = append(blocks, *current)
	}
	return blocks
}

// matchHeader reports whether a trimmed line is a form heading, and the
// pattern entry it resolves to (nil for generic-only matches).
func matchHeader(line string) (*FormPattern, bool) {
	if line == "" {
		return nil, false
	}
	if entry := Lookup(line); entry != nil {
		return entry, true
	}
	if genericHeader.MatchString(line) {
		return nil, true
	}
	return nil, false
}
