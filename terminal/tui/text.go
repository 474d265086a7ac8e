package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/oolong/fault"
)

// DisplayWidth returns the terminal columns s occupies
// s must not contain escape sequences
func DisplayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// spaces returns n spaces, empty for n <= 0
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// TrimLastGrapheme removes the final user-perceived character of s
func TrimLastGrapheme(s string) string {
	last := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		last = len(s) - len(rest)
		_, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
	}
	return s[:last]
}

// Truncate cuts s to at most width columns, never inside a grapheme
func Truncate(s string, width int) string {
	used := 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		offset := len(s) - len(rest)
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		used += DisplayWidth(cluster)
		if used > width {
			return s[:offset]
		}
	}
	return s
}

// Wrap word-wraps text to lines of at most width columns
// Paragraphs split on '\n', words are packed greedily, a word wider than a
// line is hard-split at grapheme boundaries. A single glyph wider than the
// line is placed alone so output stays lossless
func Wrap(text string, width int) ([]string, error) {
	if width <= 0 {
		return nil, fault.Newf(fault.InvalidArgument, "tui.Wrap", "line width %d", width)
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = wrapParagraph(lines, para, width)
	}
	return lines, nil
}

func wrapParagraph(lines []string, para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return append(lines, "")
	}

	var line strings.Builder
	lineWidth := 0
	flush := func() {
		lines = append(lines, line.String())
		line.Reset()
		lineWidth = 0
	}

	for _, word := range words {
		ww := DisplayWidth(word)

		if ww > width {
			if line.Len() > 0 {
				flush()
			}
			chunks := hardSplit(word, width)
			for _, c := range chunks[:len(chunks)-1] {
				lines = append(lines, c)
			}
			tail := chunks[len(chunks)-1]
			line.WriteString(tail)
			lineWidth = DisplayWidth(tail)
			continue
		}

		need := ww
		if line.Len() > 0 {
			need++
			if lineWidth+need > width {
				flush()
				need = ww
			}
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
		lineWidth += need
	}

	if line.Len() > 0 {
		flush()
	}
	return lines
}

// hardSplit cuts word into chunks of at most width columns, never inside a grapheme
func hardSplit(word string, width int) []string {
	var chunks []string
	start, used := 0, 0
	state := -1
	rest := word
	for len(rest) > 0 {
		var cluster string
		offset := len(word) - len(rest)
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		cw := DisplayWidth(cluster)
		if used > 0 && used+cw > width {
			chunks = append(chunks, word[start:offset])
			start, used = offset, 0
		}
		used += cw
	}
	return append(chunks, word[start:])
}
