package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/oolong/fault"
)

func TestWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{"fits", "hello", 10, []string{"hello"}},
		{"exact word no blank line", "hello world", 5, []string{"hello", "world"}},
		{"greedy", "one two three", 9, []string{"one two", "three"}},
		{"collapses spaces", "a   b", 5, []string{"a b"}},
		{"hard split", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"hard split exact multiple", "abcdefgh", 4, []string{"abcd", "efgh"}},
		{"long word between short", "a abcdefgh b", 4, []string{"a", "abcd", "efgh", "b"}},
		{"tail keeps packing", "abcdef g", 4, []string{"abcd", "ef g"}},
		{"paragraphs", "a\n\nb", 5, []string{"a", "", "b"}},
		{"empty", "", 5, []string{""}},
		{"wide glyphs", "世界世界", 4, []string{"世界", "世界"}},
		{"wide glyph on odd width", "世界世", 3, []string{"世", "界", "世"}},
		{"glyph wider than line", "世", 1, []string{"世"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Wrap(tt.text, tt.width)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWrap_LinesFitWidth(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog, supercalifragilisticexpialidocious indeed"
	for width := 1; width <= 30; width++ {
		lines, err := Wrap(text, width)
		require.NoError(t, err)
		for _, l := range lines {
			assert.LessOrEqual(t, DisplayWidth(l), width, "width %d line %q", width, l)
		}
	}
}

func TestWrap_HardSplitLosesNothing(t *testing.T) {
	word := strings.Repeat("xyz", 13)
	for width := 1; width < len(word); width++ {
		lines, err := Wrap(word, width)
		require.NoError(t, err)
		assert.Equal(t, word, strings.Join(lines, ""), "width %d", width)
		assert.Len(t, lines, (len(word)+width-1)/width, "width %d", width)
	}
}

func TestWrap_SplitsOnGraphemes(t *testing.T) {
	word := "e\u0301e\u0301e\u0301"
	lines, err := Wrap(word, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"e\u0301e\u0301", "e\u0301"}, lines)
}

func TestWrap_InvalidWidth(t *testing.T) {
	_, err := Wrap("text", 0)
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(err))

	_, err = Wrap("text", -3)
	assert.Equal(t, fault.InvalidArgument, fault.KindOf(err))
}

func TestTrimLastGrapheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a", ""},
		{"ab", "a"},
		{"he\u0301", "h"},
		{"ok👍🏽", "ok"},
		{"日本", "日"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TrimLastGrapheme(tt.in), "%q", tt.in)
	}
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, DisplayWidth("hello"))
	assert.Equal(t, 4, DisplayWidth("世界"))
	assert.Equal(t, 1, DisplayWidth("e\u0301"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"Cancel", 2, "Ca"},
		{"Cancel", 6, "Cancel"},
		{"Cancel", 0, ""},
		{"世界", 3, "世"},
		{"héllo", 2, "hé"},
		{"", 4, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Truncate(tt.in, tt.width), "%q/%d", tt.in, tt.width)
	}
}
