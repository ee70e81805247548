package mdinline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdast"
	"github.com/inkmd/mdctl/internal/mdinline"
	"github.com/inkmd/mdctl/internal/mdlex"
)

func parse(t *testing.T, src string) []mdast.Inline {
	t.Helper()
	toks := mdlex.Lex([]byte(src))
	// drop the trailing EOF token, as a closed leaf's raw tokens would
	// never include it (the block parser never appends EOF to a leaf).
	return mdinline.Parse(toks[:len(toks)-1])
}

func TestParse_PlainText(t *testing.T) {
	out := parse(t, "hello world")
	require.Len(t, out, 1)
	txt, ok := out[0].(mdast.Text)
	require.True(t, ok)
	assert.Equal(t, "hello world", txt.Text)
	assert.False(t, txt.Style.Bold)
}

func TestParse_BoldTogglesStyle(t *testing.T) {
	out := parse(t, "**bold**")
	require.Len(t, out, 1)
	txt := out[0].(mdast.Text)
	assert.Equal(t, "bold", txt.Text)
	assert.True(t, txt.Style.Bold)
}

func TestParse_EmboldSetsBoldAndItalic(t *testing.T) {
	out := parse(t, "***both***")
	require.Len(t, out, 1)
	txt := out[0].(mdast.Text)
	assert.True(t, txt.Style.Bold)
	assert.True(t, txt.Style.Italic)
}

func TestParse_IntraWordUnderscoreIsLiteral(t *testing.T) {
	out := parse(t, "snake_case_word")
	require.Len(t, out, 1)
	txt := out[0].(mdast.Text)
	assert.Equal(t, "snake_case_word", txt.Text)
	assert.False(t, txt.Style.Italic)
}

func TestParse_UnderscoreTogglesItalicAtWordBoundary(t *testing.T) {
	out := parse(t, "_em_ after")
	require.Len(t, out, 2)
	em := out[0].(mdast.Text)
	assert.Equal(t, "em", em.Text)
	assert.True(t, em.Style.Italic)
}

func TestParse_Codespan(t *testing.T) {
	out := parse(t, "run `a  b` now")
	require.Len(t, out, 3)
	code, ok := out[1].(mdast.Codespan)
	require.True(t, ok)
	assert.Equal(t, "a b", code.Text)
}

func TestParse_UnterminatedCodespanIsLiteral(t *testing.T) {
	out := parse(t, "a `b")
	require.Len(t, out, 1)
	txt := out[0].(mdast.Text)
	assert.Contains(t, txt.Text, "`")
}

func TestParse_Autolink(t *testing.T) {
	out := parse(t, "see <https://example.com> ok")
	require.Len(t, out, 3)
	link, ok := out[1].(mdast.Autolink)
	require.True(t, ok)
	assert.Equal(t, "https://example.com", link.URL)
}

func TestParse_AutolinkRejectsMultilineSpan(t *testing.T) {
	out := parse(t, "a <b\nc> d")
	require.GreaterOrEqual(t, len(out), 1)
	_, isAutolink := out[0].(mdast.Autolink)
	assert.False(t, isAutolink)
}

func TestParse_Link(t *testing.T) {
	out := parse(t, "[go](https://go.dev)")
	require.Len(t, out, 1)
	link, ok := out[0].(mdast.Link)
	require.True(t, ok)
	assert.Equal(t, "https://go.dev", link.URL)
	require.Len(t, link.Text, 1)
	assert.Equal(t, "go", link.Text[0].Text)
}

func TestParse_Image(t *testing.T) {
	out := parse(t, "![alt](img.png)")
	require.Len(t, out, 1)
	img, ok := out[0].(mdast.Image)
	require.True(t, ok)
	assert.Equal(t, "img.png", img.Src)
	require.Len(t, img.Alt, 1)
	assert.Equal(t, "alt", img.Alt[0].Text)
}

func TestParse_UnclosedLinkFallsBackToLiteralBrackets(t *testing.T) {
	out := parse(t, "[oops")
	require.Len(t, out, 1)
	txt := out[0].(mdast.Text)
	assert.Equal(t, "[oops", txt.Text)
}

func TestParse_BreakBecomesSpace(t *testing.T) {
	out := parse(t, "line one\nline two")
	require.Len(t, out, 1)
	txt := out[0].(mdast.Text)
	assert.Equal(t, "line one line two", txt.Text)
}
