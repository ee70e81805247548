package mdutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkmd/mdctl/internal/mdutil"
)

func TestStringWidth_ASCII(t *testing.T) {
	assert.Equal(t, 5, mdutil.StringWidth("hello"))
}

func TestWrapText_BreaksOnWordBoundaries(t *testing.T) {
	lines := mdutil.WrapText("the quick brown fox jumps", 10)
	for _, ln := range lines {
		assert.LessOrEqual(t, mdutil.StringWidth(ln), 10)
	}
	assert.Greater(t, len(lines), 1)
}

func TestWrapText_SingleLineWhenItFits(t *testing.T) {
	lines := mdutil.WrapText("short text", 80)
	assert.Equal(t, []string{"short text"}, lines)
}

func TestWrapTextWithTrailer_PrefixesContinuationLines(t *testing.T) {
	lines := mdutil.WrapTextWithTrailer("alpha beta gamma delta", 12, "> ")
	for i, ln := range lines {
		if i > 0 {
			assert.Contains(t, ln, "> ")
		}
	}
}

func TestEscapeHTML(t *testing.T) {
	assert.Equal(t, "&lt;b&gt;&amp;&#39;x&#39;&lt;/b&gt;", mdutil.EscapeHTML(`<b>&'x'</b>`))
}

func TestHeadingAnchor_Basic(t *testing.T) {
	assert.Equal(t, "hello-world", mdutil.HeadingAnchor("Hello, World!", nil))
}

func TestHeadingAnchor_DuplicatesGetSuffix(t *testing.T) {
	seen := map[string]int{}
	a := mdutil.HeadingAnchor("Intro", seen)
	b := mdutil.HeadingAnchor("Intro", seen)
	assert.Equal(t, "intro", a)
	assert.Equal(t, "intro-1", b)
}
