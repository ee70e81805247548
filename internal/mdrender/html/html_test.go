package html_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdblock"
	"github.com/inkmd/mdctl/internal/mdlex"
	"github.com/inkmd/mdctl/internal/mdrender/html"
)

func renderSrc(t *testing.T, src string, opts html.Options) string {
	t.Helper()
	toks := mdlex.New([]byte(src)).All()
	doc := mdblock.Parse(toks)
	out, err := html.RenderString(doc, opts)
	require.NoError(t, err)

	return out
}

func TestRender_BodyOnlyHeadingGetsAnchorID(t *testing.T) {
	out := renderSrc(t, "## My Title\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `<h2 id="my-title">My Title</h2>`)
}

func TestRender_DuplicateHeadingsGetSuffixedAnchors(t *testing.T) {
	out := renderSrc(t, "# Intro\n\n# Intro\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `id="intro">`)
	assert.Contains(t, out, `id="intro-1">`)
}

func TestRender_ParagraphEscapesText(t *testing.T) {
	out := renderSrc(t, "a < b & c > d\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, "a &lt; b &amp; c &gt; d")
}

func TestRender_UnorderedListItem(t *testing.T) {
	out := renderSrc(t, "- one\n- two\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, "<ul>\n<li>")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
	assert.Contains(t, out, "</ul>")
}

func TestRender_OrderedListEmitsStartWhenNotOne(t *testing.T) {
	out := renderSrc(t, "3. three\n4. four\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `<ol start="3">`)
}

func TestRender_TaskListCheckbox(t *testing.T) {
	out := renderSrc(t, "- [x] done\n- [ ] todo\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `checked>`)
	assert.Contains(t, out, `<input type="checkbox" disabled> `)
}

func TestRender_CodeFenceEmitsLanguageClass(t *testing.T) {
	out := renderSrc(t, "```go\nfmt.Println(1)\n```\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `<pre><code class="language-go">`)
	assert.Contains(t, out, "fmt.Println(1)")
}

func TestRender_BlockQuote(t *testing.T) {
	out := renderSrc(t, "> quoted\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, "<blockquote>")
	assert.Contains(t, out, "quoted")
}

func TestRender_Alert(t *testing.T) {
	out := renderSrc(t, "> [!WARNING]\n> be careful\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `class="alert alert-warning"`)
	assert.Contains(t, out, "be careful")
}

func TestRender_Table(t *testing.T) {
	src := "| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	out := renderSrc(t, src, html.Options{BodyOnly: true})
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<th>a</th>")
	assert.Contains(t, out, "<td>1</td>")
}

func TestRender_LinkAndImage(t *testing.T) {
	out := renderSrc(t, "[label](https://example.com) ![alt](img.png)\n", html.Options{BodyOnly: true})
	assert.Contains(t, out, `<a href="https://example.com">label</a>`)
	assert.Contains(t, out, `<img src="img.png" alt="alt">`)
}

func TestRender_NonBodyOnlyWrapsDocumentAndIncludesCSS(t *testing.T) {
	out := renderSrc(t, "# Title\n", html.Options{BodyOnly: false, Title: "My Doc"})
	assert.Contains(t, out, "<!DOCTYPE html>")
	assert.Contains(t, out, "<title>My Doc</title>")
	assert.Contains(t, out, "<style>")
	assert.Contains(t, out, "</html>")
}

func TestRender_NonBodyOnlyEmitsNavWhenHeadingsPresent(t *testing.T) {
	out := renderSrc(t, "# One\n\n## Two\n", html.Options{BodyOnly: false})
	assert.Contains(t, out, "<nav>")
	assert.Contains(t, out, `href="#one"`)
}

func TestRender_BodyOnlySkipsWrapperAndNav(t *testing.T) {
	out := renderSrc(t, "# One\n", html.Options{BodyOnly: true})
	assert.NotContains(t, out, "<!DOCTYPE html>")
	assert.NotContains(t, out, "<nav>")
}
