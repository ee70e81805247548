package format_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkmd/mdctl/internal/mdblock"
	"github.com/inkmd/mdctl/internal/mdlex"
	"github.com/inkmd/mdctl/internal/mdrender/format"
)

func renderSrc(t *testing.T, src string) string {
	t.Helper()
	toks := mdlex.New([]byte(src)).All()
	doc := mdblock.Parse(toks)
	out, err := format.RenderString(doc)
	require.NoError(t, err)

	return out
}

func TestRender_Heading(t *testing.T) {
	out := renderSrc(t, "## Title\n")
	assert.Equal(t, "## Title\n", out)
}

func TestRender_ParagraphJoinsSoftBreaks(t *testing.T) {
	out := renderSrc(t, "line one\nline two\n")
	assert.Equal(t, "line one line two\n", out)
}

func TestRender_BlankLineBetweenBlocks(t *testing.T) {
	out := renderSrc(t, "# Title\n\nbody text\n")
	assert.Equal(t, "# Title\n\nbody text\n", out)
}

func TestRender_UnorderedList(t *testing.T) {
	out := renderSrc(t, "- one\n- two\n")
	assert.Equal(t, "- one\n- two\n", out)
}

func TestRender_OrderedListPreservesStart(t *testing.T) {
	out := renderSrc(t, "3. three\n4. four\n")
	assert.Equal(t, "3. three\n4. four\n", out)
}

func TestRender_TaskListCheckbox(t *testing.T) {
	out := renderSrc(t, "- [x] done\n- [ ] todo\n")
	assert.Equal(t, "- [x] done\n- [ ] todo\n", out)
}

func TestRender_BlockQuote(t *testing.T) {
	out := renderSrc(t, "> quoted line\n")
	assert.Equal(t, "> quoted line\n", out)
}

func TestRender_Alert(t *testing.T) {
	out := renderSrc(t, "> [!WARNING]\n> be careful\n")
	assert.Equal(t, "> [!WARNING]\n> be careful\n", out)
}

func TestRender_CodeFencePreservesFenceCharAndInfo(t *testing.T) {
	out := renderSrc(t, "```go\nfmt.Println(1)\n```\n")
	assert.Equal(t, "```go\nfmt.Println(1)\n```\n", out)
}

func TestRender_Table(t *testing.T) {
	src := "| a | b |\n| --- | --- |\n| 1 | 2 |\n"
	out := renderSrc(t, src)
	assert.Equal(t, "| a | b |\n| --- | --- |\n| 1 | 2 |\n", out)
}

func TestRender_EmphasisRoundTrips(t *testing.T) {
	out := renderSrc(t, "**bold** and _italic_ and ~strike~\n")
	assert.Equal(t, "**bold** and _italic_ and ~strike~\n", out)
}

func TestRender_LinkAndImage(t *testing.T) {
	out := renderSrc(t, "[label](https://example.com) ![alt](img.png)\n")
	assert.Equal(t, "[label](https://example.com) ![alt](img.png)\n", out)
}

func TestRender_EmptyDocumentProducesEmptyOutput(t *testing.T) {
	out := renderSrc(t, "")
	assert.Equal(t, "", out)
}
